package topics

// Topic identifiers. Task generation keys off these.
const (
	Shapes  = "u1"
	Angles  = "u2"
	Areas   = "u3"
	Volumes = "u4"
	Scaling = "u5"
	Context = "u6"
)

var seedTopics = []Topic{
	{
		ID:           Shapes,
		Segment:      1,
		Group:        GroupA,
		Category:     "Basics",
		Title:        "Understanding Shapes",
		Description:  "Recognise, describe and classify quadrilaterals.",
		DetailedInfo: "Become an expert at identifying quadrilaterals. Learn why every square is a rectangle but not every rectangle is a square.",
		Examples:     []string{"Square = Rectangle + Rhombus"},
		Keywords:     []string{"shape", "quadrilateral", "property", "classification"},
		Difficulty:   DifficultyEasy,
		CoinsReward:  50,
		Reference: ReferenceSheet{
			Title:   "Shapes & the house of quadrilaterals",
			Formula: "Angle sum = 360°",
			Terms: []string{
				"Trapezoid: at least two parallel sides.",
				"Parallelogram: both pairs of opposite sides parallel and equal.",
				"Rhombus: a parallelogram with four equal sides.",
				"Rectangle: a parallelogram with four right angles.",
				"Square: all sides equal and all angles 90°.",
				"Symmetry: a square has 4 axes of symmetry, a rectangle only 2.",
			},
		},
	},
	{
		ID:           Angles,
		Segment:      2,
		Group:        GroupA,
		Category:     "Basics",
		Title:        "Angles & Relations",
		Description:  "Read and justify angles with confidence.",
		DetailedInfo: "Learn the language of intersecting lines. Use Thales' circle to find perfect right angles.",
		Examples:     []string{"Supplementary angles = 180°", "Thales: γ = 90°"},
		Keywords:     []string{"angle", "thales", "supplementary", "degree", "circle"},
		Difficulty:   DifficultyMedium,
		CoinsReward:  60,
		Reference: ReferenceSheet{
			Title:   "Angles & Thales' circle",
			Formula: "Supplementary = 180° | Thales = 90°",
			Terms: []string{
				"Vertical angles: opposite each other and exactly equal.",
				"Supplementary angles: side by side on a straight line, sum = 180°.",
				"Thales' theorem: any point on a semicircle forms a right triangle with the diameter.",
				"Interior angle sum: 180° in a triangle, 360° in a quadrilateral.",
				"Corresponding angles: formed at parallel lines and equal.",
			},
		},
	},
	{
		ID:           Areas,
		Segment:      3,
		Group:        GroupB,
		Category:     "Calculation",
		Title:        "Areas & Terms",
		Description:  "See areas instead of just computing them.",
		DetailedInfo: "Trapezoids and parallelograms are everywhere. Learn to tame them with simple formulas.",
		Examples:     []string{"A(trapezoid) = m * h"},
		Keywords:     []string{"area", "trapezoid", "decomposition", "cm2"},
		Difficulty:   DifficultyMedium,
		CoinsReward:  80,
		Reference: ReferenceSheet{
			Title:   "Areas & decomposition",
			Formula: "A(trapezoid) = (a + c) / 2 * h",
			Terms: []string{
				"Parallelogram: A = base * height (g * h).",
				"Triangle: A = (g * h) / 2. Every triangle is half a parallelogram.",
				"Trapezoid: A = midline (m) * height, where m = (a+c)/2.",
				"Decomposition: split odd shapes into rectangles and add them up.",
				"Completion: take a large rectangle and subtract the gaps.",
			},
		},
	},
	{
		ID:           Volumes,
		Segment:      4,
		Group:        GroupB,
		Category:     "Calculation",
		Title:        "Solids & Surfaces",
		Description:  "3D thinking and volumes.",
		DetailedInfo: "Imagine building a can. How much sheet metal do you need? How much lemonade fits inside?",
		Examples:     []string{"V = G * h", "M = u * h"},
		Keywords:     []string{"volume", "cylinder", "prism", "surface", "3d"},
		Difficulty:   DifficultyHard,
		CoinsReward:  100,
		Reference: ReferenceSheet{
			Title:   "Solids & surfaces",
			Formula: "V = G * h | S = 2*G + M",
			Terms: []string{
				"Prism: a solid with two identical polygons as top and base.",
				"Cylinder: a round prism. Base G = π * r².",
				"Lateral surface (M): the outer wall. For a cylinder M = 2*π*r*h.",
				"Volume (V): how much space is inside (cm³, dm³, m³).",
				"Surface (S): everything you could paint. 2x base + 1x lateral.",
			},
		},
	},
	{
		ID:           Scaling,
		Segment:      5,
		Group:        GroupA,
		Category:     "Transformation",
		Title:        "Similarity",
		Description:  "Scales and central dilation.",
		DetailedInfo: "Zooming in real life. What happens to the area of a photo when you print it twice as large?",
		Examples:     []string{"length * k", "area * k²"},
		Keywords:     []string{"similarity", "dilation", "scale", "factor"},
		Difficulty:   DifficultyMedium,
		CoinsReward:  70,
		Reference: ReferenceSheet{
			Title:   "Similarity & scaling",
			Formula: "L_new = k * L_old",
			Terms: []string{
				"Similarity: shapes are similar when their angles are equal.",
				"Scale factor k: k > 1 enlarges, k < 1 shrinks.",
				"Area factor: area changes by k² (k=2 gives 4x the area).",
				"Volume factor: volume changes by k³ (k=2 gives 8x the volume).",
				"Map scale: 1:100 means 1 cm on the map is 100 cm in reality.",
			},
		},
	},
	{
		ID:           Context,
		Segment:      6,
		Group:        GroupC,
		Category:     "Modelling",
		Title:        "Everyday Geometry",
		Description:  "Maths for real problems.",
		DetailedInfo: "Building a house, filling a pool or pitching a tent: show that you have geometry under control.",
		Examples:     []string{"Estimate waste", "Fill volumes"},
		Keywords:     []string{"word problem", "transfer", "model", "everyday"},
		Difficulty:   DifficultyHard,
		CoinsReward:  120,
		Reference: ReferenceSheet{
			Title:   "Transfer & modelling",
			Formula: "V = G * h (everyday transfer)",
			Terms: []string{
				"Conversion: 1 liter is exactly 1 dm³.",
				"Liquids: divide cm³ by 1000 to get liters.",
				"Word problems: read carefully. Volume (content) or surface (material)?",
				"Rounding: real-life answers are often rounded to two decimals.",
				"Composite solids: a house is often a cuboid with a prism roof.",
			},
		},
	},
}
