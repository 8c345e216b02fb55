package taskgen

import (
	"slices"

	"github.com/abhisek/geoquest/internal/topics"
)

var quadrilateralRegions = []Region{
	{ID: "rect", Label: "Rectangle", Path: "M 10,10 H 70 V 50 H 10 Z"},
	{ID: "para", Label: "Parallelogram", Path: "M 100,10 L 160,10 L 150,50 L 90,50 Z"},
	{ID: "trap", Label: "Trapezoid", Path: "M 10,70 L 70,70 L 60,110 L 20,110 Z"},
}

var triangleSides = []Region{
	{ID: "a", Label: "Leg a", Path: "M 40,30 V 110", Stroke: true},
	{ID: "b", Label: "Leg b", Path: "M 40,110 H 160", Stroke: true},
	{ID: "c", Label: "Hypotenuse c", Path: "M 40,30 L 160,110", Stroke: true},
}

type pickPrompt struct {
	question    string
	answer      string
	explanation string
}

var quadrilateralPrompts = []pickPrompt{
	{"Click the parallelogram!", "para", "A parallelogram has opposite sides that are parallel."},
	{"Where is the trapezoid?", "trap", "A trapezoid has at least two parallel sides."},
	{"Find the rectangle!", "rect", "A rectangle has four right angles."},
}

type choicePrompt struct {
	question    string
	options     []string
	correct     int
	explanation string
}

var shapeConcepts = []choicePrompt{
	{
		question:    "Which property does a square share with a rhombus?",
		options:     []string{"Four right angles", "Four sides of equal length", "Two axes of symmetry", "No parallel sides"},
		correct:     1,
		explanation: "Both the square and the rhombus have four sides of equal length.",
	},
	{
		question:    "What do you call a trapezoid with two parallel sides and two legs of equal length?",
		options:     []string{"Parallelogram", "Isosceles trapezoid", "Kite", "Rhombus"},
		correct:     1,
		explanation: "When the legs of a trapezoid are equal in length, it is isosceles.",
	},
	{
		question:    "Which quadrilateral is point-symmetric but not necessarily axis-symmetric?",
		options:     []string{"Square", "Rectangle", "Parallelogram", "Trapezoid"},
		correct:     2,
		explanation: "A general parallelogram is point-symmetric about the intersection of its diagonals.",
	},
}

func visualShapeTask(id string, index int) *VisualChoice {
	p := quadrilateralPrompts[index%len(quadrilateralPrompts)]
	return &VisualChoice{
		Header: Header{
			ID:          id,
			Topic:       topics.Shapes,
			Question:    p.question,
			Explanation: p.explanation,
		},
		Regions: slices.Clone(quadrilateralRegions),
		Answer:  p.answer,
	}
}

func shapeConceptTask(id string, index int) *MultipleChoice {
	return choiceTask(id, topics.Shapes, shapeConcepts[index%len(shapeConcepts)])
}

func hypotenuseTask(id string) *VisualChoice {
	return &VisualChoice{
		Header: Header{
			ID:          id,
			Topic:       topics.Angles,
			Question:    "Which side is the hypotenuse of the right triangle?",
			Explanation: "The hypotenuse always lies opposite the right angle and is the longest side.",
		},
		Regions: slices.Clone(triangleSides),
		Answer:  "c",
	}
}

func choiceTask(id, topic string, p choicePrompt) *MultipleChoice {
	return &MultipleChoice{
		Header: Header{
			ID:          id,
			Topic:       topic,
			Question:    p.question,
			Explanation: p.explanation,
		},
		Options: slices.Clone(p.options),
		Correct: p.correct,
	}
}
