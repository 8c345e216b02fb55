package taskgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/abhisek/geoquest/internal/randx"
	"github.com/abhisek/geoquest/internal/topics"
)

const (
	unitDegrees = "degrees"
	unitCm      = "cm"
	unitCm2     = "cm²"
	unitCm3     = "cm³"
)

var (
	cylinderRadii = []int{2, 5, 10}
	scaleFactors  = []int{2, 3, 5}
)

func freeInput(id, topic, question, explanation string, answer int, unit string) *FreeInput {
	return &FreeInput{
		Header: Header{
			ID:          id,
			Topic:       topic,
			Question:    question,
			Explanation: explanation,
		},
		Answer: strconv.Itoa(answer),
		Unit:   unit,
	}
}

// Angles

func angleTask(id string, index int, r *rand.Rand) *FreeInput {
	if index%2 == 0 {
		return supplementaryTask(id, randx.IntInRange(r, 20, 160))
	}
	return complementaryTask(id, randx.IntInRange(r, 20, 80))
}

func supplementaryTask(id string, alpha int) *FreeInput {
	return freeInput(id, topics.Angles,
		fmt.Sprintf("At an intersection of two lines, alpha and beta are supplementary angles. Alpha measures %d°. How large is beta?", alpha),
		"Supplementary angles always add up to 180°.",
		180-alpha, unitDegrees)
}

func complementaryTask(id string, alpha int) *FreeInput {
	return freeInput(id, topics.Angles,
		fmt.Sprintf("In a right triangle one angle is alpha = %d°. Calculate the second acute angle beta.", alpha),
		"In a right triangle the two acute angles add up to 90° (since 180° - 90° = 90°).",
		90-alpha, unitDegrees)
}

// Areas

func areaTask(id string, index int, r *rand.Rand) *FreeInput {
	if index%2 == 0 {
		return parallelogramTask(id, randx.IntInRange(r, 5, 12), randx.IntInRange(r, 4, 8))
	}
	a := randx.IntInRange(r, 6, 10)
	c := randx.PickOne(r, sameParity(a, 2, 5))
	return trapezoidTask(id, a, c, randx.IntInRange(r, 4, 6))
}

func parallelogramTask(id string, g, h int) *FreeInput {
	return freeInput(id, topics.Areas,
		fmt.Sprintf("A parallelogram has base g = %d cm and height h = %d cm. Calculate its area A.", g, h),
		`A = g * h. It works like a rectangle that has been "straightened".`,
		g*h, unitCm2)
}

func trapezoidTask(id string, a, c, h int) *FreeInput {
	return freeInput(id, topics.Areas,
		fmt.Sprintf("A trapezoid has parallel sides a = %d cm and c = %d cm and height h = %d cm. Calculate A.", a, c, h),
		"A = ((a + c) / 2) * h. You calculate with the midline m = (a+c)/2.",
		trapezoidArea(a, c, h), unitCm2)
}

// trapezoidArea returns ((a+c)/2)*h. Callers keep a+c even so the result is
// exact.
func trapezoidArea(a, c, h int) int {
	return (a + c) / 2 * h
}

// sameParity returns the values in [lo, hi] with the same parity as n.
func sameParity(n, lo, hi int) []int {
	var out []int
	for v := lo; v <= hi; v++ {
		if (v-n)%2 == 0 {
			out = append(out, v)
		}
	}
	return out
}

// Volumes

func volumeTask(id string, index int, r *rand.Rand) *FreeInput {
	if index%2 == 0 {
		return prismTask(id, randx.IntInRange(r, 10, 25), randx.IntInRange(r, 5, 10))
	}
	return cylinderTask(id, randx.PickOne(r, cylinderRadii))
}

func prismTask(id string, base, h int) *FreeInput {
	return freeInput(id, topics.Volumes,
		fmt.Sprintf("A prism has base area G = %d cm² and height h = %d cm. Calculate its volume V.", base, h),
		"For every prism: volume = base area * height.",
		base*h, unitCm3)
}

// cylinderTask uses π = 3 so the base area stays an integer.
func cylinderTask(id string, radius int) *FreeInput {
	const h = 10
	base := 3 * radius * radius
	return freeInput(id, topics.Volumes,
		fmt.Sprintf("A cylinder has base area G = %d cm² and height h = %d cm. How large is its volume V?", base, h),
		"V = G * h. A cylinder is a (round) prism too.",
		base*h, unitCm3)
}

// Scaling

func scalingTask(id string, index int, r *rand.Rand) *FreeInput {
	k := randx.PickOne(r, scaleFactors)
	switch index % 3 {
	case 0:
		return lengthScaleTask(id, k)
	case 1:
		return areaScaleTask(id, k)
	default:
		return volumeScaleTask(id, k)
	}
}

func lengthScaleTask(id string, k int) *FreeInput {
	return freeInput(id, topics.Scaling,
		fmt.Sprintf("A picture is enlarged with scale factor k = %d. An original length of 4 cm becomes ...?", k),
		"Lengths change by the factor k.",
		4*k, unitCm)
}

func areaScaleTask(id string, k int) *FreeInput {
	return freeInput(id, topics.Scaling,
		fmt.Sprintf("A square with A = 10 cm² is scaled by k = %d. How large is the new area?", k),
		fmt.Sprintf("Areas change with the square of the scale factor (k²). Here: 10 * %d.", k*k),
		10*k*k, unitCm2)
}

func volumeScaleTask(id string, k int) *FreeInput {
	return freeInput(id, topics.Scaling,
		fmt.Sprintf("A cube with V = 2 cm³ is scaled by k = %d. What is the volume of the image cube?", k),
		fmt.Sprintf("Volumes change with the cube of the scale factor (k³). Here: 2 * %d.", k*k*k),
		2*k*k*k, unitCm3)
}
