package taskgen

import "testing"

func TestIsCorrect(t *testing.T) {
	mc := &MultipleChoice{
		Header:  Header{ID: "mc", Topic: "u6", Question: "q", Explanation: "e"},
		Options: []string{"9", "20", "25", "40"},
		Correct: 1,
	}
	fi := &FreeInput{
		Header: Header{ID: "fi", Topic: "u3", Question: "q", Explanation: "e"},
		Answer: "20",
	}
	vc := &VisualChoice{
		Header:  Header{ID: "vc", Topic: "u1", Question: "q", Explanation: "e"},
		Regions: quadrilateralRegions,
		Answer:  "para",
	}

	tests := []struct {
		name   string
		task   Task
		answer string
		want   bool
	}{
		{"mc correct index", mc, "1", true},
		{"mc padded index", mc, " 1 ", true},
		{"mc wrong index", mc, "0", false},
		{"mc option text is not an index", mc, "20", false},
		{"mc empty", mc, "", false},
		{"free exact", fi, "20", true},
		{"free whitespace", fi, "  20\t", true},
		{"free no tolerance", fi, "20.0", false},
		{"free leading zero", fi, "020", false},
		{"free wrong", fi, "21", false},
		{"free blank", fi, "   ", false},
		{"visual id", vc, "para", true},
		{"visual case-insensitive", vc, "PARA", true},
		{"visual wrong", vc, "rect", false},
		{"visual label is not id", vc, "Parallelogram", false},
		{"nil task", nil, "1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.task, tt.answer); got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestIsCorrect_Idempotent(t *testing.T) {
	fi := &FreeInput{Header: Header{ID: "fi"}, Answer: "145"}
	for _, answer := range []string{"145", "146", ""} {
		first := IsCorrect(fi, answer)
		for range 3 {
			if IsCorrect(fi, answer) != first {
				t.Fatalf("IsCorrect not idempotent for %q", answer)
			}
		}
	}
}

func TestSolution(t *testing.T) {
	if got := Solution(contextTask("x", 1)); got != "72 liters" {
		t.Errorf("context solution = %q", got)
	}
	if got := Solution(parallelogramTask("x", 5, 4)); got != "20 cm²" {
		t.Errorf("area solution = %q", got)
	}
	if got := Solution(hypotenuseTask("x")); got != "Hypotenuse c" {
		t.Errorf("hypotenuse solution = %q", got)
	}
}
