package taskgen

// Kind is the variant tag of a task. It selects the rendering and
// evaluation path.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindFreeInput      Kind = "free-input"
	KindVisualChoice   Kind = "visual-choice"
)

// Header holds the fields every task variant carries.
type Header struct {
	// ID is unique within a batch and across batches for the same topic.
	ID string

	// Topic is the topic id the task was generated for.
	Topic string

	// Question is the fully resolved prompt, operands already substituted.
	Question string

	// Explanation is shown after evaluation regardless of outcome.
	Explanation string
}

// Task is a single generated exercise. It is implemented only by
// *MultipleChoice, *FreeInput and *VisualChoice.
type Task interface {
	Common() Header
	Kind() Kind
	isTask()
}

// MultipleChoice is a conceptual question with a fixed set of options.
type MultipleChoice struct {
	Header
	Options []string

	// Correct is the 0-based index into Options.
	Correct int
}

// FreeInput is a numeric question answered by typing a value.
type FreeInput struct {
	Header

	// Answer is the decimal string of the computed integer.
	Answer string

	// Unit is the placeholder shown in the input, e.g. "cm²".
	Unit string
}

// VisualChoice asks the player to pick one of several drawn regions.
type VisualChoice struct {
	Header
	Regions []Region

	// Answer is the ID of the correct region.
	Answer string
}

// Region is a selectable geometric shape or line.
type Region struct {
	ID    string
	Label string

	// Path is an SVG path descriptor for the region outline.
	Path string

	// Stroke marks line-only regions such as triangle sides.
	Stroke bool
}

func (t *MultipleChoice) Common() Header { return t.Header }
func (t *FreeInput) Common() Header      { return t.Header }
func (t *VisualChoice) Common() Header   { return t.Header }

func (t *MultipleChoice) Kind() Kind { return KindMultipleChoice }
func (t *FreeInput) Kind() Kind      { return KindFreeInput }
func (t *VisualChoice) Kind() Kind   { return KindVisualChoice }

func (*MultipleChoice) isTask() {}
func (*FreeInput) isTask()      {}
func (*VisualChoice) isTask()   {}

// Solution returns the correct answer in display form: the option text,
// the value with its unit, or the region label.
func Solution(t Task) string {
	switch t := t.(type) {
	case *MultipleChoice:
		if t.Correct >= 0 && t.Correct < len(t.Options) {
			return t.Options[t.Correct]
		}
	case *FreeInput:
		if t.Unit != "" {
			return t.Answer + " " + t.Unit
		}
		return t.Answer
	case *VisualChoice:
		for _, r := range t.Regions {
			if r.ID == t.Answer {
				return r.Label
			}
		}
		return t.Answer
	}
	return ""
}
