package taskgen

import "fmt"

// Validator checks a generated task for a class of invariant.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the task passes.
	Validate(t Task) *ValidationError
}

// ValidationError describes why a task failed validation. A failure is a
// generator bug, never a condition to recover from at runtime.
type ValidationError struct {
	Validator string
	TaskID    string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: task %q: %s", e.Validator, e.TaskID, e.Message)
}

// DefaultValidators returns the validators every generated task must pass.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&ReferenceValidator{},
	}
}

// Validate runs the default validators and returns the first failure.
func Validate(t Task) error {
	for _, v := range DefaultValidators() {
		if verr := v.Validate(t); verr != nil {
			return verr
		}
	}
	return nil
}
