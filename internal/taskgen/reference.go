package taskgen

import (
	"fmt"
	"strconv"
)

// ReferenceValidator checks that the correct answer is reachable from the
// task's own structure: an index within the options, a region ID that
// exists, or a decimal integer for free input.
type ReferenceValidator struct{}

func (v *ReferenceValidator) Name() string { return "reference" }

func (v *ReferenceValidator) Validate(t Task) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), TaskID: t.Common().ID, Message: fmt.Sprintf(format, args...)}
	}

	switch t := t.(type) {
	case *MultipleChoice:
		if len(t.Options) < 2 {
			return fail("multiple choice needs at least 2 options, got %d", len(t.Options))
		}
		seen := make(map[string]bool, len(t.Options))
		for _, o := range t.Options {
			if o == "" {
				return fail("empty option")
			}
			if seen[o] {
				return fail("duplicate option %q", o)
			}
			seen[o] = true
		}
		if t.Correct < 0 || t.Correct >= len(t.Options) {
			return fail("correct index %d out of range [0,%d)", t.Correct, len(t.Options))
		}

	case *FreeInput:
		if _, err := strconv.Atoi(t.Answer); err != nil {
			return fail("answer %q is not a decimal integer", t.Answer)
		}

	case *VisualChoice:
		if len(t.Regions) < 2 {
			return fail("visual choice needs at least 2 regions, got %d", len(t.Regions))
		}
		found := false
		ids := make(map[string]bool, len(t.Regions))
		for _, r := range t.Regions {
			if r.ID == "" || r.Path == "" {
				return fail("region missing id or path")
			}
			if ids[r.ID] {
				return fail("duplicate region id %q", r.ID)
			}
			ids[r.ID] = true
			if r.ID == t.Answer {
				found = true
			}
		}
		if !found {
			return fail("answer %q is not a region id", t.Answer)
		}

	default:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown task type %T", t)}
	}
	return nil
}
