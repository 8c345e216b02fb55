package taskgen

// StructuralValidator checks that header fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t Task) *ValidationError {
	if t == nil {
		return &ValidationError{Validator: v.Name(), Message: "task is nil"}
	}
	h := t.Common()
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), TaskID: h.ID, Message: msg}
	}

	switch {
	case h.ID == "":
		return fail("id is empty")
	case h.Topic == "":
		return fail("topic is empty")
	case h.Question == "":
		return fail("question is empty")
	case len(h.Question) > 500:
		return fail("question exceeds 500 characters")
	case h.Explanation == "":
		return fail("explanation is empty")
	case len(h.Explanation) > 1000:
		return fail("explanation exceeds 1000 characters")
	}
	return nil
}
