package taskgen

import (
	"strconv"
	"strings"
)

// IsCorrect reports whether submitted answers t.
//
// Both sides are trimmed and compared case-insensitively as strings; there
// is no numeric tolerance, so "20.0" does not match "20".
//   - multiple choice: submitted is the 0-based option index
//   - free input: submitted is the typed value
//   - visual choice: submitted is the picked region ID
//
// An empty submission or a nil task is always incorrect.
func IsCorrect(t Task, submitted string) bool {
	got := normalize(submitted)
	if got == "" || t == nil {
		return false
	}

	switch t := t.(type) {
	case *MultipleChoice:
		return got == strconv.Itoa(t.Correct)
	case *FreeInput:
		return got == normalize(t.Answer)
	case *VisualChoice:
		return got == normalize(t.Answer)
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
