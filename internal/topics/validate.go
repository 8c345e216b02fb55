package topics

import (
	"fmt"
	"strings"
)

// Validate checks the built-in catalog for structural problems.
func Validate() error {
	return validateTopics(c.topics)
}

// validateTopics returns a combined error describing all problems found,
// or nil if the set is valid.
func validateTopics(topics []Topic) error {
	var errs []string

	ids := make(map[string]bool, len(topics))
	segments := make(map[int]bool, len(topics))
	for _, t := range topics {
		if t.ID == "" {
			errs = append(errs, "topic with empty ID")
			continue
		}
		if ids[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		ids[t.ID] = true

		if segments[t.Segment] {
			errs = append(errs, fmt.Sprintf("topic %q reuses segment %d", t.ID, t.Segment))
		}
		segments[t.Segment] = true

		if t.Title == "" {
			errs = append(errs, fmt.Sprintf("topic %q has no title", t.ID))
		}
		if t.CoinsReward <= 0 {
			errs = append(errs, fmt.Sprintf("topic %q has non-positive coins reward", t.ID))
		}
		if len(t.Reference.Terms) == 0 {
			errs = append(errs, fmt.Sprintf("topic %q has an empty reference sheet", t.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
