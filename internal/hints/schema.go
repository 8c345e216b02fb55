package hints

import "github.com/abhisek/geoquest/internal/llm"

// HintSchema defines the JSON schema for a single hint.
var HintSchema = &llm.Schema{
	Name:        "task-hint",
	Description: "A short hint that nudges the student without revealing the answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One or two sentences pointing at the rule or formula to use. Never the final answer.",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}
