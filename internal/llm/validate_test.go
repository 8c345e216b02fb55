package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func hintTestSchema() *Schema {
	return &Schema{
		Name:        "task-hint",
		Description: "A hint for a geometry task",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint":  map[string]any{"type": "string"},
				"steps": map[string]any{"type": "integer", "minimum": 1},
				"focus": map[string]any{"type": "string", "enum": []any{"formula", "units", "reading"}},
			},
			"required": []any{"hint"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"hint":"Halve the base.","steps":2,"focus":"formula"}`, false},
		{"only required", `{"hint":"Think of m * h."}`, false},
		{"missing required", `{"steps":1}`, true},
		{"wrong type", `{"hint":"x","steps":"two"}`, true},
		{"below minimum", `{"hint":"x","steps":0}`, true},
		{"bad enum", `{"hint":"x","focus":"guessing"}`, true},
		{"malformed", `{hint}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(hintTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"free":"form"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArray(t *testing.T) {
	schema := &Schema{
		Name: "hint-list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"hints"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"hints":["a","b"]}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"hints":[1,2]}`)); err == nil {
		t.Fatal("expected error for wrong item type")
	}
}

func TestValidateResponse_SameNameDifferentDefinition(t *testing.T) {
	loose := &Schema{Name: "task-hint", Definition: map[string]any{"type": "object"}}
	if err := validateResponse(loose, json.RawMessage(`{"steps":1}`)); err != nil {
		t.Fatalf("loose schema rejected: %v", err)
	}
	if err := validateResponse(hintTestSchema(), json.RawMessage(`{"steps":1}`)); err == nil {
		t.Fatal("strict schema must not reuse the loose validator")
	}
}
