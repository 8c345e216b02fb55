package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds one compiled validator per distinct definition.
var compiledSchemas = &schemaRegistry{byDef: make(map[string]*jsonschema.Schema)}

type schemaRegistry struct {
	mu    sync.Mutex
	byDef map[string]*jsonschema.Schema
}

// validateResponse checks raw against schema. A nil schema accepts
// anything; every failure is an *ErrInvalidResponse carrying raw.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("reply is not JSON: %w", err)
	}
	validator, err := compiledSchemas.get(schema)
	if err != nil {
		return invalid("schema %q: %w", schema.Name, err)
	}
	if err := validator.Validate(doc); err != nil {
		return invalid("reply does not match %q: %w", schema.Name, err)
	}
	return nil
}

// get compiles schema on first use. Definitions are keyed by their JSON
// text so two schemas sharing a name never share a validator.
func (r *schemaRegistry) get(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode definition: %w", err)
	}
	key := string(def)

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.byDef[key]; ok {
		return v, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	v, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	r.byDef[key] = v
	return v, nil
}
