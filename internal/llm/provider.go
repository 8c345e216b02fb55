package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply per Request. Implementations wrap a
// vendor SDK; decorators (logging, retry, timeout) wrap Providers.
type Provider interface {
	// Generate returns the reply to req. With req.Schema set, Content is
	// JSON that has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for structured output. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// SingleTurn builds the usual hint-shaped request: one system prompt,
// one user message and a reply schema.
func SingleTurn(system, user string, schema *Schema) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
		Schema:   schema,
	}
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema for structured output. Name is kebab-case and
// doubles as the tool or schema name on the wire.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a finished generation.
type Response struct {
	// Content is the reply JSON, or a JSON string for free text.
	Content json.RawMessage
	Usage   Usage
	// Model is the model that actually answered, which may differ from
	// ModelID when a router picks one.
	Model string
	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
