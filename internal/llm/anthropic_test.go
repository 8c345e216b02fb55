package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClaudeModel = "claude-haiku-4-5-20251001"

// anthropicStub serves one canned Messages API answer and keeps the
// decoded request body for inspection.
type anthropicStub struct {
	status int
	header http.Header
	body   map[string]any

	got map[string]any
}

func (s *anthropicStub) provider(t *testing.T) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&s.got)
		for k, vs := range s.header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if s.status != 0 {
			w.WriteHeader(s.status)
		}
		_ = json.NewEncoder(w).Encode(s.body)
	}))
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: testClaudeModel}
}

func claudeMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_hint",
		"type":        "message",
		"role":        "assistant",
		"model":       testClaudeModel,
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 61, "output_tokens": 19},
	}
}

func claudeError(kind string) map[string]any {
	return map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": kind},
	}
}

func hintRequest() Request {
	req := SingleTurn(hintSystemPromptForTest,
		"Topic: Solids & Surfaces. Task: A cuboid is 2 by 3 by 4. What is its volume?", nil)
	req.MaxTokens = 200
	return req
}

func TestAnthropicProvider_Hint(t *testing.T) {
	stub := &anthropicStub{body: claudeMessage(`{"hint":"Multiply length, width and height."}`, "end_turn")}
	p := stub.provider(t)

	resp, err := p.Generate(context.Background(), hintRequest())
	require.NoError(t, err)

	assert.JSONEq(t, `{"hint":"Multiply length, width and height."}`, string(resp.Content))
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, Usage{InputTokens: 61, OutputTokens: 19, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, testClaudeModel, resp.Model)

	assert.Equal(t, testClaudeModel, stub.got["model"])
	assert.EqualValues(t, 200, stub.got["max_tokens"])
	system, _ := stub.got["system"].([]any)
	require.Len(t, system, 1)
	assert.Equal(t, hintSystemPromptForTest, system[0].(map[string]any)["text"])
	_, hasTemp := stub.got["temperature"]
	assert.False(t, hasTemp, "zero temperature must be left to the provider")
}

func TestAnthropicProvider_ReplyProblems(t *testing.T) {
	schema := hintTestSchema()
	tests := []struct {
		name   string
		body   map[string]any
		schema *Schema
		check  func(t *testing.T, err error)
	}{
		{
			name: "cut off",
			body: claudeMessage(`{"hint":"Multiply`, "max_tokens"),
			check: func(t *testing.T, err error) {
				var mt *ErrMaxTokensExceeded
				require.ErrorAs(t, err, &mt)
				assert.Equal(t, `{"hint":"Multiply`, string(mt.Content))
			},
		},
		{
			name:   "schema mismatch",
			body:   claudeMessage(`{"answer":24}`, "end_turn"),
			schema: schema,
			check: func(t *testing.T, err error) {
				var inv *ErrInvalidResponse
				require.ErrorAs(t, err, &inv)
			},
		},
		{
			name: "no text block",
			body: func() map[string]any {
				m := claudeMessage("", "end_turn")
				m["content"] = []map[string]any{}
				return m
			}(),
			check: func(t *testing.T, err error) {
				var inv *ErrInvalidResponse
				require.ErrorAs(t, err, &inv)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := (&anthropicStub{body: tt.body}).provider(t)
			req := hintRequest()
			req.Schema = tt.schema
			_, err := p.Generate(context.Background(), req)
			tt.check(t, err)
		})
	}
}

func TestAnthropicProvider_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		kind       string
		retryAfter string
		wantRate   bool
		wantWait   time.Duration
	}{
		{"rate limited", http.StatusTooManyRequests, "rate_limit_error", "", true, 0},
		{"rate limited with retry-after", http.StatusTooManyRequests, "rate_limit_error", "5", true, 5 * time.Second},
		{"overloaded", 529, "overloaded_error", "", false, 0},
		{"server error", http.StatusInternalServerError, "api_error", "", false, 0},
		{"bad key", http.StatusUnauthorized, "authentication_error", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &anthropicStub{status: tt.status, body: claudeError(tt.kind), header: http.Header{}}
			if tt.retryAfter != "" {
				stub.header.Set("Retry-After", tt.retryAfter)
			}
			_, err := stub.provider(t).Generate(context.Background(), hintRequest())
			require.Error(t, err)

			var rl *ErrRateLimit
			if !tt.wantRate {
				var unavail *ErrProviderUnavailable
				assert.True(t, errors.As(err, &unavail), "got %T (%v)", err, err)
				return
			}
			require.ErrorAs(t, err, &rl)
			assert.Equal(t, tt.wantWait, rl.RetryAfter)
		})
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	assert.Equal(t, "claude-sonnet-4-20250514", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "claude-opus-x", resolveModel("claude-opus-x", anthropicModels))

	_, err = NewAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)
}
