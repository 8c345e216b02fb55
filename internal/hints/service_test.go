package hints

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/llm"
)

func TestService_UsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint": "Adjacent angles on a line add up to 180 degrees."}`),
	})
	svc := NewService(mock, DefaultConfig(), zerolog.Nop())

	h, err := svc.Hint(t.Context(), "Angles & Relations", "Alpha is 40 degrees. How big is beta?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Source != SourceLLM {
		t.Errorf("source = %s, want llm", h.Source)
	}
	if !strings.Contains(h.Text, "180") {
		t.Errorf("hint = %q", h.Text)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema != HintSchema {
		t.Error("expected HintSchema on the request")
	}
	if call.System != hintSystemPrompt {
		t.Error("expected hint system prompt")
	}
	if mock.Purposes[0] != llm.PurposeHint {
		t.Errorf("purpose = %q, want %q", mock.Purposes[0], llm.PurposeHint)
	}
	if !strings.Contains(call.Messages[0].Content, "Angles & Relations") {
		t.Errorf("user message missing topic: %q", call.Messages[0].Content)
	}
}

func TestService_CachesPerTask(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint": "Use A = g * h."}`),
	})
	svc := NewService(mock, DefaultConfig(), zerolog.Nop())

	for i := 0; i < 3; i++ {
		h, _ := svc.Hint(t.Context(), "Areas & Terms", "Parallelogram g = 5, h = 4.")
		if h.Text != "Use A = g * h." {
			t.Fatalf("call %d: hint = %q", i, h.Text)
		}
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestService_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig(), zerolog.Nop())

	h, err := svc.Hint(t.Context(), "Understanding Shapes", "Which shape is a trapezoid?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Source != SourceReference {
		t.Errorf("source = %s, want reference", h.Source)
	}
	if !strings.HasPrefix(h.Text, "Trapezoid") {
		t.Errorf("hint = %q", h.Text)
	}
}

func TestService_FallsBackOnEmptyHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"hint": "  "}`)})
	svc := NewService(mock, DefaultConfig(), zerolog.Nop())

	h, _ := svc.Hint(t.Context(), "Similarity", "Scale factor k = 2.")
	if h.Source != SourceReference {
		t.Errorf("source = %s, want reference", h.Source)
	}
}

func TestService_NoProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), zerolog.Nop())
	h, err := svc.Hint(t.Context(), "Understanding Shapes", "Something unrelated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Source != SourceReference || h.Text == "" {
		t.Errorf("hint = %+v", h)
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback("No Such Topic", "q"); !strings.Contains(got, "given") {
		t.Errorf("unknown topic fallback = %q", got)
	}
	if got := Fallback("understanding shapes", "xyz"); !strings.HasPrefix(got, "Remember: ") {
		t.Errorf("no-match fallback = %q", got)
	}
}

func TestService_KeepsCallerPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"hint": "Count the faces."}`)})
	svc := NewService(mock, DefaultConfig(), zerolog.Nop())

	ctx := llm.WithPurpose(t.Context(), llm.PurposeProbe)
	if _, err := svc.Hint(ctx, "Solids & Surfaces", "How many faces has a cube?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Purposes[0] != llm.PurposeProbe {
		t.Errorf("purpose = %q, want %q", mock.Purposes[0], llm.PurposeProbe)
	}
}
