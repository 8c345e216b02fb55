// Package hints supplies at most one hint per task, from an LLM when one
// is configured and from the topic reference sheet otherwise.
package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/llm"
)

// Source tells where a hint came from.
type Source string

const (
	SourceLLM       Source = "llm"
	SourceReference Source = "reference"
)

// Hint is a delivered hint.
type Hint struct {
	Text   string
	Source Source
}

// Provider supplies hints for a task.
type Provider interface {
	Hint(ctx context.Context, topicTitle, question string) (Hint, error)
}

// Service asks an LLM for hints and falls back to the reference sheet when
// the provider is missing or fails. Answers are cached per task.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      zerolog.Logger

	mu    sync.Mutex
	cache map[string]Hint
}

// NewService creates a hint service. provider may be nil.
func NewService(provider llm.Provider, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		log:      log,
		cache:    make(map[string]Hint),
	}
}

type hintOutput struct {
	Hint string `json:"hint"`
}

// Hint returns the hint for question. It never fails; errors from the
// provider are logged and replaced by the reference hint.
func (s *Service) Hint(ctx context.Context, topicTitle, question string) (Hint, error) {
	key := topicTitle + "\x00" + question

	s.mu.Lock()
	if h, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return h, nil
	}
	s.mu.Unlock()

	h := Hint{Text: Fallback(topicTitle, question), Source: SourceReference}
	if s.provider != nil {
		text, err := s.generate(ctx, topicTitle, question)
		if err != nil {
			s.log.Warn().Err(err).Str("topic", topicTitle).Msg("hint generation failed, using reference sheet")
		} else {
			h = Hint{Text: text, Source: SourceLLM}
		}
	}

	s.mu.Lock()
	s.cache[key] = h
	s.mu.Unlock()
	return h, nil
}

func (s *Service) generate(ctx context.Context, topicTitle, question string) (string, error) {
	if llm.PurposeFrom(ctx) == llm.PurposeUnknown {
		ctx = llm.WithPurpose(ctx, llm.PurposeHint)
	}

	req := llm.SingleTurn(hintSystemPrompt, buildHintUserMessage(topicTitle, question), HintSchema)
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse hint response: %w", err)
	}
	text := strings.TrimSpace(out.Hint)
	if text == "" {
		return "", fmt.Errorf("parse hint response: empty hint")
	}
	return text, nil
}
