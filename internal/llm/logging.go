package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/store"
)

// Purpose labels stored with each recorded request.
const (
	PurposeHint    = "hint"
	PurposeProbe   = "probe"
	PurposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the request made with it is recorded under
// purpose.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, _ := ctx.Value(purposeKey{}).(string); v != "" {
		return v
	}
	return PurposeUnknown
}

// EventRecorder persists LLM request events. store.EventRepo satisfies it.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every LLM request as an
// event and a structured log line.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder EventRecorder
	log      zerolog.Logger
}

// WithLogging wraps a Provider with event logging. recorder may be nil.
func WithLogging(p Provider, provider string, recorder EventRecorder, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, provider: provider, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	ev := l.log.Debug()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev.Str("provider", data.Provider).
		Str("model", data.Model).
		Str("purpose", purpose).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Int64("latency_ms", data.LatencyMs).
		Msg("llm request")

	if l.recorder != nil {
		// A failed write must not fail the request.
		if logErr := l.recorder.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn().Err(logErr).Msg("record llm request event failed")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
