package llm

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimit is returned when a provider answers 429. RetryAfter is
// zero unless the provider said how long to wait.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	msg := "llm: rate limited"
	if e.RetryAfter > 0 {
		msg += ", retry in " + e.RetryAfter.String()
	}
	return withCause(msg, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is returned when the reply is not JSON or does not
// match the request schema. Content holds the offending reply.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return withCause("llm: unusable reply", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures, 5xx answers and
// any other status the provider does not single out.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	return withCause("llm: provider unavailable", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is returned when generation stopped at the
// MaxTokens limit. Content is the partial reply.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm: reply cut off at the token limit"
}

func withCause(msg string, err error) string {
	if err == nil {
		return msg
	}
	return msg + ": " + err.Error()
}

// classifyStatus maps an HTTP status reported by a provider SDK onto the
// error types above.
func classifyStatus(status int, err error) error {
	return classifyResponse(status, nil, err)
}

// classifyResponse is classifyStatus with access to the response
// headers, so a Retry-After value can be carried along.
func classifyResponse(status int, header http.Header, err error) error {
	if status != http.StatusTooManyRequests {
		return &ErrProviderUnavailable{Err: err}
	}
	rl := &ErrRateLimit{Err: err}
	if header != nil {
		rl.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
	}
	return rl
}

// parseRetryAfter reads the delay-seconds form of Retry-After. HTTP
// dates and garbage yield zero, which falls back to normal backoff.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
