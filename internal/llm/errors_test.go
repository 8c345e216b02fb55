package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestClassifyResponse(t *testing.T) {
	cause := errors.New("boom")

	h := http.Header{}
	h.Set("Retry-After", "7")
	err := classifyResponse(http.StatusTooManyRequests, h, cause)
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("retry after = %s", rl.RetryAfter)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should unwrap")
	}

	err = classifyStatus(http.StatusBadGateway, cause)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := map[string]time.Duration{
		"":                              0,
		"3":                             3 * time.Second,
		"-1":                            0,
		"Wed, 21 Oct 2015 07:28:00 GMT": 0,
	}
	for in, want := range tests {
		if got := parseRetryAfter(in); got != want {
			t.Errorf("parseRetryAfter(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{}, "llm: rate limited"},
		{&ErrRateLimit{RetryAfter: 2 * time.Second, Err: errors.New("slow down")}, "llm: rate limited, retry in 2s: slow down"},
		{&ErrProviderUnavailable{}, "llm: provider unavailable"},
		{&ErrInvalidResponse{Err: errors.New("missing hint")}, "llm: unusable reply: missing hint"},
		{&ErrMaxTokensExceeded{}, "llm: reply cut off at the token limit"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
