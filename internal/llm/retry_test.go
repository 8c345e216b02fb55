package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func hintOK() MockResponse { return MockResponse{Content: json.RawMessage(`{"hint":"ok"}`)} }

func failWith(err error) MockResponse { return MockResponse{Err: err} }

func TestRetry(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("down")}
	invalid := &ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("missing hint")}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{hintOK()}, false, 1},
		{"transient then success", []MockResponse{failWith(down), hintOK()}, false, 2},
		{"all attempts fail", []MockResponse{failWith(down), failWith(down), failWith(down)}, true, 3},
		{"truncation is final", []MockResponse{failWith(&ErrMaxTokensExceeded{}), hintOK()}, true, 1},
		{"schema mismatch retried once", []MockResponse{failWith(invalid), failWith(invalid), hintOK()}, true, 2},
		{"schema mismatch then success", []MockResponse{failWith(invalid), hintOK()}, false, 2},
		{"rate limit honors retry-after", []MockResponse{failWith(&ErrRateLimit{RetryAfter: time.Millisecond}), hintOK()}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != `{"hint":"ok"}` {
				t.Fatalf("content = %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(failWith(&ErrProviderUnavailable{}), hintOK())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetry_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(hintOK())
	if _, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if WithRetry(mock, RetryConfig{}).ModelID() != "mock" {
		t.Fatal("ModelID not delegated")
	}
}
