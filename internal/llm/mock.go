package llm

import (
	"context"
	"encoding/json"
	"sync"
)

const mockModel = "mock"

// MockResponse is one scripted reply. A non-nil Err is returned as is.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every
// request it sees. Replies go through the same schema check as real
// providers. Once the script is used up it answers with Fallback, or
// with ErrProviderUnavailable when Fallback is nil.
type MockProvider struct {
	Fallback func(Request) MockResponse

	mu       sync.Mutex
	script   []MockResponse
	Calls    []Request
	Purposes []string
}

// NewMockProvider returns a MockProvider that plays back responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

// NewOfflineProvider returns the provider behind the "mock" setting: it
// answers every hint request with a fixed pointer to the reference sheet.
func NewOfflineProvider() *MockProvider {
	return &MockProvider{Fallback: offlineHint}
}

func offlineHint(Request) MockResponse {
	return MockResponse{
		Content: json.RawMessage(`{"hint":"Look up the rule for this shape on the reference sheet, then plug in the given values."}`),
	}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	reply, ok := m.next(ctx, req)
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return finishResponse(req, reply.Content, reply.Usage, mockModel, StopEnd)
}

func (m *MockProvider) next(ctx context.Context, req Request) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.script) > 0 {
		reply := m.script[0]
		m.script = m.script[1:]
		return reply, true
	}
	if m.Fallback != nil {
		return m.Fallback(req), true
	}
	return MockResponse{}, false
}

func (m *MockProvider) ModelID() string { return mockModel }

// AddResponse queues another scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	m.script = append(m.script, resp)
	m.mu.Unlock()
}

// CallCount reports how many requests have been made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
