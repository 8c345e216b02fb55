package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
	}{
		{"default base URL", OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-001"}, false},
		{"custom base URL", OpenRouterConfig{APIKey: "sk-or", Model: "meta-llama/llama-3-8b", BaseURL: "https://or.example/v1"}, false},
		{"missing key", OpenRouterConfig{Model: "google/gemini-2.0-flash-001"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// Slugs are not aliased.
			if p.ModelID() != tt.cfg.Model {
				t.Fatalf("model = %q, want %q", p.ModelID(), tt.cfg.Model)
			}
		})
	}
}

func TestOpenRouterProvider_SendsAppTitle(t *testing.T) {
	var title, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title = r.Header.Get("X-Title")
		auth = r.Header.Get("Authorization")
		chatHandler(`{"hint":"Opposite angles match."}`, "stop")(w, r)
	}))
	defer srv.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "gpt", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	if p.ModelID() != "gpt" {
		t.Fatalf("slug was aliased to %q", p.ModelID())
	}
	if _, err := p.Generate(context.Background(), SingleTurn("", "hint please", nil)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if title != "geoquest" || auth != "Bearer sk-or" {
		t.Fatalf("headers: title=%q auth=%q", title, auth)
	}
}
