package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEOQUEST_DB", "GEOQUEST_USER", "GEOQUEST_LOG_LEVEL", "GEOQUEST_LOG_FORMAT",
		"GEOQUEST_LOG_FILE", "GEOQUEST_STARTING_COINS", "GEOQUEST_HINTS", "GEOQUEST_LLM_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	// Keep a stray .env in the package dir from leaking in.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("USER", "ada")

	cfg := Load()
	if cfg.User != "ada" {
		t.Errorf("User = %q, want ada", cfg.User)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.StartingCoins != DefaultStartingCoins {
		t.Errorf("StartingCoins = %d", cfg.StartingCoins)
	}
	if !cfg.HintsEnabled {
		t.Error("hints should default on")
	}
	if cfg.LLM.Enabled() {
		t.Errorf("LLM enabled without keys: %q", cfg.LLM.Provider)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOQUEST_USER", "grace")
	t.Setenv("GEOQUEST_DB", "/tmp/g.db")
	t.Setenv("GEOQUEST_STARTING_COINS", "-5")
	t.Setenv("GEOQUEST_HINTS", "off")
	t.Setenv("GEOQUEST_LLM_PROVIDER", "mock")

	cfg := Load()
	if cfg.User != "grace" || cfg.DBPath != "/tmp/g.db" {
		t.Errorf("unexpected %+v", cfg)
	}
	if cfg.StartingCoins != 0 {
		t.Errorf("negative starting coins not clamped: %d", cfg.StartingCoins)
	}
	if cfg.HintsEnabled {
		t.Error("GEOQUEST_HINTS=off ignored")
	}
	if cfg.LLM.Provider != "mock" {
		t.Errorf("provider = %q", cfg.LLM.Provider)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("GEOQUEST_LOG_LEVEL")
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("GEOQUEST_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("GEOQUEST_LOG_LEVEL") })

	if got := Load().LogLevel; got != "debug" {
		t.Errorf("LogLevel = %q, want debug from .env", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		val      string
		fallback bool
		want     bool
	}{
		{"", true, true},
		{"on", false, true},
		{"YES", false, true},
		{"off", true, false},
		{"0", true, false},
		{"true", false, true},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Setenv("GEOQUEST_TEST_BOOL", tt.val)
		if got := getEnvBool("GEOQUEST_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.val, tt.fallback, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GEOQUEST_TEST_INT", "12")
	if got := getEnvInt("GEOQUEST_TEST_INT", 3); got != 12 {
		t.Errorf("got %d", got)
	}
	t.Setenv("GEOQUEST_TEST_INT", "twelve")
	if got := getEnvInt("GEOQUEST_TEST_INT", 3); got != 3 {
		t.Errorf("got %d", got)
	}
}
