package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("action", "COIN_TRANSACTION").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["action"] != "COIN_TRANSACTION" || entry["level"] != "warn" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("missing timestamp")
	}
	if _, ok := entry["caller"]; !ok {
		t.Error("missing caller")
	}
}

func TestSetup_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("loud", "json", &buf)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "pretty", &buf)
	log.Info().Msg("quest complete")
	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "quest complete") {
		t.Fatalf("expected console output, got %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "geoquest.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	log := Setup("info", "json", f)
	log.Info().Msg("hello")
	if err := f.Sync(); err != nil {
		t.Fatal(err)
	}
}
