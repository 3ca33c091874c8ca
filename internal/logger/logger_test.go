package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONIncludesServiceAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "json", &buf)
	log.Info().Msg("hidden")
	log.Warn().Str("ledger", "foodLogs").Msg("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["service"] != "athlete" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["ledger"] != "foodLogs" || entry["message"] != "visible" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", "console", &buf)
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}
	log.Error().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
