package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
	}{
		{"debug", "text"},
		{"info", "text"},
		{"info", "json"},
		{"info", "auto"},
		{"warn", "json"},
		{"error", "text"},
		{"nonsense", "nonsense"}, // both fall back, never nil
	}

	for _, tt := range tests {
		logger := New(tt.level, tt.format)
		if logger == nil {
			t.Fatalf("New(%q, %q) returned nil", tt.level, tt.format)
		}
		logger.Info("constructor smoke test")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"fatal", slog.LevelInfo}, // unknown defaults to info
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: ParseLevel("warn"),
	}))

	logger.Debug("suppressed debug line")
	logger.Info("suppressed info line")
	logger.Warn("kept warn line")
	logger.Error("kept error line")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("messages below warn leaked through: %s", out)
	}
	if !strings.Contains(out, "kept warn line") || !strings.Contains(out, "kept error line") {
		t.Errorf("messages at or above warn missing: %s", out)
	}
}
