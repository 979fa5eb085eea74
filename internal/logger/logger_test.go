package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}

		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithWriter(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "records", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "records=3") {
		t.Errorf("warn message missing: %s", out)
	}

	if err := log.SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}

	log.With("file", "people.json").Debug("now visible")

	if !strings.Contains(buf.String(), "file=people.json") {
		t.Errorf("child logger attributes missing: %s", buf.String())
	}

	if err := log.SetLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("SetLevel error = %v, want %v", err, ErrUnknownLevel)
	}
}
