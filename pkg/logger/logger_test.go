package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelFiltering(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		Logger = originalLogger
		SetLogLevel(INFO)
	})

	var buf bytes.Buffer
	Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	SetLogLevel(INFO)
	Debug("debug message should be filtered")
	Info("info message should appear")

	output := buf.String()
	if strings.Contains(output, "debug message should be filtered") {
		t.Fatalf("debug message was logged at INFO level:\n%s", output)
	}
	if !strings.Contains(output, "info message should appear") {
		t.Fatalf("info message was not logged:\n%s", output)
	}

	buf.Reset()
	SetLogLevel(ERROR)
	Warn("warn message should be filtered")
	Error("error message should appear")
	output = buf.String()
	if strings.Contains(output, "warn message should be filtered") {
		t.Fatalf("warn message was logged at ERROR level:\n%s", output)
	}
	if !strings.Contains(output, "error message should appear") {
		t.Fatalf("error message was not logged:\n%s", output)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		" INFO ":  INFO,
		"warning": WARN,
		"error":   ERROR,
	}
	for input, want := range cases {
		got, err := ParseLogLevel(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("level for %q: got %v want %v", input, got, want)
		}
	}
	if _, err := ParseLogLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestConfigureReportsInvalidOptions(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		Logger = originalLogger
		SetLogLevel(INFO)
	})

	err := Configure(Options{Level: "nope", Format: "xml"})
	if err == nil {
		t.Fatal("expected configure to report invalid options")
	}
	if !strings.Contains(err.Error(), "nope") || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected both problems to be reported, got %v", err)
	}
	if Logger == nil {
		t.Fatal("expected logger to remain usable")
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	originalLogger := Logger
	t.Cleanup(func() {
		Logger = originalLogger
		SetLogLevel(INFO)
	})

	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	if err := Configure(Options{Level: "info", File: path, Format: "json"}); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if !Enabled(INFO) || Enabled(DEBUG) {
		t.Fatalf("expected INFO level to be active")
	}
}
