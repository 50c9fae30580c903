package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

// --- Init Tests ---

func TestInit_DefaultLevel_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("test info")
	if !strings.Contains(buf.String(), "test info") {
		t.Error("Info message should be logged at default level")
	}

	buf.Reset()

	Debug("test debug")
	if strings.Contains(buf.String(), "test debug") {
		t.Error("Debug message should not be logged at default level")
	}
}

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	Debug("test debug message", "path", "a.ipynb")
	if !strings.Contains(buf.String(), "test debug message") {
		t.Error("Debug message should be logged when Debug=true")
	}
	if !strings.Contains(buf.String(), "path=a.ipynb") {
		t.Error("Debug message should carry its attributes")
	}
}

func TestInit_QuietOverridesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Quiet: true, Output: buf})
	defer resetLogger()

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	output := buf.String()
	for _, hidden := range []string{"debug message", "info message", "warn message"} {
		if strings.Contains(output, hidden) {
			t.Errorf("%q should not be logged when Quiet=true", hidden)
		}
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error should be logged when Quiet=true")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("test message", "count", 3)

	output := buf.String()
	if !strings.HasPrefix(output, "{") {
		t.Errorf("JSON format should produce JSON output, got %q", output)
	}
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Error("JSON output should contain the message")
	}
	if !strings.Contains(output, `"count":3`) {
		t.Error("JSON output should contain attributes")
	}
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	Init(Options{Logger: custom, Debug: true})
	defer resetLogger()

	Info("dropped")
	Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("custom logger level should win over Debug option")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("custom logger should receive messages")
	}
}

func TestOptions_Level(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelInfo},
		{"debug", Options{Debug: true}, slog.LevelDebug},
		{"quiet", Options{Quiet: true}, slog.LevelError},
		{"quiet_and_debug", Options{Quiet: true, Debug: true}, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	Init(Options{Output: &bytes.Buffer{}})
	defer resetLogger()

	if Enabled(slog.LevelDebug) {
		t.Error("debug should be disabled by default")
	}
	if !Enabled(slog.LevelInfo) {
		t.Error("info should be enabled by default")
	}
}

// --- With Tests ---

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	l := With("path", "nb.ipynb")
	if l == nil {
		t.Fatal("With() returned nil")
	}
	l.Info("test with attrs")

	output := buf.String()
	if !strings.Contains(output, "test with attrs") || !strings.Contains(output, "nb.ipynb") {
		t.Errorf("expected message and attributes in output, got %q", output)
	}
}

// --- Context Tests ---

func TestDebugContext(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	DebugContext(context.Background(), "debug with context")

	if !strings.Contains(buf.String(), "debug with context") {
		t.Error("DebugContext should log message")
	}
}

func TestWarnContext(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	WarnContext(context.Background(), "warn with context")

	if !strings.Contains(buf.String(), "warn with context") {
		t.Error("WarnContext should log message")
	}
}
