package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for input %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tt.input, err)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("expected %v, got %v for input %q", tt.expected, got, tt.input)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.level.String()
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should not be logged at WARN level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should not be logged at WARN level")
	}

	l.Warn("warn message")
	l.Error("error message")

	output = buf.String()
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should be logged at WARN level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should be logged at WARN level")
	}
}

func TestLogger_LogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	l.Info("trip to %s", "Istanbul")

	output := buf.String()
	if !strings.Contains(output, "[INFO]") {
		t.Error("log output should contain level prefix")
	}
	if !strings.Contains(output, "trip to Istanbul") {
		t.Error("log output should contain formatted message")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	l.With("wizard").Debug("advanced to step %d", 2)

	if !strings.Contains(buf.String(), "[DEBUG] wizard: advanced to step 2") {
		t.Errorf("expected component prefix, got %q", buf.String())
	}
}

func TestLogger_WithNested(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelInfo)

	child := l.With("tui").With("planner")
	child.Debug("filtered by the root level")
	if buf.Len() != 0 {
		t.Errorf("expected debug to be filtered at info level, got %q", buf.String())
	}

	child.Info("trip created")
	if !strings.Contains(buf.String(), "[INFO] tui/planner: trip created") {
		t.Errorf("expected joined component prefix, got %q", buf.String())
	}
}

func TestLogger_WithFollowsRootChanges(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	child := l.With("bus").With("events")

	// Changes made after the child exists still apply to it
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)
	child.Debug("published")
	if !strings.Contains(buf.String(), "[DEBUG] bus/events: published") {
		t.Errorf("expected child to follow root level and output, got %q", buf.String())
	}

	buf.Reset()
	child.SetLevel(LevelError)
	l.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected SetLevel on a child to update the root, got %q", buf.String())
	}
}

func TestLogger_Enabled(t *testing.T) {
	l := New()
	l.SetLevel(LevelWarn)
	child := l.With("bus")

	if child.Enabled(LevelInfo) {
		t.Error("info should be disabled at WARN level")
	}
	if !child.Enabled(LevelError) {
		t.Error("error should be enabled at WARN level")
	}

	l.SetLevel(LevelDebug)
	if !child.Enabled(LevelDebug) {
		t.Error("child should follow the root level")
	}
}

func TestLogger_UnprefixedFormat(t *testing.T) {
	t.Setenv("TRIPWISE_LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.Warn("%d%% booked", 50)
	if !strings.HasSuffix(buf.String(), "[WARN] 50% booked\n") {
		t.Errorf("unexpected line %q", buf.String())
	}
}

func TestLogger_EnvVarLogLevel(t *testing.T) {
	t.Setenv("TRIPWISE_LOG_LEVEL", "debug")

	l := New()
	if l.level != LevelDebug {
		t.Errorf("expected debug level from env var, got %v", l.level)
	}
}

func TestLogger_EnvVarLogFile(t *testing.T) {
	tmpPath := filepath.Join(t.TempDir(), "tripwise.log")
	t.Setenv("TRIPWISE_LOG_FILE", tmpPath)

	l := New()
	defer func() { _ = l.Close() }()

	l.Info("test message")

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "test message") {
		t.Error("log file should contain the test message")
	}
}

func TestLogger_Configure(t *testing.T) {
	tmpPath := filepath.Join(t.TempDir(), "configured.log")

	l := New()
	if err := l.Configure("error", tmpPath); err != nil {
		t.Fatalf("unexpected configure error: %v", err)
	}
	defer func() { _ = l.Close() }()

	l.Warn("dropped")
	l.Error("kept")

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "dropped") {
		t.Error("warn should be filtered at ERROR level")
	}
	if !strings.Contains(string(content), "kept") {
		t.Error("error should be written to the configured file")
	}

	if err := l.Configure("loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestLogger_Close(t *testing.T) {
	tmpPath := filepath.Join(t.TempDir(), "close.log")
	t.Setenv("TRIPWISE_LOG_FILE", tmpPath)

	l := New()
	if err := l.Close(); err != nil {
		t.Errorf("unexpected error closing logger: %v", err)
	}
	// Second close is a no-op
	if err := l.Close(); err != nil {
		t.Errorf("unexpected error on second close: %v", err)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	Default.SetLevel(LevelDebug)

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	output := buf.String()
	for _, want := range []string{"debug test", "info test", "warn test", "error test"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}
