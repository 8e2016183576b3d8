package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders log lines by severity. Lines below the logger's level are
// dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel accepts a level name in any case, plus "warning" for warn.
// Unknown names return LevelInfo with an error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, nil
	}
	for lvl, n := range levelNames {
		if n == name {
			return Level(lvl), nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level: %s", s)
}

// Logger is a leveled logger. Output is discarded until a file or writer is
// attached because the TUI owns stdout.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File

	parent *Logger
	prefix string
}

// Default is shared by every package; components take children of it.
var Default *Logger

func init() {
	Default = New()
}

// New returns a root logger. TRIPWISE_LOG_LEVEL and TRIPWISE_LOG_FILE are
// applied when set; a bad level is ignored and the default stays at info.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}

	if levelStr := os.Getenv("TRIPWISE_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
		}
	}

	if logFile := os.Getenv("TRIPWISE_LOG_FILE"); logFile != "" {
		_ = l.openFile(logFile)
	}

	return l
}

// Configure applies a level and log file from loaded configuration.
// An empty level or path leaves the current setting in place.
func (l *Logger) Configure(level, file string) error {
	l = l.root()
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
	}
	if file != "" {
		return l.openFile(file)
	}
	return nil
}

func (l *Logger) openFile(path string) error {
	l = l.root()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.logger.SetOutput(f)
	return nil
}

// Close releases the log file, if any, and discards further output.
func (l *Logger) Close() error {
	l = l.root()
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.logger.SetOutput(io.Discard)
		return err
	}
	return nil
}

// SetLevel changes the threshold for the root and all of its children.
func (l *Logger) SetLevel(level Level) {
	l = l.root()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the root and all of its children to w.
func (l *Logger) SetOutput(w io.Writer) {
	l = l.root()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// With returns a child logger that tags each line with a component name.
// Children always write through the root logger, so they follow its level
// and output. Nested components are joined with "/", e.g. "tui/planner".
func (l *Logger) With(component string) *Logger {
	if l.parent == nil {
		return &Logger{parent: l, prefix: component}
	}
	prefix := component
	if l.prefix != "" {
		prefix = l.prefix + "/" + component
	}
	return &Logger{parent: l.parent, prefix: prefix}
}

// root returns the logger that owns the level and output.
func (l *Logger) root() *Logger {
	for l.parent != nil {
		l = l.parent
	}
	return l
}

// Enabled reports whether a line at level would be written.
func (l *Logger) Enabled(level Level) bool {
	r := l.root()
	r.mu.Lock()
	defer r.mu.Unlock()
	return level >= r.level
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(LevelError, format, v...) }

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.root().write(level, l.prefix, format, v...)
}

// write formats one line as "[LEVEL] component: message". Only the root
// holds the output, so l is always a root here.
func (l *Logger) write(level Level, component, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString("[" + level.String() + "] ")
	if component != "" {
		b.WriteString(component + ": ")
	}
	fmt.Fprintf(&b, format, v...)
	l.logger.Print(b.String())
}

// Debug, Info, Warn and Error log through Default without a component.
func Debug(format string, v ...interface{}) { Default.Debug(format, v...) }
func Info(format string, v ...interface{})  { Default.Info(format, v...) }
func Warn(format string, v ...interface{})  { Default.Warn(format, v...) }
func Error(format string, v ...interface{}) { Default.Error(format, v...) }

// Configure applies config file settings to Default.
func Configure(level, file string) error {
	return Default.Configure(level, file)
}

// Close releases Default's log file.
func Close() error {
	return Default.Close()
}
