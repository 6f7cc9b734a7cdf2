package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is a logging severity
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a name such as "debug" or "WARN" to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "", "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

// Logger writes levelled lines through a standard log.Logger. A nil *Logger
// discards everything.
type Logger struct {
	out    *log.Logger
	level  Level
	prefix string
}

// New creates a logger writing lines at or above level to w
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

// Discard returns a logger that drops every message
func Discard() *Logger {
	return New(io.Discard, Error+1)
}

// OpenFile creates dir if needed and returns a logger that writes to a
// timestamped file inside it as well as to stderr. Close the returned file
// on shutdown.
func OpenFile(dir, name string, level Level) (*Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(io.MultiWriter(os.Stderr, file), level), file, nil
}

// With returns a child logger tagging every line with key=value
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	child := *l
	child.prefix = fmt.Sprintf("%s%s=%v ", l.prefix, key, value)
	return &child
}

// Enabled reports whether messages at level are written
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, format, args...) }

func (l *Logger) Infof(format string, args ...any) { l.logf(Info, format, args...) }

func (l *Logger) Warnf(format string, args ...any) { l.logf(Warn, format, args...) }

func (l *Logger) Errorf(format string, args ...any) { l.logf(Error, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.out.Printf("[%s] %s%s", level, l.prefix, fmt.Sprintf(format, args...))
}
