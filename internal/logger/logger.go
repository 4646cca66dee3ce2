// Package logger provides a simple logging interface for parkwatch components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// DebugEnv enables debug-level output when set to any non-empty value.
const DebugEnv = "PARKWATCH_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// zeroLogger implements Logger on top of zerolog.
type zeroLogger struct {
	zl zerolog.Logger
}

// New creates a logger that writes JSON lines to w, tagged with the component name.
// Debug messages are dropped unless debug is true.
func New(w io.Writer, component string, debug bool) Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return newZero(w, component, level)
}

// NewWithLevel creates a logger that drops messages below level, one of
// "debug", "info", "warn" or "error".
func NewWithLevel(w io.Writer, component, level string) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return newZero(w, component, lvl), nil
}

func newZero(w io.Writer, component string, level zerolog.Level) Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if component != "" {
		zl = zl.With().Str("component", component).Logger()
	}
	return &zeroLogger{zl: zl}
}

// NewEnvLogger creates a stderr logger that respects the PARKWATCH_DEBUG environment variable.
func NewEnvLogger(component string) Logger {
	return New(os.Stderr, component, os.Getenv(DebugEnv) != "")
}

// OpenFile creates a logger appending to the file at path. The TUI owns the
// terminal, so this is the only way logs are visible while it runs.
// PARKWATCH_DEBUG forces the debug level.
func OpenFile(path, component, level string) (Logger, io.Closer, error) {
	if os.Getenv(DebugEnv) != "" {
		level = "debug"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := NewWithLevel(f, component, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, f, nil
}

func (l *zeroLogger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *zeroLogger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *zeroLogger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *zeroLogger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing. Safe for concurrent use
// since poll cycles may log from several goroutines.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add("error", format, args...) }

// Messages returns a copy of the captured messages.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages() {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = l.messages[:0]
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = Noop()
)

// Default returns the default logger for the package.
// It discards everything until SetDefault is called by the CLI.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
