package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	sink          *switchableWriter
)

// switchableWriter lets the active output be swapped while interactive
// prompts own the terminal. Writes that arrive while diverted go to the
// diversion writer instead of the terminal.
type switchableWriter struct {
	mu       sync.Mutex
	terminal io.Writer
	diverted io.Writer
}

func (w *switchableWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.diverted != nil {
		return w.diverted.Write(p)
	}
	return w.terminal.Write(p)
}

// Init configures the package logger. It should be called once at
// application startup, before any interactive step runs.
func Init(level LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		output = os.Stderr
	}
	sink = &switchableWriter{terminal: output}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level.SlogLevel()})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Divert redirects log output to w (typically a buffer) while an
// interactive prompt is rendering. Restore returns output to the
// terminal; the caller is responsible for flushing the buffer if the
// diverted entries should still be shown.
func Divert(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.mu.Lock()
		sink.diverted = w
		sink.mu.Unlock()
	}
}

// Restore undoes a previous Divert.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.mu.Lock()
		sink.diverted = nil
		sink.mu.Unlock()
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	logger := defaultLogger
	if logger == nil {
		// Not initialized, e.g. in tests that exercise a component
		// directly. Fall back to stderr so nothing is silently lost.
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		}
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
