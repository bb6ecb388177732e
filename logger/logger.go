package logger

import (
	"fmt"
	"time"

	"github.com/lamnhan066/lite-logger/core"
	"github.com/lamnhan066/lite-logger/formatter"
	"github.com/lamnhan066/lite-logger/handler"
)

// Logger gates, renders, and dispatches log messages (immutable).
// Instances share no state with each other; the severity shorthands and
// Emit may be called from any goroutine.
type Logger struct {
	name      string
	enabled   bool
	minLevel  core.Severity
	style     formatter.Style
	template  formatter.Template
	timestamp TimestampFunc
	handler   handler.Handler
}

// Emit is the sole execution path. It checks the enabled flag, then the
// severity threshold, and returns immediately when either gate fails; a
// lazy message is never resolved for a gated-out call. Once both gates
// pass the message is resolved exactly once, rendered through the
// template, and dispatched to exactly one sink. A sink error is
// returned unmodified; a panic from the sink, a callback, or the
// timestamp function propagates to the caller.
func (l *Logger) Emit(msg core.Message, sev core.Severity) error {
	if !l.enabled {
		return nil
	}
	if sev > l.minLevel {
		return nil
	}

	raw := msg.Resolve()
	col := l.style.Color(sev)
	rendered := l.template.Render(
		col,
		l.timestamp(time.Now()),
		l.style.Icon(sev),
		l.style.Label(sev),
		raw,
	)

	return l.handler.Handle(&core.Record{
		Severity: sev,
		Name:     l.name,
		Color:    col,
		Raw:      raw,
		Rendered: rendered,
	})
}

// Name returns the logger's display name
func (l *Logger) Name() string {
	return l.name
}

// Enabled reports whether the logger emits at all
func (l *Logger) Enabled() bool {
	return l.enabled
}

// MinLevel returns the configured minimum severity
func (l *Logger) MinLevel() core.Severity {
	return l.minLevel
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	return l.Emit(core.Text(msg), core.ErrorLevel)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) error {
	return l.Emit(core.Text(msg), core.WarningLevel)
}

// Success logs a success message
func (l *Logger) Success(msg string) error {
	return l.Emit(core.Text(msg), core.SuccessLevel)
}

// Info logs an info message. It is equivalent to Emit with InfoLevel,
// the default severity.
func (l *Logger) Info(msg string) error {
	return l.Emit(core.Text(msg), core.InfoLevel)
}

// Step logs a step message
func (l *Logger) Step(msg string) error {
	return l.Emit(core.Text(msg), core.StepLevel)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) error {
	return l.Emit(core.Text(msg), core.DebugLevel)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.logf(core.ErrorLevel, format, args)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.logf(core.WarningLevel, format, args)
}

// Successf logs a success message with formatting
func (l *Logger) Successf(format string, args ...interface{}) error {
	return l.logf(core.SuccessLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.logf(core.InfoLevel, format, args)
}

// Stepf logs a step message with formatting
func (l *Logger) Stepf(format string, args ...interface{}) error {
	return l.logf(core.StepLevel, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.logf(core.DebugLevel, format, args)
}

// logf defers the Sprintf behind a lazy message so filtered-out calls
// skip the formatting work
func (l *Logger) logf(sev core.Severity, format string, args []interface{}) error {
	return l.Emit(core.Lazy(func() string {
		return fmt.Sprintf(format, args...)
	}), sev)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
