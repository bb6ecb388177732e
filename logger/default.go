package logger

import (
	"sync"

	"github.com/lamnhan066/lite-logger/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Plain console sink at InfoLevel, no name
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Emit dispatches a message at the given severity using the default logger
func Emit(msg core.Message, sev core.Severity) error {
	return Default().Emit(msg, sev)
}

// Error logs an error message using the default logger
func Error(msg string) error {
	return Default().Error(msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) error {
	return Default().Warning(msg)
}

// Success logs a success message using the default logger
func Success(msg string) error {
	return Default().Success(msg)
}

// Info logs an info message using the default logger
func Info(msg string) error {
	return Default().Info(msg)
}

// Step logs a step message using the default logger
func Step(msg string) error {
	return Default().Step(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) error {
	return Default().Debug(msg)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) error {
	return Default().Warningf(format, args...)
}

// Successf logs a formatted success message using the default logger
func Successf(format string, args ...interface{}) error {
	return Default().Successf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Stepf logs a formatted step message using the default logger
func Stepf(format string, args ...interface{}) error {
	return Default().Stepf(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) error {
	return Default().Debugf(format, args...)
}
