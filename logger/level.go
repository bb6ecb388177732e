package logger

import "github.com/lamnhan066/lite-logger/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	SuccessLevel = core.SuccessLevel
	InfoLevel    = core.InfoLevel
	StepLevel    = core.StepLevel
	DebugLevel   = core.DebugLevel
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}

// Text creates a literal message for Emit
func Text(s string) core.Message {
	return core.Text(s)
}

// Lazy creates a message resolved only when both gates pass
func Lazy(fn func() string) core.Message {
	return core.Lazy(fn)
}
