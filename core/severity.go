package core

import "strings"

// Severity represents the severity of a log message.
//
// The ordinal order is a priority order: ErrorLevel is the highest
// priority (ordinal 0) and DebugLevel the lowest (ordinal 5). A message
// is emitted when its ordinal is less than or equal to the logger's
// minimum level, so lowering the minimum level tightens the filter.
type Severity int8

const (
	// ErrorLevel for failures that need attention
	ErrorLevel Severity = iota
	// WarningLevel for potential problems
	WarningLevel
	// SuccessLevel for completed operations
	SuccessLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// StepLevel for progress through a multi-step process
	StepLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case SuccessLevel:
		return "SUCCESS"
	case InfoLevel:
		return "INFO"
	case StepLevel:
		return "STEP"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Label returns the default fixed-width label used in rendered output
func (s Severity) Label() string {
	switch s {
	case ErrorLevel:
		return "ERRR"
	case WarningLevel:
		return "WARN"
	case SuccessLevel:
		return "SUCC"
	case InfoLevel:
		return "INFO"
	case StepLevel:
		return "STEP"
	case DebugLevel:
		return "DBUG"
	default:
		return "????"
	}
}

// Icon returns the default icon for the severity
func (s Severity) Icon() string {
	switch s {
	case ErrorLevel:
		return "❌"
	case WarningLevel:
		return "⚠️"
	case SuccessLevel:
		return "✅"
	case InfoLevel:
		return "💡"
	case StepLevel:
		return "🔄"
	case DebugLevel:
		return "🧠"
	default:
		return ""
	}
}

// DefaultColor returns the default terminal color for the severity
func (s Severity) DefaultColor() Color {
	switch s {
	case ErrorLevel:
		return Red
	case WarningLevel:
		return Yellow
	case SuccessLevel:
		return Green
	case InfoLevel:
		return Blue
	case StepLevel:
		return Cyan
	case DebugLevel:
		return Gray
	default:
		return Blue
	}
}

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(s) {
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarningLevel
	case "SUCCESS":
		return SuccessLevel
	case "INFO":
		return InfoLevel
	case "STEP":
		return StepLevel
	case "DEBUG":
		return DebugLevel
	default:
		return InfoLevel
	}
}
