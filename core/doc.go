// Package core defines the shared types used across lite-logger.
//
// It provides the Severity type for priority-ordered filtering, the
// Color type with its fixed ANSI escape sequences, the Message type
// that distinguishes literal from lazily-produced text, and the Record
// type that represents a single emitted message on its way to a sink.
//
// Severity ordinals run from ErrorLevel (0, highest priority) down to
// DebugLevel (5, lowest priority). The default presentation tables
// (label, icon, and color per severity) are fixed at compile time and
// exposed as methods on Severity. Per-instance overrides are layered on
// top of them elsewhere and never mutate these defaults.
package core
