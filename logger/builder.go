package logger

import (
	"time"

	"github.com/lamnhan066/lite-logger/core"
	"github.com/lamnhan066/lite-logger/formatter"
	"github.com/lamnhan066/lite-logger/handler"
)

// TimestampFunc renders the timestamp portion of a log line
type TimestampFunc func(time.Time) string

// DefaultTimestamp renders "[HH:MM:SS]" in zero-padded 24-hour local time
func DefaultTimestamp(t time.Time) string {
	return t.Format("[15:04:05]")
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name      string
	enabled   bool
	minLevel  core.Severity
	colors    map[core.Severity]core.Color
	icons     map[core.Severity]string
	labels    map[core.Severity]string
	timestamp TimestampFunc
	template  string
	callback  handler.Callback
	handler   handler.Handler
	devOutput bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		enabled:  true,
		minLevel: core.InfoLevel, // Default level
	}
}

// WithName sets the display name. A named logger prefixes its console
// output with the bracketed name; an empty name (the default) adds no
// prefix.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithEnabled sets the enabled flag. A disabled logger emits nothing
// and never resolves lazy messages.
func (b *Builder) WithEnabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// WithMinLevel sets the minimum severity. Only messages whose ordinal
// is less than or equal to the minimum are emitted.
func (b *Builder) WithMinLevel(level core.Severity) *Builder {
	b.minLevel = level
	return b
}

// WithColors overrides colors for the given severities. Severities not
// in the map keep their built-in default color.
func (b *Builder) WithColors(colors map[core.Severity]core.Color) *Builder {
	b.colors = colors
	return b
}

// WithIcons overrides icons for the given severities
func (b *Builder) WithIcons(icons map[core.Severity]string) *Builder {
	b.icons = icons
	return b
}

// WithLabels overrides labels for the given severities
func (b *Builder) WithLabels(labels map[core.Severity]string) *Builder {
	b.labels = labels
	return b
}

// WithTimestamp sets the timestamp function
func (b *Builder) WithTimestamp(fn TimestampFunc) *Builder {
	b.timestamp = fn
	return b
}

// WithTemplate sets the format template. An empty template selects
// formatter.DefaultPattern.
func (b *Builder) WithTemplate(pattern string) *Builder {
	b.template = pattern
	return b
}

// WithCallback routes emitted records to fn instead of any console
// write. A callback takes precedence over every other output choice.
func (b *Builder) WithCallback(fn handler.Callback) *Builder {
	b.callback = fn
	return b
}

// WithDevOutput selects the structured dev-tooling sink instead of the
// plain console sink
func (b *Builder) WithDevOutput(dev bool) *Builder {
	b.devOutput = dev
	return b
}

// WithHandler sets an explicit sink, replacing the console/dev choice.
// Tests use this to substitute a capturing sink.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// Build creates the Logger instance. The logger is immutable from here
// on; a different configuration requires a new instance.
func (b *Builder) Build() *Logger {
	ts := b.timestamp
	if ts == nil {
		ts = DefaultTimestamp
	}

	h := b.handler
	if b.callback != nil {
		h = handler.NewCallbackHandler(b.callback)
	} else if h == nil {
		if b.devOutput {
			h = handler.NewDevHandler(handler.DevConfig{})
		} else {
			h = handler.NewConsoleHandler(handler.ConsoleConfig{})
		}
	}

	return &Logger{
		name:     b.name,
		enabled:  b.enabled,
		minLevel: b.minLevel,
		style: formatter.Style{
			Colors: copyTable(b.colors),
			Icons:  copyTable(b.icons),
			Labels: copyTable(b.labels),
		},
		template:  formatter.NewTemplate(b.template),
		timestamp: ts,
		handler:   h,
	}
}

// copyTable detaches an override table from the caller so later map
// mutation cannot reach a built logger
func copyTable[V any](m map[core.Severity]V) map[core.Severity]V {
	if len(m) == 0 {
		return nil
	}
	out := make(map[core.Severity]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
