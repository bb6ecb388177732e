package formatter

import (
	"strings"

	"github.com/lamnhan066/lite-logger/core"
)

// DefaultPattern is the format template applied when none is configured.
const DefaultPattern = "@{color}@{timestamp} @{icon} [@{level}] @{message}"

// Template tokens. Substitution is literal and case-sensitive; anything
// else in the pattern, including unrecognized @{...} tokens, is left
// verbatim.
const (
	TokenColor     = "@{color}"
	TokenTimestamp = "@{timestamp}"
	TokenIcon      = "@{icon}"
	TokenLevel     = "@{level}"
	TokenMessage   = "@{message}"
)

// Template renders a message through a token-based format pattern.
type Template struct {
	pattern string
}

// NewTemplate creates a template for the given pattern. An empty pattern
// selects DefaultPattern.
func NewTemplate(pattern string) Template {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return Template{pattern: pattern}
}

// Pattern returns the configured format pattern
func (t Template) Pattern() string {
	return t.pattern
}

// Render substitutes every occurrence of the five tokens and appends the
// reset sequence. The tokens are disjoint, so substitution order does
// not matter.
func (t Template) Render(c core.Color, timestamp, icon, label, message string) string {
	r := strings.NewReplacer(
		TokenColor, c.Escape(),
		TokenTimestamp, timestamp,
		TokenIcon, icon,
		TokenLevel, label,
		TokenMessage, message,
	)
	return r.Replace(t.pattern) + core.Reset
}
