package formatter

import "github.com/lamnhan066/lite-logger/core"

// Style holds per-severity presentation overrides. Severities absent
// from a table resolve to the built-in defaults on core.Severity, so a
// partial override keeps the defaults for everything unspecified. The
// merge happens at lookup time; the default tables are never copied or
// mutated.
type Style struct {
	Colors map[core.Severity]core.Color
	Icons  map[core.Severity]string
	Labels map[core.Severity]string
}

// Color resolves the color for a severity
func (s Style) Color(sev core.Severity) core.Color {
	if c, ok := s.Colors[sev]; ok {
		return c
	}
	return sev.DefaultColor()
}

// Icon resolves the icon for a severity
func (s Style) Icon(sev core.Severity) string {
	if icon, ok := s.Icons[sev]; ok {
		return icon
	}
	return sev.Icon()
}

// Label resolves the label for a severity
func (s Style) Label(sev core.Severity) string {
	if label, ok := s.Labels[sev]; ok {
		return label
	}
	return sev.Label()
}
