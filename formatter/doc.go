// Package formatter turns a gated log message into its rendered text.
//
// Template substitutes the five recognized tokens (@{color},
// @{timestamp}, @{icon}, @{level}, @{message}) in a format pattern and
// unconditionally appends the terminal reset sequence. A malformed
// pattern is not an error: unrecognized tokens pass through verbatim.
//
// Style resolves the color, icon, and label for a severity. Overrides
// are consulted first and the built-in defaults answer for any severity
// the override tables do not mention, which gives partial overrides
// their merge semantics without materializing a merged table.
package formatter
