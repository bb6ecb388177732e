package core

// Record is the dispatch tuple produced for a single emitted message.
// It lives for one call: the logger builds it, the sink consumes it.
//
// Name and Color are carried so that sinks can apply the name prefix as
// a presentation concern. Rendered never contains the prefix; a callback
// therefore receives the rendered text without it.
type Record struct {
	Severity Severity
	Name     string
	Color    Color
	Raw      string
	Rendered string
}
