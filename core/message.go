package core

// Message carries the text of a log call, either as a literal string or
// as a producer function that is only invoked once the call has passed
// the enabled and level gates. Filtered-out calls never invoke the
// producer, so expensive message construction costs nothing when the
// message is discarded.
type Message struct {
	text string
	fn   func() string
}

// Text creates a literal message
func Text(s string) Message {
	return Message{text: s}
}

// Lazy creates a message whose text is produced on demand
func Lazy(fn func() string) Message {
	return Message{fn: fn}
}

// Resolve returns the message text, invoking the producer if one was
// supplied. Callers resolve exactly once per emitted message.
func (m Message) Resolve() string {
	if m.fn != nil {
		return m.fn()
	}
	return m.text
}
