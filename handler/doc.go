// Package handler defines where emitted records go.
//
// Every sink implements the Handler interface. Exactly one handler
// receives each record; the logger selects it at construction time and
// never fans out.
//
// ConsoleHandler is the plain sink. It defaults to a colorable stdout
// writer so ANSI escape sequences render the same on every platform,
// and it is the only place the logger name prefix is applied.
//
// DevHandler is the structured sink for development tooling, built on
// go.uber.org/zap. It carries the severity ordinal and logger name as
// structured metadata next to the rendered message.
//
// CallbackHandler hands records to user code instead of writing them.
// Capture records them in memory, which is the substitute sink tests
// use in place of a real console.
package handler
