package handler

import "github.com/lamnhan066/lite-logger/core"

// Callback receives an emitted message in place of any console write.
// It is invoked synchronously with the raw message text, the rendered
// text, and the severity. The rendered text never carries the console
// name prefix.
type Callback func(raw, rendered string, sev core.Severity)

// CallbackHandler dispatches records to a user-supplied callback.
// A logger configured with a callback performs no console write at all.
type CallbackHandler struct {
	fn Callback
}

// NewCallbackHandler creates a handler around fn
func NewCallbackHandler(fn Callback) *CallbackHandler {
	return &CallbackHandler{fn: fn}
}

// Handle invokes the callback. A panic inside the callback propagates
// to the caller of the emit method unmodified.
func (h *CallbackHandler) Handle(rec *core.Record) error {
	h.fn(rec.Raw, rec.Rendered, rec.Severity)
	return nil
}

// Close closes the handler
func (h *CallbackHandler) Close() error {
	return nil
}
