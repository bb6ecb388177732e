package handler

import "github.com/lamnhan066/lite-logger/core"

// Handler defines the interface for log sinks
type Handler interface {
	// Handle dispatches a single record
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}
