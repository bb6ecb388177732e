package handler

import (
	"bytes"
	"io"
	"sync"

	"github.com/mattn/go-colorable"

	"github.com/lamnhan066/lite-logger/core"
)

// ConsoleHandler writes rendered records to a terminal-style writer.
// It is fully synchronous: Handle performs one locked write and returns
// the writer's error unmodified.
type ConsoleHandler struct {
	writer io.Writer
	mu     sync.Mutex
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: colorable stdout, so ANSI sequences
	// behave the same on every platform)
	Writer io.Writer
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
	}
	return &ConsoleHandler{writer: cfg.Writer}
}

// bufferPool recycles the line-assembly buffers
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Handle writes one line for the record. When the record carries a
// name, the line starts with the resolved color escape and the
// bracketed name; the prefix is applied here and never appears in
// rec.Rendered.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	if rec.Name != "" {
		buf.WriteString(rec.Color.Escape())
		buf.WriteByte('[')
		buf.WriteString(rec.Name)
		buf.WriteString("]: ")
	}
	buf.WriteString(rec.Rendered)
	buf.WriteByte('\n')

	h.mu.Lock()
	_, err := h.writer.Write(buf.Bytes())
	h.mu.Unlock()

	if buf.Cap() <= 64*1024 { // don't keep very large buffers
		bufferPool.Put(buf)
	}
	return err
}

// Close closes the handler
func (h *ConsoleHandler) Close() error {
	return nil
}
