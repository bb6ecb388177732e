package handler

import (
	"io"
	"time"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lamnhan066/lite-logger/core"
)

// DevHandler is the structured sink for interactive development
// tooling. It forwards the rendered text through a zap core so that the
// severity ordinal and the logger name travel as structured metadata
// alongside the message instead of being flattened into the text.
//
// Filtering already happened in the logger, so the zap core is built
// wide open and never drops a record on its own.
type DevHandler struct {
	zc zapcore.Core
}

// DevConfig holds configuration for the dev handler
type DevConfig struct {
	// Writer to write to (default: colorable stdout)
	Writer io.Writer
}

// NewDevHandler creates a new dev handler
func NewDevHandler(cfg DevConfig) *DevHandler {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "msg",
		NameKey:        "logger",
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	return &DevHandler{
		zc: zapcore.NewCore(enc, zapcore.AddSync(cfg.Writer), zapcore.DebugLevel),
	}
}

// Handle forwards the record through the zap core
func (h *DevHandler) Handle(rec *core.Record) error {
	ent := zapcore.Entry{
		Level:      zapLevel(rec.Severity),
		Time:       time.Now(),
		LoggerName: rec.Name,
		Message:    rec.Rendered,
	}
	ce := h.zc.Check(ent, nil)
	if ce == nil {
		return nil
	}
	fields := []zapcore.Field{zap.Int("severity", int(rec.Severity))}
	if rec.Name != "" {
		fields = append(fields, zap.String("name", rec.Name))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes the underlying zap core
func (h *DevHandler) Close() error {
	return h.zc.Sync()
}

// zapLevel maps a core.Severity to the nearest zapcore.Level
func zapLevel(sev core.Severity) zapcore.Level {
	switch sev {
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.SuccessLevel, core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
