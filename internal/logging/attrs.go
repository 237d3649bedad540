package logging

import (
	"context"
	"log/slog"
)

// FieldComponent is the standardized key for component names; the console
// handler promotes it into the line prefix.
const FieldComponent = "component"

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func String(key string, value string) slog.Attr { return slog.String(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

// WithComponent tags every record from the returned logger with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
