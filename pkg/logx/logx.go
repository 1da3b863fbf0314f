// Package logx contains logging helpers: request id propagation
// and middlewares for loggers and http clients.
package logx

import (
	"context"

	"golang.org/x/exp/slog"
)

type requestIDKey struct{}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(parent context.Context, reqID string) context.Context {
	return context.WithValue(parent, requestIDKey{}, reqID)
}

// RequestIDFromContext returns request id from context.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey{}).(string)
	return v, ok
}

// Handler is a slog.Handler middleware that stamps records
// with the request id from the context, if any.
type Handler struct {
	slog.Handler
}

// Handle implements slog.Handler interface.
func (h Handler) Handle(ctx context.Context, rec slog.Record) error {
	if reqID, ok := RequestIDFromContext(ctx); ok {
		rec.AddAttrs(slog.String("request_id", reqID))
	}
	return h.Handler.Handle(ctx, rec)
}

// WithGroup returns a new Handler with the given group.
func (h Handler) WithGroup(group string) slog.Handler {
	return Handler{Handler: h.Handler.WithGroup(group)}
}

// WithAttrs returns a new Handler with the given attributes.
func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{Handler: h.Handler.WithAttrs(attrs)}
}

// NoOp returns a handler that discards all records.
func NoOp() slog.Handler { return noOpHandler{} }

type noOpHandler struct{}

// Enabled implements slog.Handler interface.
func (noOpHandler) Enabled(context.Context, slog.Level) bool { return false }

// Handle implements slog.Handler interface.
func (noOpHandler) Handle(context.Context, slog.Record) error { return nil }

// WithAttrs implements slog.Handler interface.
func (h noOpHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler interface.
func (h noOpHandler) WithGroup(string) slog.Handler { return h }
