// Package toolx provides interfaces and types to handle tool calls,
// with a chi-like router.
package toolx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Handler handles tool calls.
type Handler func(ctx context.Context, req Request) (Response, error)

// With returns a new handler with middleware applied.
func (h Handler) With(mvs ...Middleware) Handler {
	base := h
	for i := len(mvs) - 1; i >= 0; i-- {
		base = mvs[i](base)
	}
	return base
}

// Middleware wraps a handler with additional logic.
type Middleware func(Handler) Handler

// Request is a single tool call.
type Request struct {
	User string
	Tool string
	Args json.RawMessage
}

// Bind unmarshals call arguments into the provided destination.
func (r Request) Bind(v any) error {
	if len(r.Args) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.Args, v); err != nil {
		return Errorf(CodeInvalidParams, "parse arguments: %v", err)
	}

	return nil
}

// Response is a reply to a single tool call.
type Response struct {
	User    string
	Message string
	Data    any
}

// MarshalJSON marshals the response into a flat object, placing the
// fields of Data next to user_id and message. Envelope fields win on
// name collisions.
func (r Response) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if r.Data != nil {
		bts, err := json.Marshal(r.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal data: %w", err)
		}
		if err = json.Unmarshal(bts, &fields); err != nil {
			return nil, fmt.Errorf("flatten data: %w", err)
		}
	}

	envelope := struct {
		User    string `json:"user_id"`
		Message string `json:"message"`
	}{User: r.User, Message: r.Message}

	bts, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	if err = json.Unmarshal(bts, &fields); err != nil {
		return nil, fmt.Errorf("flatten envelope: %w", err)
	}

	return json.Marshal(fields)
}

// Descriptor describes a tool to the caller.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UseWhen     string `json:"use_when,omitempty"`
	SideEffects string `json:"side_effects,omitempty"`
}

// Codes of tool errors, mirroring JSON-RPC error codes.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// Error is an error with a code attached, to be reported to the caller.
type Error struct {
	Code    int
	Message string
}

// Error returns the string representation of the error.
func (e *Error) Error() string { return fmt.Sprintf("[%d] %s", e.Code, e.Message) }

// Errorf returns an error with the given code and formatted message.
func Errorf(code int, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the error, or CodeInternal if the error
// carries no code.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// NotFound is a default handler for unknown tools.
func NotFound(_ context.Context, req Request) (Response, error) {
	return Response{}, Errorf(CodeMethodNotFound, "unknown tool %q", req.Tool)
}
