// Package server exposes tools over JSON-RPC with bearer auth.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// Server is a JSON-RPC tool server.
type Server struct {
	Logger      *slog.Logger
	Addr        string
	AuthToken   string
	OwnerNumber string
	Handler     toolx.Handler
	Tools       []toolx.Descriptor
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.Logger.Handler(), slog.LevelWarn),
	}

	go func() {
		<-ctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(sctx); err != nil {
			s.Logger.WarnCtx(sctx, "failed to shutdown server", slog.Any("err", err))
		}
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) routes() *chi.Mux {
	rtr := chi.NewRouter()

	rtr.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	rtr.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/rpc", s.handleRPC)
	})

	return rtr
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.AuthToken)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// codeParse is returned when the request body is not valid JSON.
const codeParse = -32700

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []textContent `json:"content"`
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(ctx, w, rpcResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: codeParse, Message: "parse error"},
		})
		return
	}

	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "tools/list":
		resp.Result = map[string]any{"tools": s.listTools()}
	case "tools/call":
		resp.Result, resp.Error = s.callTool(ctx, req.Params)
	default:
		resp.Error = &rpcError{
			Code:    toolx.CodeMethodNotFound,
			Message: fmt.Sprintf("unknown method %q", req.Method),
		}
	}

	s.respond(ctx, w, resp)
}

func (s *Server) listTools() []toolx.Descriptor {
	validate := toolx.Descriptor{
		Name:        "validate",
		Description: "Returns the phone number of the server owner for client validation.",
	}
	return append([]toolx.Descriptor{validate}, s.Tools...)
}

func (s *Server) callTool(ctx context.Context, params json.RawMessage) (any, *rpcError) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &rpcError{Code: toolx.CodeInvalidParams, Message: "malformed params"}
	}

	// the validate tool lives on the transport level, it carries no
	// user state
	if call.Name == "validate" {
		return callResult{Content: []textContent{{Type: "text", Text: s.OwnerNumber}}}, nil
	}

	var ident struct {
		User string `json:"user_id"`
	}
	if len(call.Arguments) > 0 {
		if err := json.Unmarshal(call.Arguments, &ident); err != nil {
			return nil, &rpcError{Code: toolx.CodeInvalidParams, Message: "malformed arguments"}
		}
	}

	resp, err := s.Handler(ctx, toolx.Request{
		User: ident.User,
		Tool: call.Name,
		Args: call.Arguments,
	})
	if err != nil {
		return nil, s.rpcErrorOf(ctx, err)
	}

	bts, err := json.Marshal(resp)
	if err != nil {
		s.Logger.ErrorCtx(ctx, "failed to marshal tool response", slog.Any("err", err))
		return nil, &rpcError{Code: toolx.CodeInternal, Message: "internal error"}
	}

	return callResult{Content: []textContent{{Type: "text", Text: string(bts)}}}, nil
}

// rpcErrorOf exposes messages of coded errors as is, anything else is
// reported as a generic internal error.
func (s *Server) rpcErrorOf(ctx context.Context, err error) *rpcError {
	var te *toolx.Error
	if errors.As(err, &te) {
		return &rpcError{Code: te.Code, Message: te.Message}
	}

	s.Logger.ErrorCtx(ctx, "tool call failed", slog.Any("err", err))
	return &rpcError{Code: toolx.CodeInternal, Message: "internal error"}
}

func (s *Server) respond(ctx context.Context, w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.Logger.WarnCtx(ctx, "failed to write response", slog.Any("err", err))
	}
}
