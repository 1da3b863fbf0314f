package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestServer_Ping(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	bts, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(bts))
}

func TestServer_Auth(t *testing.T) {
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		return toolx.Response{User: req.User, Message: "ok"}, nil
	})

	tt := []struct {
		name   string
		token  string
		status int
	}{
		{name: "no token", token: "", status: http.StatusUnauthorized},
		{name: "wrong token", token: "nope", status: http.StatusUnauthorized},
		{name: "valid token", token: "secret", status: http.StatusOK},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := callRPC(t, ts, tc.token, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestServer_ToolsList(t *testing.T) {
	ts := newTestServer(t, nil)

	status, resp := callRPC(t, ts, "secret", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp.Error)

	var result struct {
		Tools []toolx.Descriptor `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"validate", "hello_buzzbot", "set_interests"}, names)
}

func TestServer_CallTool(t *testing.T) {
	var got toolx.Request
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		got = req
		return toolx.Response{User: req.User, Message: "hey"}, nil
	})

	status, resp := callRPC(t, ts, "secret", `{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  {"name": "hello_buzzbot", "arguments": {"user_id": "u1", "user_message": "hello"}}
	}`)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp.Error)

	assert.Equal(t, "u1", got.User)
	assert.Equal(t, "hello_buzzbot", got.Tool)
	assert.JSONEq(t, `{"user_id": "u1", "user_message": "hello"}`, string(got.Args))

	var result callResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.JSONEq(t, `{"user_id": "u1", "message": "hey"}`, result.Content[0].Text)
}

func TestServer_CallTool_Validate(t *testing.T) {
	called := false
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		called = true
		return toolx.Response{}, nil
	})

	status, resp := callRPC(t, ts, "secret",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"validate"}}`)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp.Error)

	var result callResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "15551234567", result.Content[0].Text)
	assert.False(t, called, "validate must not reach the tool handler")
}

func TestServer_CallTool_ToolError(t *testing.T) {
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams,
			"interests must be a non-empty list")
	})

	status, resp := callRPC(t, ts, "secret",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"set_interests","arguments":{"user_id":"u1"}}}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Error)

	assert.Equal(t, toolx.CodeInvalidParams, resp.Error.Code)
	assert.Equal(t, "interests must be a non-empty list", resp.Error.Message)
}

func TestServer_CallTool_WrappedToolError(t *testing.T) {
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		return toolx.Response{}, fmt.Errorf("dispatch: %w",
			toolx.Errorf(toolx.CodeMethodNotFound, "unknown tool %q", req.Tool))
	})

	_, resp := callRPC(t, ts, "secret",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope","arguments":{"user_id":"u1"}}}`)
	require.NotNil(t, resp.Error)

	assert.Equal(t, toolx.CodeMethodNotFound, resp.Error.Code)
	assert.Equal(t, `unknown tool "nope"`, resp.Error.Message)
}

func TestServer_CallTool_InternalError(t *testing.T) {
	ts := newTestServer(t, func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
		return toolx.Response{}, errors.New("dial tcp: connection refused")
	})

	_, resp := callRPC(t, ts, "secret",
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_latest_news","arguments":{"user_id":"u1"}}}`)
	require.NotNil(t, resp.Error)

	assert.Equal(t, toolx.CodeInternal, resp.Error.Code)
	assert.Equal(t, "internal error", resp.Error.Message,
		"internals must not leak to the client")
}

func TestServer_UnknownMethod(t *testing.T) {
	ts := newTestServer(t, nil)

	_, resp := callRPC(t, ts, "secret", `{"jsonrpc":"2.0","id":1,"method":"prompts/list"}`)
	require.NotNil(t, resp.Error)

	assert.Equal(t, toolx.CodeMethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "prompts/list")
}

func TestServer_ParseError(t *testing.T) {
	ts := newTestServer(t, nil)

	status, resp := callRPC(t, ts, "secret", `{"jsonrpc":`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Error)

	assert.Equal(t, codeParse, resp.Error.Code)
}

func newTestServer(t *testing.T, h toolx.Handler) *httptest.Server {
	t.Helper()

	s := &Server{
		Logger:      slog.Default(),
		AuthToken:   "secret",
		OwnerNumber: "15551234567",
		Handler:     h,
		Tools: []toolx.Descriptor{
			{Name: "hello_buzzbot", Description: "Start here."},
			{Name: "set_interests", Description: "Set the user's interests."},
		},
	}

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	return ts
}

type testResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

func callRPC(t *testing.T, ts *httptest.Server, token, body string) (int, testResponse) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/rpc", strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed testResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	}

	return resp.StatusCode, parsed
}
