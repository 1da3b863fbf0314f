package toolx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Bind(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		req := Request{Args: json.RawMessage(`{"interests":["ai","tech"]}`)}

		var args struct {
			Interests []string `json:"interests"`
		}
		require.NoError(t, req.Bind(&args))
		assert.Equal(t, []string{"ai", "tech"}, args.Interests)
	})

	t.Run("empty arguments are no-op", func(t *testing.T) {
		req := Request{}

		var args struct {
			Interests []string `json:"interests"`
		}
		require.NoError(t, req.Bind(&args))
		assert.Empty(t, args.Interests)
	})

	t.Run("malformed arguments", func(t *testing.T) {
		req := Request{Args: json.RawMessage(`{"interests":`)}

		var args struct {
			Interests []string `json:"interests"`
		}
		err := req.Bind(&args)
		require.Error(t, err)
		assert.Equal(t, CodeInvalidParams, CodeOf(err))
	})
}

func TestResponse_MarshalJSON(t *testing.T) {
	t.Run("data fields are flattened", func(t *testing.T) {
		resp := Response{
			User:    "user-1",
			Message: "hello",
			Data: struct {
				Count int      `json:"count"`
				Tags  []string `json:"tags"`
			}{Count: 2, Tags: []string{"ai", "tech"}},
		}

		bts, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"user_id": "user-1",
			"message": "hello",
			"count":   2,
			"tags":    ["ai", "tech"]
		}`, string(bts))
	})

	t.Run("nil data leaves envelope only", func(t *testing.T) {
		bts, err := json.Marshal(Response{User: "user-1", Message: "hi"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"user_id": "user-1", "message": "hi"}`, string(bts))
	})

	t.Run("envelope wins on collision", func(t *testing.T) {
		resp := Response{
			User:    "user-1",
			Message: "real",
			Data: struct {
				Message string `json:"message"`
			}{Message: "shadowed"},
		}

		bts, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"user_id": "user-1", "message": "real"}`, string(bts))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidParams, CodeOf(Errorf(CodeInvalidParams, "bad request")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("oh no")))

	wrapped := fmt.Errorf("dispatch: %w", Errorf(CodeMethodNotFound, "unknown tool"))
	assert.Equal(t, CodeMethodNotFound, CodeOf(wrapped))
}

func TestNotFound(t *testing.T) {
	_, err := NotFound(context.Background(), Request{Tool: "frobnicate"})
	require.Error(t, err)
	assert.Equal(t, CodeMethodNotFound, CodeOf(err))
	assert.Contains(t, err.Error(), "frobnicate")
}
