package toolmw

import (
	"context"

	"github.com/Anushkak0712/world-feed/pkg/logx"
	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/google/uuid"
)

// RequestID is a middleware that adds request id to context. An id
// already present in the context, e.g. set by a gateway, is kept.
func RequestID() toolx.Middleware {
	return func(next toolx.Handler) toolx.Handler {
		return func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			if _, ok := logx.RequestIDFromContext(ctx); !ok {
				ctx = logx.ContextWithRequestID(ctx, uuid.New().String())
			}

			return next(ctx, req)
		}
	}
}

// RequireUser is a middleware that rejects requests without a user id.
func RequireUser() toolx.Middleware {
	return func(next toolx.Handler) toolx.Handler {
		return func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			if req.User == "" {
				return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams, "user_id is required")
			}

			return next(ctx, req)
		}
	}
}
