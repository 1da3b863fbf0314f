// Package toolmw provides middlewares for tool handlers.
package toolmw

import (
	"context"

	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"golang.org/x/exp/slog"
)

// Logger is a middleware that logs all requests
func Logger(lg *slog.Logger) toolx.Middleware {
	return func(next toolx.Handler) toolx.Handler {
		return func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			args := []any{
				slog.String("tool", req.Tool),
				slog.String("user_id", req.User),
			}

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "request received", append(args, slog.String("args", string(req.Args)))...)
			} else {
				lg.InfoCtx(ctx, "request received", args...)
			}

			res, err := next(ctx, req)

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "request processed", slog.Any("response", res), slog.Any("err", err))
				return res, err
			}

			lg.InfoCtx(ctx, "request processed",
				slog.String("message", res.Message),
				slog.Any("err", err),
			)

			return res, err
		}
	}
}

// Recover is a middleware that recovers from panics.
func Recover(lg *slog.Logger) toolx.Middleware {
	return func(next toolx.Handler) toolx.Handler {
		return func(ctx context.Context, req toolx.Request) (resp toolx.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					lg.ErrorCtx(ctx, "panic recovered", slog.Any("panic", r))
					err = toolx.Errorf(toolx.CodeInternal, "internal error")
				}
			}()

			return next(ctx, req)
		}
	}
}
