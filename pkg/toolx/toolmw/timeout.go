package toolmw

import (
	"context"
	"errors"
	"time"

	"github.com/Anushkak0712/world-feed/pkg/toolx"
)

// ErrTimeout is returned by Timeout middleware when handler timed out.
var ErrTimeout = errors.New("timed out")

// Timeout sets the timeout for handler.
func Timeout(dur time.Duration) toolx.Middleware {
	type result struct {
		resp toolx.Response
		err  error
	}

	return func(next toolx.Handler) toolx.Handler {
		return func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			// set context timeout additionally
			ctx, cancel := context.WithTimeout(ctx, dur)
			defer cancel()

			done := make(chan result, 1)

			go func() {
				resp, err := next(ctx, req)
				done <- result{resp: resp, err: err}
			}()

			timer := time.NewTimer(dur)
			defer timer.Stop()

			select {
			case res := <-done:
				return res.resp, res.err
			case <-timer.C:
				return toolx.Response{}, ErrTimeout
			}
		}
	}
}
