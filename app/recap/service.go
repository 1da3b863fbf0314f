// Package recap fetches article pages and makes short recaps of them.
package recap

import (
	"context"
	"fmt"
	"net/http"

	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// Service is a main recap service.
type Service struct {
	log       *slog.Logger
	cl        *http.Client
	chatGPT   *ChatGPT
	extractor Extractor
}

// NewService creates new service.
func NewService(lg *slog.Logger, cl *http.Client, chatGPT *ChatGPT, extractor Extractor) *Service {
	return &Service{
		log:       lg,
		cl:        cl,
		chatGPT:   chatGPT,
		extractor: extractor,
	}
}

// CacheStat returns cache stats.
func (s *Service) CacheStat() cache.Stats { return s.chatGPT.CacheStat() }

// Recap fetches the page at the given URL and makes a recap of it.
func (s *Service) Recap(ctx context.Context, u string) (string, error) {
	s.log.DebugCtx(ctx, "making recap of", slog.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return "", fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	page, err := s.extractor.Extract(resp.Body)
	if err != nil {
		return "", fmt.Errorf("extract page: %w", err)
	}
	page.URL = u

	result, err := s.chatGPT.Summarize(ctx, page)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return result, nil
}
