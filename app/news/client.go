package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Anushkak0712/world-feed/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
)

// Client queries the "everything" endpoint of the news search service.
type Client struct {
	log     *slog.Logger
	rq      *requester.Requester
	baseURL string
}

// NewClient makes a new client for the news search service.
func NewClient(lg *slog.Logger, baseURL, apiKey string, timeout time.Duration) *Client {
	rq := requester.New(http.Client{Timeout: timeout},
		middleware.Header("X-Api-Key", apiKey),
		logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{
			Level:         slog.LevelDebug,
			SecretHeaders: []string{"X-Api-Key"},
		}),
	)

	return &Client{log: lg, rq: rq, baseURL: baseURL}
}

// Everything returns the most recently published articles matching the
// query, newest first, English only.
func (c *Client) Everything(ctx context.Context, query string, pageSize int) ([]Article, error) {
	u, err := url.Parse(c.baseURL + "/v2/everything")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("language", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.rq.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	var body struct {
		Status   string `json:"status"`
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("bad response status: %s", body.Status)
	}

	articles := make([]Article, 0, len(body.Articles))
	for _, raw := range body.Articles {
		articles = append(articles, Article{
			Title:       raw.Title,
			Description: raw.Description,
			URL:         raw.URL,
			PublishedAt: raw.PublishedAt,
			Source:      raw.Source.Name,
		})
	}

	return articles, nil
}
