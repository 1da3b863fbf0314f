// Package news fetches and ranks articles from the external search
// service.
package news

import (
	"context"
	"strings"

	"golang.org/x/exp/slog"
)

//go:generate moq -out mock_search_client.go . SearchClient

// SearchClient queries the external news search service.
type SearchClient interface {
	Everything(ctx context.Context, query string, pageSize int) ([]Article, error)
}

// Article is a single normalized news item.
type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"published_at"`
	Source      string  `json:"source"`
	Relevance   float64 `json:"relevance_score"`
}

// Service queries and ranks news for given topics.
type Service struct {
	log *slog.Logger
	cl  SearchClient

	queryTopics int
	maxArticles int
}

// NewService makes a new news service. At most queryTopics topics go
// into the search query, at most maxArticles articles come back.
func NewService(lg *slog.Logger, cl SearchClient, queryTopics, maxArticles int) *Service {
	return &Service{
		log:         lg,
		cl:          cl,
		queryTopics: queryTopics,
		maxArticles: maxArticles,
	}
}

// Latest returns the freshest articles for the given topics, ranked by
// relevance. Fetch failures degrade to an empty list.
func (s *Service) Latest(ctx context.Context, topics []string) []Article {
	query := s.buildQuery(topics)

	articles, err := s.cl.Everything(ctx, query, s.maxArticles)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch articles",
			slog.String("query", query), slog.Any("err", err))
		return []Article{}
	}

	if len(articles) > s.maxArticles {
		articles = articles[:s.maxArticles]
	}

	ranked := Rank(articles, topics)
	if len(ranked) > s.maxArticles {
		ranked = ranked[:s.maxArticles]
	}

	return ranked
}

// buildQuery joins the first topics with a logical OR, the rest are
// dropped to keep the query focused.
func (s *Service) buildQuery(topics []string) string {
	if len(topics) > s.queryTopics {
		topics = topics[:s.queryTopics]
	}
	return strings.Join(topics, " OR ")
}
