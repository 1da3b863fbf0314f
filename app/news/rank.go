package news

import (
	"sort"
	"strings"
)

// Rank orders articles by relevance to the given topics, filling in the
// relevance score of each. Same length, same elements, only the order
// changes. The sort is stable, so ties keep the original
// publish-recency order.
func Rank(articles []Article, topics []string) []Article {
	result := make([]Article, len(articles))
	copy(result, articles)

	for i := range result {
		result[i].Relevance = Score(result[i], topics)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Relevance > result[j].Relevance
	})

	return result
}

// Score counts the topics contained in the article's title and
// description. Each matching topic adds exactly 1, no matter how many
// times it occurs in the text.
func Score(article Article, topics []string) float64 {
	text := strings.ToLower(article.Title + " " + article.Description)

	var score float64
	for _, topic := range topics {
		if strings.Contains(text, strings.ToLower(topic)) {
			score++
		}
	}

	return score
}
