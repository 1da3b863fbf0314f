package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Stable(t *testing.T) {
	articles := []Article{
		{Title: "ai and robotics", Description: "ai"},
		{Title: "robotics beats ai", Description: ""},
		{Title: "ai only", Description: ""},
	}

	ranked := Rank(articles, []string{"ai", "robotics"})

	assert.Len(t, ranked, 3)
	assert.Equal(t, "ai and robotics", ranked[0].Title)
	assert.Equal(t, "robotics beats ai", ranked[1].Title)
	assert.Equal(t, "ai only", ranked[2].Title)
	assert.Equal(t, []float64{2, 2, 1},
		[]float64{ranked[0].Relevance, ranked[1].Relevance, ranked[2].Relevance})
}

func TestRank_ReordersByScore(t *testing.T) {
	articles := []Article{
		{Title: "nothing to see"},
		{Title: "all about ai", Description: "and robotics"},
	}

	ranked := Rank(articles, []string{"ai", "robotics"})

	assert.Equal(t, "all about ai", ranked[0].Title)
	assert.Equal(t, "nothing to see", ranked[1].Title)

	// input must stay untouched
	assert.Equal(t, "nothing to see", articles[0].Title)
	assert.Zero(t, articles[0].Relevance)
}

func TestScore(t *testing.T) {
	tbl := []struct {
		name    string
		article Article
		topics  []string
		want    float64
	}{
		{
			name:    "both topics match",
			article: Article{Title: "AI breakthroughs in robotics"},
			topics:  []string{"ai", "robotics"},
			want:    2,
		},
		{
			name:    "repeated occurrences count once",
			article: Article{Title: "ai ai ai", Description: "ai again"},
			topics:  []string{"ai"},
			want:    1,
		},
		{
			name:    "duplicate topics count per entry",
			article: Article{Title: "ai news"},
			topics:  []string{"ai", "ai"},
			want:    2,
		},
		{
			name:    "match is case-insensitive",
			article: Article{Title: "Quantum Computing"},
			topics:  []string{"QUANTUM"},
			want:    1,
		},
		{
			name:    "match spans title and description",
			article: Article{Title: "morning digest", Description: "sports roundup"},
			topics:  []string{"sports", "ai"},
			want:    1,
		},
		{
			name:    "no matches",
			article: Article{Title: "weather", Description: "sunny"},
			topics:  []string{"ai"},
			want:    0,
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.article, tt.topics))
		})
	}
}
