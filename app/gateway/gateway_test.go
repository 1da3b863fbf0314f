package gateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Anushkak0712/world-feed/app/assistant"
	"github.com/Anushkak0712/world-feed/app/news"
	"github.com/Anushkak0712/world-feed/app/store"
	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestCtrl_Handle_Start(t *testing.T) {
	var got toolx.Request
	c := &Ctrl{
		Logger:     slog.Default(),
		Classifier: assistant.KeywordClassifier{},
		Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			got = req
			return toolx.Response{User: req.User, Message: "Hello! Tell me your interests."}, nil
		},
	}

	msgs, err := c.handle(context.Background(), Update{ChatID: "1", Text: "/start"})
	require.NoError(t, err)

	assert.Equal(t, assistant.ToolHello, got.Tool)
	assert.Equal(t, "1", got.User)
	assert.JSONEq(t, `{"user_message": "hello"}`, string(got.Args))

	require.Len(t, msgs, 1)
	assert.Equal(t, Message{ChatID: "1", Text: "Hello! Tell me your interests."}, msgs[0])
}

func TestCtrl_Handle_Interests(t *testing.T) {
	tt := []struct {
		name     string
		text     string
		wantTool string
		wantArgs string
	}{
		{
			name:     "show interests",
			text:     "/interests",
			wantTool: assistant.ToolGetInterests,
		},
		{
			name:     "set interests via command",
			text:     "/interests AI, Robotics",
			wantTool: assistant.ToolSetInterests,
			wantArgs: `{"interests": ["AI", "Robotics"]}`,
		},
		{
			name:     "set interests via free text",
			text:     "quantum computing, chess",
			wantTool: assistant.ToolSetInterests,
			wantArgs: `{"interests": ["quantum computing", "chess"]}`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var got toolx.Request
			c := &Ctrl{
				Logger:     slog.Default(),
				Classifier: assistant.KeywordClassifier{},
				Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
					got = req
					return toolx.Response{User: req.User, Message: "ok"}, nil
				},
			}

			_, err := c.handle(context.Background(), Update{ChatID: "1", Text: tc.text})
			require.NoError(t, err)

			assert.Equal(t, tc.wantTool, got.Tool)
			if tc.wantArgs != "" {
				assert.JSONEq(t, tc.wantArgs, string(got.Args))
			} else {
				assert.Empty(t, got.Args)
			}
		})
	}
}

func TestCtrl_Handle_News(t *testing.T) {
	c := &Ctrl{
		Logger:     slog.Default(),
		Classifier: assistant.KeywordClassifier{},
		Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			require.Equal(t, assistant.ToolGetNews, req.Tool)
			return toolx.Response{
				User:    req.User,
				Message: "Here are the latest 2 news articles based on your interests (ai):",
				Data: assistant.NewsData{
					Articles: []news.Article{
						{Title: "AI *wins* again", URL: "https://example.com/a", Source: "Example"},
						{Title: "Chess engines", URL: "https://example.com/b"},
					},
					Recap: "Robots fold towels now.",
				},
			}, nil
		},
	}

	msgs, err := c.handle(context.Background(), Update{ChatID: "42", Text: "/news"})
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Contains(t, msgs[0].Text, "Here are the latest 2 news articles")

	assert.Contains(t, msgs[1].Text, `*AI \*wins\* again*`)
	assert.Contains(t, msgs[1].Text, "_Example_")
	assert.Contains(t, msgs[1].Text, "Robots fold towels now.")
	assert.Contains(t, msgs[1].Text, "[source](https://example.com/a)")

	assert.Contains(t, msgs[2].Text, "*Chess engines*")
	assert.NotContains(t, msgs[2].Text, "Robots fold towels now.",
		"recap goes with the top article only")
	assert.Contains(t, msgs[2].Text, "[source](https://example.com/b)")
}

func TestCtrl_Handle_FreeTextWantsNews(t *testing.T) {
	var got toolx.Request
	c := &Ctrl{
		Logger:     slog.Default(),
		Classifier: assistant.KeywordClassifier{},
		Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			got = req
			return toolx.Response{User: req.User, Message: "ok"}, nil
		},
	}

	_, err := c.handle(context.Background(), Update{ChatID: "1", Text: "more news please"})
	require.NoError(t, err)

	assert.Equal(t, assistant.ToolGetNews, got.Tool)
}

func TestCtrl_Handle_Users(t *testing.T) {
	st := &store.InterfaceMock{
		ListFunc: func(ctx context.Context) (map[string][]string, error) {
			return map[string][]string{
				"2": {"chess"},
				"1": {"ai", "robotics"},
			}, nil
		},
	}

	called := false
	c := &Ctrl{
		Logger:     slog.Default(),
		Classifier: assistant.KeywordClassifier{},
		Store:      st,
		AdminIDs:   []string{"99"},
		Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			called = true
			return toolx.Response{}, nil
		},
	}

	msgs, err := c.handle(context.Background(), Update{ChatID: "1", Text: "/users"})
	require.NoError(t, err)
	assert.Empty(t, msgs, "non-admins get no reply")
	assert.False(t, called)

	msgs, err = c.handle(context.Background(), Update{ChatID: "99", Text: "/users"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Users:\nid: 1, interests: ai, robotics\nid: 2, interests: chess\n",
		msgs[0].Text)
}

func TestCtrl_Handle_CacheStats(t *testing.T) {
	c := &Ctrl{
		Logger:     slog.Default(),
		Classifier: assistant.KeywordClassifier{},
		AdminIDs:   []string{"99"},
	}

	msgs, err := c.handle(context.Background(), Update{ChatID: "99", Text: "/cache"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Recaps are disabled.", msgs[0].Text)
}

func TestCtrl_HandleUpdate_Errors(t *testing.T) {
	t.Run("invalid params reach the user as is", func(t *testing.T) {
		api := &APIMock{SendMessageFunc: func(ctx context.Context, msg Message) error { return nil }}
		c := &Ctrl{
			Logger:     slog.Default(),
			API:        api,
			Classifier: assistant.KeywordClassifier{},
			Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
				return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams,
					"interests must be a non-empty list")
			},
		}

		c.handleUpdate(context.Background(), Update{ChatID: "1", Text: "ai, robotics"})

		calls := api.SendMessageCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "interests must be a non-empty list", calls[0].Msg.Text)
	})

	t.Run("internal errors render a request id", func(t *testing.T) {
		api := &APIMock{SendMessageFunc: func(ctx context.Context, msg Message) error { return nil }}
		c := &Ctrl{
			Logger:     slog.Default(),
			API:        api,
			Classifier: assistant.KeywordClassifier{},
			Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
				return toolx.Response{}, errors.New("boom")
			},
		}

		c.handleUpdate(context.Background(), Update{ChatID: "1", Text: "/news"})

		calls := api.SendMessageCalls()
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Msg.Text, "Something went wrong.")
		assert.Contains(t, calls[0].Msg.Text, "Request ID: `")
	})
}

func TestCtrl_Run(t *testing.T) {
	updates := make(chan Update, 1)
	var sent atomic.Int32

	api := &APIMock{
		UpdatesFunc: func() <-chan Update { return updates },
		SendMessageFunc: func(ctx context.Context, msg Message) error {
			sent.Add(1)
			return nil
		},
	}

	c := &Ctrl{
		Logger:     slog.Default(),
		API:        api,
		Classifier: assistant.KeywordClassifier{},
		Workers:    2,
		Handler: func(ctx context.Context, req toolx.Request) (toolx.Response, error) {
			return toolx.Response{User: req.User, Message: "hi"}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	updates <- Update{ChatID: "1", Text: "/start"}
	require.Eventually(t, func() bool { return sent.Load() == 1 },
		time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestRenderArticle(t *testing.T) {
	got, err := renderArticle(news.Article{
		Title:  "Plain title",
		URL:    "https://example.com/c",
		Source: "BBC News",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "\n*Plain title*\n_BBC News_\n\n[source](https://example.com/c)\n", got)
}
