// Package assistant contains routes and controllers for tool calls.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Anushkak0712/world-feed/app/news"
	"github.com/Anushkak0712/world-feed/app/store"
	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/Anushkak0712/world-feed/pkg/toolx/toolmw"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// Tool names the assistant serves.
const (
	ToolHello        = "hello_buzzbot"
	ToolSetInterests = "set_interests"
	ToolGetInterests = "get_interests"
	ToolGetNews      = "get_latest_news"
)

// Next actions suggested to the client in responses.
const (
	actionNeedInterests = "need_interests"
	actionReadyForNews  = "ready_for_news"
	actionShowInterests = "show_interests"
	actionNewsDisplayed = "news_displayed"
	actionNoNewsFound   = "no_news_found"
	actionGeneralHelp   = "general_help"
)

//go:generate moq -out mock_providers.go . NewsProvider Recapper

// NewsProvider returns ranked articles for the given topics.
type NewsProvider interface {
	Latest(ctx context.Context, topics []string) []news.Article
}

// Recapper makes a short recap of the article at the given URL.
type Recapper interface {
	Recap(ctx context.Context, u string) (string, error)
}

// Ctrl provides routes and controllers for tool calls.
type Ctrl struct {
	Logger         *slog.Logger
	Store          store.Interface
	News           NewsProvider
	Recap          Recapper
	Classifier     Classifier
	HandlerTimeout time.Duration
}

// Routes returns a multiplexer for tool controllers.
func (c *Ctrl) Routes() *toolx.Router {
	rtr := toolx.NewRouter()

	rtr.Use(
		toolmw.RequestID(),
		toolmw.Recover(c.Logger),
		toolmw.Logger(c.Logger),
		toolmw.Timeout(c.HandlerTimeout),
		toolmw.RequireUser(),
	)

	rtr.Add(ToolHello, c.hello)
	rtr.Add(ToolSetInterests, c.setInterests)
	rtr.Add(ToolGetInterests, c.getInterests)
	rtr.Add(ToolGetNews, c.getNews)

	return rtr
}

// Tools returns descriptors of all tools the assistant serves.
func (c *Ctrl) Tools() []toolx.Descriptor {
	return []toolx.Descriptor{
		{
			Name: ToolHello,
			Description: "Start a conversation with BuzzBot to set up news interests " +
				"or add more and get personalized news.",
			UseWhen:     "The user says hello, hi, or wants to start using the news service.",
			SideEffects: "Initiates a guided conversation to set up user interests.",
		},
		{
			Name:        ToolSetInterests,
			Description: "Set or update a user's news interests (topics they want to read about).",
			UseWhen: "The user wants to specify what types of news they're interested in " +
				"(e.g., technology, sports, politics).",
			SideEffects: "Replaces the user's existing interests with the new list " +
				"and saves to persistent storage.",
		},
		{
			Name:        ToolGetInterests,
			Description: "Get a user's current news interests.",
			UseWhen:     "The user wants to see what topics they've set as interests.",
			SideEffects: "None.",
		},
		{
			Name:        ToolGetNews,
			Description: "Get the latest 5 news articles based on a user's interests.",
			UseWhen:     "The user wants to see recent news articles related to their interests.",
			SideEffects: "Fetches fresh news from external API based on user's stored interests.",
		},
	}
}

// HelloData is a payload of a greeting response.
type HelloData struct {
	CurrentInterests []string `json:"current_interests"`
	NextAction       string   `json:"next_action"`
	Suggestions      []string `json:"suggestions,omitempty"`
}

// SetInterestsData is a payload of a response to saved interests.
type SetInterestsData struct {
	Interests   []string `json:"interests"`
	NextAction  string   `json:"next_action"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// InterestsData is a payload of a response listing interests.
type InterestsData struct {
	Interests  []string `json:"interests"`
	Count      int      `json:"count"`
	NextAction string   `json:"next_action"`
}

// NewsData is a payload of a response with fetched articles.
type NewsData struct {
	Interests   []string       `json:"interests"`
	NewsCount   int            `json:"news_count"`
	Articles    []news.Article `json:"articles"`
	Recap       string         `json:"recap,omitempty"`
	NextAction  string         `json:"next_action"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

func (c *Ctrl) hello(ctx context.Context, req toolx.Request) (toolx.Response, error) {
	var args struct {
		Message string `json:"user_message"`
	}
	if err := req.Bind(&args); err != nil {
		return toolx.Response{}, err
	}

	topics, err := c.Store.Get(ctx, req.User)
	if err != nil {
		return toolx.Response{}, fmt.Errorf("get interests: %w", err)
	}

	if c.Classifier.Classify(args.Message) != IntentGreeting {
		return toolx.Response{
			User: req.User,
			Message: "I'm here to help! Say 'hello' to get started, or if you already have " +
				"interests set, just say 'get news' to see the latest articles!",
			Data: HelloData{CurrentInterests: topics, NextAction: actionGeneralHelp},
		}, nil
	}

	if len(topics) == 0 {
		return toolx.Response{
			User: req.User,
			Message: "👋 Hello! I'm BuzzBot, your personal news assistant! I'd love to help " +
				"you stay updated with news that matters to you. What topics are you " +
				"interested in? You can tell me things like 'technology', 'sports', " +
				"'politics', 'science', etc. Just list your interests and I'll remember them!",
			Data: HelloData{
				CurrentInterests: topics,
				NextAction:       actionNeedInterests,
				Suggestions: []string{
					"List your interests (e.g., 'technology sports politics')",
					"Or say 'I like technology and science'",
				},
			},
		}, nil
	}

	return toolx.Response{
		User: req.User,
		Message: fmt.Sprintf("👋 Hello! I'm BuzzBot, your personal news assistant! I see "+
			"you're interested in: %s. Would you like me to get you the latest news on "+
			"these topics? Just say 'yes' or 'get news'!", strings.Join(topics, ", ")),
		Data: HelloData{
			CurrentInterests: topics,
			NextAction:       actionReadyForNews,
			Suggestions: []string{
				"Say 'yes' or 'get news' to see latest articles",
				"Say 'change interests' to update your topics",
			},
		},
	}, nil
}

func (c *Ctrl) setInterests(ctx context.Context, req toolx.Request) (toolx.Response, error) {
	var args struct {
		Interests []string `json:"interests"`
	}
	if err := req.Bind(&args); err != nil {
		return toolx.Response{}, err
	}

	if len(args.Interests) == 0 {
		return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams,
			"interests must be a non-empty list")
	}

	saved, err := c.Store.Set(ctx, req.User, args.Interests)
	if err != nil {
		if errors.Is(err, store.ErrNoTopics) {
			return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams,
				"interests cannot be empty after cleaning")
		}
		return toolx.Response{}, fmt.Errorf("set interests: %w", err)
	}

	return toolx.Response{
		User: req.User,
		Message: fmt.Sprintf("🎉 Perfect! I've saved your interests: %s. Now you're all set "+
			"to get personalized news! Would you like me to fetch the latest articles for "+
			"you? Just say 'yes' or 'get news'!", strings.Join(saved, ", ")),
		Data: SetInterestsData{
			Interests:  saved,
			NextAction: actionReadyForNews,
			Suggestions: []string{
				"Say 'yes' or 'get news' to see latest articles",
				"Say 'show interests' to see what I saved",
			},
		},
	}, nil
}

func (c *Ctrl) getInterests(ctx context.Context, req toolx.Request) (toolx.Response, error) {
	topics, err := c.Store.Get(ctx, req.User)
	if err != nil {
		return toolx.Response{}, fmt.Errorf("get interests: %w", err)
	}

	listed := lo.Ternary(len(topics) > 0, strings.Join(topics, ", "), "None set yet")

	return toolx.Response{
		User:    req.User,
		Message: fmt.Sprintf("Here are your current interests: %s", listed),
		Data: InterestsData{
			Interests:  topics,
			Count:      len(topics),
			NextAction: actionShowInterests,
		},
	}, nil
}

func (c *Ctrl) getNews(ctx context.Context, req toolx.Request) (toolx.Response, error) {
	topics, err := c.Store.Get(ctx, req.User)
	if err != nil {
		return toolx.Response{}, fmt.Errorf("get interests: %w", err)
	}

	if len(topics) == 0 {
		return toolx.Response{}, toolx.Errorf(toolx.CodeInvalidParams,
			"No interests set. Please set interests first using set_interests "+
				"or say 'hello' to get started.")
	}

	articles := c.News.Latest(ctx, topics)

	if len(articles) == 0 {
		return toolx.Response{
			User: req.User,
			Message: "📰 I tried to fetch news for your interests, but couldn't find any " +
				"recent articles right now. This sometimes happens with very specific " +
				"topics. Would you like to try different interests or check back later?",
			Data: NewsData{
				Interests:  topics,
				NewsCount:  0,
				Articles:   []news.Article{},
				NextAction: actionNoNewsFound,
			},
		}, nil
	}

	data := NewsData{
		Interests:  topics,
		NewsCount:  len(articles),
		Articles:   articles,
		NextAction: actionNewsDisplayed,
		Suggestions: []string{
			"Say 'more news' to refresh",
			"Say 'change interests' to update topics",
		},
	}

	// recap of the top article is best-effort, articles go out either way
	if c.Recap != nil {
		if recap, err := c.Recap.Recap(ctx, articles[0].URL); err != nil {
			c.Logger.WarnCtx(ctx, "failed to recap top article",
				slog.String("url", articles[0].URL), slog.Any("err", err))
		} else {
			data.Recap = recap
		}
	}

	return toolx.Response{
		User: req.User,
		Message: fmt.Sprintf("📰 Here are the latest %d news articles based on your "+
			"interests (%s):", len(articles), strings.Join(topics, ", ")),
		Data: data,
	}, nil
}
