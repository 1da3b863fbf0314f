// Package gateway contains controllers that bridge chat services to
// tool calls.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Anushkak0712/world-feed/app/assistant"
	"github.com/Anushkak0712/world-feed/app/recap"
	"github.com/Anushkak0712/world-feed/app/store"
	"github.com/Anushkak0712/world-feed/pkg/logx"
	"github.com/Anushkak0712/world-feed/pkg/toolx"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// Update is a single message received from a chat service.
type Update struct {
	ChatID   string
	Username string
	Text     string
}

// Message is a single message to be sent to a chat service.
type Message struct {
	ChatID string
	Text   string
}

// API defines methods for an API interface to receive and send chat messages.
type API interface {
	Updates() <-chan Update
	SendMessage(ctx context.Context, msg Message) error
}

//go:generate moq -out mock_api.go . API

// Ctrl routes chat updates to tool calls and renders tool responses
// back into chat messages.
type Ctrl struct {
	Logger     *slog.Logger
	API        API
	Handler    toolx.Handler
	Classifier assistant.Classifier
	Store      store.Interface
	Recap      *recap.Service
	AdminIDs   []string
	Workers    int
}

// Run starts update workers and blocks until the context is dead.
func (c *Ctrl) Run(ctx context.Context) {
	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	wg := &sync.WaitGroup{}
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(idx int) {
			c.Logger.InfoCtx(ctx, "starting worker", slog.Int("worker", idx))

			defer func() {
				c.Logger.InfoCtx(ctx, "stopping worker", slog.Int("worker", idx))
				wg.Done()
			}()

			for {
				select {
				case <-ctx.Done():
					return
				case upd, ok := <-c.API.Updates():
					if !ok {
						return
					}
					c.handleUpdate(ctx, upd)
				}
			}
		}(i)
	}

	wg.Wait()
}

func (c *Ctrl) handleUpdate(ctx context.Context, upd Update) {
	ctx = logx.ContextWithRequestID(ctx, uuid.New().String())

	msgs, err := c.handle(ctx, upd)
	if err != nil {
		c.Logger.ErrorCtx(ctx, "failed to handle update",
			slog.String("chat_id", upd.ChatID), slog.Any("err", err))
		msgs = append(msgs, c.errorMessage(ctx, upd, err))
	}

	for _, msg := range msgs {
		if err := c.API.SendMessage(ctx, msg); err != nil {
			c.Logger.WarnCtx(ctx, "failed to send message", slog.Any("err", err))
		}
	}
}

func (c *Ctrl) handle(ctx context.Context, upd Update) ([]Message, error) {
	text := strings.TrimSpace(upd.Text)
	cmd, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/start":
		return c.hello(ctx, upd, "hello")
	case "/interests":
		if rest == "" {
			return c.callTool(ctx, upd, assistant.ToolGetInterests, nil)
		}
		return c.setInterests(ctx, upd, rest)
	case "/news":
		return c.callTool(ctx, upd, assistant.ToolGetNews, nil)
	case "/users":
		return c.admin(ctx, upd, c.users)
	case "/cache":
		return c.admin(ctx, upd, c.cacheStats)
	}

	switch c.Classifier.Classify(text) {
	case assistant.IntentWantsNews:
		return c.callTool(ctx, upd, assistant.ToolGetNews, nil)
	case assistant.IntentInterests:
		return c.setInterests(ctx, upd, text)
	default:
		return c.hello(ctx, upd, text)
	}
}

func (c *Ctrl) hello(ctx context.Context, upd Update, message string) ([]Message, error) {
	return c.callTool(ctx, upd, assistant.ToolHello,
		map[string]string{"user_message": message})
}

func (c *Ctrl) setInterests(ctx context.Context, upd Update, raw string) ([]Message, error) {
	topics := strings.Split(raw, ",")
	for i := range topics {
		topics[i] = strings.TrimSpace(topics[i])
	}

	return c.callTool(ctx, upd, assistant.ToolSetInterests,
		map[string][]string{"interests": topics})
}

func (c *Ctrl) callTool(ctx context.Context, upd Update, tool string, args any) ([]Message, error) {
	req := toolx.Request{User: upd.ChatID, Tool: tool}

	if args != nil {
		bts, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("marshal arguments: %w", err)
		}
		req.Args = bts
	}

	resp, err := c.Handler(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", tool, err)
	}

	return renderResponse(upd.ChatID, resp)
}

type adminHandler func(ctx context.Context, upd Update) ([]Message, error)

func (c *Ctrl) admin(ctx context.Context, upd Update, h adminHandler) ([]Message, error) {
	if !lo.Contains(c.AdminIDs, upd.ChatID) {
		return nil, nil
	}

	return h(ctx, upd)
}

func (c *Ctrl) users(ctx context.Context, upd Update) ([]Message, error) {
	interests, err := c.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}

	ids := lo.Keys(interests)
	sort.Strings(ids)

	sb := &strings.Builder{}
	_, _ = sb.WriteString("Users:\n")
	for _, id := range ids {
		_, _ = sb.WriteString(fmt.Sprintf("id: %s, interests: %s\n",
			escapeMarkdown(id), escapeMarkdown(strings.Join(interests[id], ", "))))
	}

	return []Message{{ChatID: upd.ChatID, Text: sb.String()}}, nil
}

func (c *Ctrl) cacheStats(_ context.Context, upd Update) ([]Message, error) {
	if c.Recap == nil {
		return []Message{{ChatID: upd.ChatID, Text: "Recaps are disabled."}}, nil
	}

	stats := c.Recap.CacheStat()
	return []Message{{
		ChatID: upd.ChatID,
		Text: fmt.Sprintf("hits: %d, misses: %d, evictions: %d, size: %d\n",
			stats.Hits, stats.Misses, stats.Evicted, stats.Added),
	}}, nil
}
