// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anushkak0712/world-feed/app/assistant"
	"github.com/Anushkak0712/world-feed/app/gateway"
	"github.com/Anushkak0712/world-feed/app/news"
	"github.com/Anushkak0712/world-feed/app/recap"
	"github.com/Anushkak0712/world-feed/app/server"
	"github.com/Anushkak0712/world-feed/app/store"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Run is a command to run the server.
type Run struct {
	Server struct {
		Listen         string        `long:"listen" env:"LISTEN" default:":8086" description:"address to listen on"`
		AuthToken      string        `long:"auth-token" env:"AUTH_TOKEN" required:"true" description:"bearer token for authorizing requests"`
		OwnerNumber    string        `long:"owner-number" env:"OWNER_NUMBER" description:"phone number returned by the validate tool"`
		HandlerTimeout time.Duration `long:"handler-timeout" env:"HANDLER_TIMEOUT" default:"30s" description:"timeout for tool handlers"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	News struct {
		APIKey      string        `long:"api-key" env:"API_KEY" required:"true" description:"NewsAPI key"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" default:"https://newsapi.org" description:"NewsAPI base URL"`
		Timeout     time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"timeout for NewsAPI calls"`
		PageSize    int           `long:"page-size" env:"PAGE_SIZE" default:"5" description:"max articles to fetch and return"`
		QueryTopics int           `long:"query-topics" env:"QUERY_TOPICS" default:"3" description:"max interests to put into a search query"`
	} `group:"news" namespace:"news" env-namespace:"NEWS"`

	Store struct {
		Type string `long:"type" env:"TYPE" choice:"json" choice:"bolt" default:"json" description:"storage backend"`
		Path string `long:"path" env:"PATH" default:"./var" description:"parent dir for storage files"`
	} `group:"store" namespace:"store" env-namespace:"STORE"`

	Recap struct {
		OpenAI struct {
			Token     string        `long:"token" env:"TOKEN" description:"OpenAI token, recaps are disabled if empty"`
			MaxTokens int           `long:"max-tokens" env:"MAX_TOKENS" default:"1000" description:"max tokens for OpenAI"`
			Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"5m" description:"timeout for OpenAI calls"`
		} `group:"openai" namespace:"openai" env-namespace:"OPENAI"`
	} `group:"recap" namespace:"recap" env-namespace:"RECAP"`

	Telegram struct {
		Token    string   `long:"token" env:"TOKEN" description:"telegram token, gateway is disabled if empty"`
		AdminIDs []string `long:"admin-ids" env:"ADMIN_IDS" description:"admin chat IDs"`
	} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`
}

// Execute runs the command.
func (r Run) Execute(_ []string) error {
	lg := slog.Default()

	if err := os.MkdirAll(r.Store.Path, 0o700); err != nil {
		return fmt.Errorf("make store dir: %w", err)
	}

	s, err := r.makeStore(lg)
	if err != nil {
		return fmt.Errorf("make store: %w", err)
	}

	defer func() {
		if err := s.Close(); err != nil {
			lg.Error("close store", slog.Any("err", err))
		}
	}()

	svc := news.NewService(
		lg.With(slog.String("prefix", "news")),
		news.NewClient(
			lg.With(slog.String("prefix", "newsapi")),
			r.News.BaseURL,
			r.News.APIKey,
			r.News.Timeout,
		),
		r.News.QueryTopics,
		r.News.PageSize,
	)

	ctrl := &assistant.Ctrl{
		Logger:         lg.With(slog.String("prefix", "assistant")),
		Store:          s,
		News:           svc,
		Classifier:     assistant.KeywordClassifier{},
		HandlerTimeout: r.Server.HandlerTimeout,
	}

	var rec *recap.Service
	if r.Recap.OpenAI.Token != "" {
		rec = recap.NewService(
			lg.With(slog.String("prefix", "recap")),
			&http.Client{Timeout: 5 * time.Second},
			recap.NewChatGPT(
				lg.With(slog.String("prefix", "chatgpt")),
				&http.Client{Timeout: r.Recap.OpenAI.Timeout},
				r.Recap.OpenAI.Token,
				r.Recap.OpenAI.MaxTokens,
			),
			recap.NewExtractor(),
		)
		ctrl.Recap = rec
	}

	handler := ctrl.Routes().Handle

	srv := &server.Server{
		Logger:      lg.With(slog.String("prefix", "server")),
		Addr:        r.Server.Listen,
		AuthToken:   r.Server.AuthToken,
		OwnerNumber: r.Server.OwnerNumber,
		Handler:     handler,
		Tools:       ctrl.Tools(),
	}

	ctx, stop := context.WithCancel(context.Background())

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sig:
			slog.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		lg.Info("starting server", slog.String("addr", r.Server.Listen))
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		lg.Warn("server stopped")
		return nil
	})

	if r.Telegram.Token != "" {
		api, err := gateway.NewTelegram(lg.With(slog.String("prefix", "telegram")), r.Telegram.Token)
		if err != nil {
			return fmt.Errorf("make telegram gateway: %w", err)
		}

		gw := &gateway.Ctrl{
			Logger:     lg.With(slog.String("prefix", "gateway")),
			API:        api,
			Handler:    handler,
			Classifier: assistant.KeywordClassifier{},
			Store:      s,
			Recap:      rec,
			AdminIDs:   r.Telegram.AdminIDs,
			Workers:    10,
		}

		ewg.Go(func() error {
			lg.Info("starting telegram listener")
			if err := api.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("telegram listener: %w", err)
			}
			lg.Warn("telegram listener stopped")
			return nil
		})
		ewg.Go(func() error {
			lg.Info("starting gateway workers")
			gw.Run(ctx)
			lg.Warn("gateway workers stopped")
			return nil
		})
	}

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (r Run) makeStore(lg *slog.Logger) (store.Interface, error) {
	switch r.Store.Type {
	case "bolt":
		return store.NewBolt(r.Store.Path)
	default:
		return store.NewJSON(lg.With(slog.String("prefix", "store")), r.Store.Path), nil
	}
}
