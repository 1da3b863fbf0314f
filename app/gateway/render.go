package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Anushkak0712/world-feed/app/assistant"
	"github.com/Anushkak0712/world-feed/app/news"
	"github.com/Anushkak0712/world-feed/pkg/logx"
	"github.com/Anushkak0712/world-feed/pkg/toolx"
)

func (c *Ctrl) errorMessage(ctx context.Context, upd Update, err error) Message {
	var te *toolx.Error
	if errors.As(err, &te) && te.Code == toolx.CodeInvalidParams {
		return Message{ChatID: upd.ChatID, Text: escapeMarkdown(te.Message)}
	}

	reqID, _ := logx.RequestIDFromContext(ctx)
	return Message{
		ChatID: upd.ChatID,
		Text: fmt.Sprintf("Something went wrong. "+
			"Please, ask admin for help."+
			"\n\nRequest ID: `%s`", reqID),
	}
}

func renderResponse(chatID string, resp toolx.Response) ([]Message, error) {
	msgs := []Message{{ChatID: chatID, Text: escapeMarkdown(resp.Message)}}

	data, ok := resp.Data.(assistant.NewsData)
	if !ok {
		return msgs, nil
	}

	for i, article := range data.Articles {
		recap := ""
		if i == 0 {
			recap = data.Recap
		}

		text, err := renderArticle(article, recap)
		if err != nil {
			return nil, fmt.Errorf("render article: %w", err)
		}

		msgs = append(msgs, Message{ChatID: chatID, Text: text})
	}

	return msgs, nil
}

var articleMessageTmpl = template.Must(template.New("articleMessage").Parse(`
*{{.Title}}*{{if .Source}}
_{{.Source}}_{{end}}
{{if .Recap}}
{{.Recap}}
{{end}}
[source]({{.URL}})
`))

func renderArticle(article news.Article, recap string) (string, error) {
	sb := &strings.Builder{}

	err := articleMessageTmpl.Execute(sb, struct {
		Title, Source, Recap, URL string
	}{
		Title:  escapeMarkdown(article.Title),
		Source: escapeMarkdown(article.Source),
		Recap:  escapeMarkdown(recap),
		URL:    article.URL,
	})
	if err != nil {
		return "", fmt.Errorf("execute article message template: %w", err)
	}

	return sb.String(), nil
}

var mdEscaper = strings.NewReplacer(
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	">", "\\>",
)

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
