package recap

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// Page is an article page stripped down to its readable content.
type Page struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Extractor extracts the readable part of an HTML page.
type Extractor struct{}

// NewExtractor creates new Extractor.
func NewExtractor() Extractor { return Extractor{} }

// Extract extracts the readable part of an HTML page.
func (e Extractor) Extract(rd io.Reader) (Page, error) {
	doc, err := readability.FromReader(rd, nil)
	if err != nil {
		return Page{}, fmt.Errorf("parse html: %w", err)
	}

	return Page{
		Title:   doc.Title,
		Author:  doc.Byline,
		Content: e.sanitize(doc.TextContent),
	}, nil
}

var spaceRe = regexp.MustCompile(`\s+`)

func (e Extractor) sanitize(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	// nbsp
	s = strings.ReplaceAll(s, "\u00a0", " ")

	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
