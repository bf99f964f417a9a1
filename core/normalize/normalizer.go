// Package normalize implements the Normalizer interface.
// HTML fragments are first converted to Markdown, then stripped of inline
// Markdown so the text can be drawn as-is on a PDF page.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	italicRe    = regexp.MustCompile(`(^|\s)[*_]([^*_]+)[*_]($|\s|[.,;:!?])`)
	codeRe      = regexp.MustCompile("`([^`]+)`")
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	listMarkRe  = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	quoteRe     = regexp.MustCompile(`(?m)^>\s?`)
	escapeRe    = regexp.MustCompile(`\\([\\*_\[\]()#+\-.!` + "`" + `>])`)
	whitespaceR = regexp.MustCompile(`\s+`)
)

// TextNormalizer converts HTML fragments to single-paragraph plain text.
type TextNormalizer struct{}

// New creates a TextNormalizer.
func New() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize converts an HTML fragment into plain display text.
func (n *TextNormalizer) Normalize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return PlainText(markdown), nil
}

// PlainText removes inline Markdown syntax and folds whitespace.
func PlainText(text string) string {
	text = headingRe.ReplaceAllString(text, "")
	text = quoteRe.ReplaceAllString(text, "")
	text = listMarkRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Single markers only count at word edges, so "don't" and snake_case survive.
	text = italicRe.ReplaceAllString(text, "$1$2$3")
	text = codeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = escapeRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(whitespaceR.ReplaceAllString(text, " "))
}
