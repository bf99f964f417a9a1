// Package render provides output renderers for the guide.
// This file implements the Markdown renderer, which writes the same content
// as the PDF as plain Markdown for wikis and review diffs.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
)

// MarkdownRenderer writes the guide as Markdown.
type MarkdownRenderer struct {
	Brand layout.Brand
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(brand layout.Brand) *MarkdownRenderer {
	return &MarkdownRenderer{Brand: brand}
}

// Render walks the guide in document order.
func (r *MarkdownRenderer) Render(guide *core.Guide) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", r.Brand.Name, r.Brand.Subtitle)
	fmt.Fprintf(&b, "_%s_ · %s\n", r.Brand.Tagline, r.Brand.Version)

	for _, s := range guide.Sections {
		fmt.Fprintf(&b, "\n## Part %d: %s\n\n", s.Part, core.StripEmojis(s.Title))
		fmt.Fprintf(&b, "Pages %s · %s\n", s.Pages, s.Tier)

		for _, ch := range s.Chapters {
			if ch.IsCover() {
				continue
			}
			writeChapterMarkdown(&b, guide, ch)
		}
	}
	return []byte(b.String()), nil
}

func writeChapterMarkdown(b *strings.Builder, guide *core.Guide, ch core.Chapter) {
	fmt.Fprintf(b, "\n### %s\n\n", core.StripEmojis(ch.Title))
	fmt.Fprintf(b, "**%s** · p. %s\n", ch.Tier, ch.Page)
	if ch.Description != "" {
		fmt.Fprintf(b, "\n_%s_\n", core.StripEmojis(ch.Description))
	}

	c, ok := guide.Lookup(ch.Title)
	if !ok {
		fmt.Fprintf(b, "\n%s\n", FallbackText)
		return
	}
	fmt.Fprintf(b, "\n%s\n", c.BodyText)

	if len(c.Steps) > 0 {
		b.WriteString("\n#### Step-by-Step\n\n")
		for i, s := range c.Steps {
			fmt.Fprintf(b, "%d. **%s**: %s\n", i+1, s.Title, s.Description)
		}
	}
	if len(c.Bullets) > 0 {
		if len(c.Steps) > 0 {
			b.WriteString("\n#### Key Features\n")
		}
		b.WriteString("\n")
		for _, item := range c.Bullets {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	if c.ProTip != "" {
		fmt.Fprintf(b, "\n> **Pro tip:** %s\n", c.ProTip)
	}
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
