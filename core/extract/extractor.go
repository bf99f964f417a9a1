// Package extract implements the Extractor interface.
// It turns an HTML help page into chapters by:
//  1. Removing noise elements (nav, footer, scripts, images, etc.)
//  2. Finding the best content container (<main>, <article>, or <body>)
//  3. Splitting the container at every <h2>, one chapter per heading
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/guidegen/core"
)

// noiseSelectors are HTML elements removed before extraction.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

const (
	mockupAttr    = "data-mockup"
	proTipSel     = "blockquote, .pro-tip"
	stepTitleSel  = "strong, b"
	chapterHeader = "h2"
)

// ChapterExtractor splits help pages into chapters.
type ChapterExtractor struct{}

// New creates a ChapterExtractor.
func New() *ChapterExtractor {
	return &ChapterExtractor{}
}

// Extract returns one chapter per <h2> in document order. Fragments are left
// as HTML for the normalizer. A page without headings is an error.
func (e *ChapterExtractor) Extract(html string) ([]core.ExtractedChapter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	var chapters []core.ExtractedChapter
	var firstErr error
	content.Find(chapterHeader).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		ch, err := extractChapter(h)
		if err != nil {
			firstErr = err
			return false
		}
		chapters = append(chapters, ch)
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("no <%s> chapter headings found", chapterHeader)
	}
	return chapters, nil
}

func extractChapter(h *goquery.Selection) (core.ExtractedChapter, error) {
	ch := core.ExtractedChapter{Title: strings.Join(strings.Fields(h.Text()), " ")}
	section := h.NextUntil(chapterHeader)

	// find matches sel among the section's top-level nodes and their descendants.
	find := func(sel string) *goquery.Selection {
		return section.Filter(sel).AddSelection(section.Find(sel))
	}

	if v, ok := h.Attr(mockupAttr); ok {
		ch.Mockup = strings.TrimSpace(v)
	} else if m := find("[" + mockupAttr + "]").First(); m.Length() > 0 {
		ch.Mockup = strings.TrimSpace(m.AttrOr(mockupAttr, ""))
	}

	tips := find(proTipSel)
	if tips.Length() > 0 {
		html, err := tips.First().Html()
		if err != nil {
			return ch, fmt.Errorf("serializing pro tip for %q: %w", ch.Title, err)
		}
		ch.ProTip = html
	}

	body := find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return p.Closest(proTipSel).Length() == 0 && p.Closest("li").Length() == 0
	})
	if body.Length() > 0 {
		html, err := body.First().Html()
		if err != nil {
			return ch, fmt.Errorf("serializing body for %q: %w", ch.Title, err)
		}
		ch.Body = html
	}

	var err error
	find("ul > li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		var html string
		html, err = li.Html()
		ch.Bullets = append(ch.Bullets, html)
		return err == nil
	})
	if err != nil {
		return ch, fmt.Errorf("serializing bullets for %q: %w", ch.Title, err)
	}

	find("ol > li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		var step core.ExtractedStep
		step, err = extractStep(li)
		ch.Steps = append(ch.Steps, step)
		return err == nil
	})
	if err != nil {
		return ch, fmt.Errorf("serializing steps for %q: %w", ch.Title, err)
	}

	return ch, nil
}

// extractStep splits "<strong>Title</strong> description" into its parts.
// Items without a leading strong element get an empty title.
func extractStep(li *goquery.Selection) (core.ExtractedStep, error) {
	li = li.Clone()
	var step core.ExtractedStep
	if t := li.ChildrenFiltered(stepTitleSel).First(); t.Length() > 0 {
		step.Title = strings.TrimRight(strings.TrimSpace(t.Text()), ":.")
		t.Remove()
	}
	html, err := li.Html()
	if err != nil {
		return step, err
	}
	step.Description = strings.TrimLeft(strings.TrimSpace(html), ":-. ")
	return step, nil
}
