package render

import (
	"fmt"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
	"github.com/gaurav-prasanna/guidegen/core/mockup"
)

// Fixed copy used when a chapter page has nothing specific to show.
const (
	FallbackText     = "Detailed guidance for this feature is available in the Embed Pro help centre and in-app tooltips."
	ContinuationText = "Continue with the steps above. Once every step is complete, the feature is ready to use and you can return to it at any time from the sidebar."
	ReviewText       = "Review the features above and try each of them in your own workspace. Changes are saved automatically and can be undone at any time."
	ReferenceText    = "For the latest updates and video walkthroughs, visit the help centre at embedpro.app/help."
)

const (
	mockupHeight  = 45.0
	mockupAdvance = 50.0
	bodySize      = 9.0
)

// MissFunc is told about chapter titles that have no content entry.
type MissFunc func(title string)

// chapterPage is everything needed to paint one page of a chapter.
type chapterPage struct {
	part         int
	sectionTitle string
	chapter      core.Chapter
	page         int
	secondPage   bool
}

// drawChapterPage paints one chapter page onto the current canvas page.
// Content that does not fit is dropped rather than flowed to another page.
func drawChapterPage(d *layout.Doc, g *core.Guide, p chapterPage, miss MissFunc) {
	d.DrawHeader(fmt.Sprintf("Part %d: %s", p.part, p.sectionTitle), p.page)

	y := drawPageTitle(d, p.chapter.Title) - 4
	d.DrawTierBadge(p.chapter.Tier, d.PageWidth()-layout.Margin-layout.TierBadgeWidth, 28)
	if p.chapter.Description != "" {
		d.Font("I", 10)
		d.Ink(layout.Gray)
		d.Text(layout.Margin, y+1, p.chapter.Description)
		d.Reset()
		y += 8
	}

	c, ok := g.Lookup(p.chapter.Title)
	if !ok {
		if miss != nil {
			miss(p.chapter.Title)
		}
		d.WriteBody(FallbackText, y, layout.BodyOptions{FontSize: 10, Color: layout.Gray})
		d.DrawFooter()
		return
	}

	if p.secondPage {
		drawChapterSecondPage(d, c, y)
	} else {
		drawChapterFirstPage(d, c, y)
	}
	d.DrawFooter()
}

func drawChapterFirstPage(d *layout.Doc, c core.ChapterContent, y float64) {
	if c.Mockup != core.MockupNone {
		h := mockupHeight
		my := y
		switch c.Mockup {
		case core.MockupAI:
			h = mockupHeight * 0.6
		case core.MockupPlatforms:
			my -= 10
		}
		mockup.Draw(d, c.Mockup, layout.Margin, my, d.ContentWidth(), h)
		y += mockupAdvance
	}

	y = d.WriteBody(c.BodyText, y, layout.BodyOptions{FontSize: bodySize, Color: layout.Slate}) + 4

	switch {
	case len(c.Steps) > 0:
		d.DrawDivider(y)
		y += 6
		y = d.WriteSubheading("Step-by-Step", y) + 2
		for i, s := range c.Steps {
			// Steps past the overflow line are dropped, not carried over.
			if y > layout.OverflowY {
				break
			}
			y = d.WriteNumberedStep(i+1, s.Title, s.Description, y) + 2
		}
	case len(c.Bullets) > 0:
		d.WriteBulletList(c.Bullets, y)
	}
}

func drawChapterSecondPage(d *layout.Doc, c core.ChapterContent, y float64) {
	body := layout.BodyOptions{FontSize: bodySize, Color: layout.Slate}
	switch {
	case len(c.Steps) > 0 && len(c.Bullets) > 0:
		y = d.WriteSubheading("Key Features", y) + 2
		y = d.WriteBulletList(c.Bullets, y)
	case len(c.Steps) > 0:
		y = d.WriteBody(ContinuationText, y, body)
	default:
		y = d.WriteBody(ReviewText, y, body)
	}

	if c.ProTip != "" {
		y = d.DrawProTip(c.ProTip, y)
	}

	y += 6
	d.DrawDivider(y)
	y += 6
	d.WriteBody(ReferenceText, y, layout.BodyOptions{FontSize: 8, Color: layout.Gray})
}
