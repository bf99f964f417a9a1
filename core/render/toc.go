package render

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
)

const (
	tocTitle          = "Table of Contents"
	tocContinued      = "Table of Contents (continued)"
	tocContinuedStart = 32.0
	tocChapterPitch   = 5.5
	tocDotPitch       = 2.0
)

// drawTableOfContents lists every section and its chapters starting on the
// current page, which carries label firstPage. When the cursor passes
// OverflowY after a section, the next section starts on a new page. It
// returns the number of physical pages used.
func drawTableOfContents(d *layout.Doc, sections []core.GuideSection, firstPage int) int {
	c := d.Canvas()
	right := d.PageWidth() - layout.Margin
	indent := layout.Margin + 11
	pages := 1

	d.DrawHeader(tocTitle, firstPage)
	y := drawPageTitle(d, tocTitle)

	for i, s := range sections {
		d.Fill(layout.Amber)
		c.Circle(layout.Margin+4, y-1.3, 4, "F")
		d.Font("B", 9)
		d.Ink(layout.White)
		d.CenterText(layout.Margin+4, y, strconv.Itoa(s.Part))

		d.Font("B", 11)
		d.Ink(layout.Dark)
		d.Text(indent, y, s.Title)
		d.Font("", 8)
		d.Ink(layout.Gray)
		d.RightText(right, y, "pp. "+s.Pages)
		y += 7

		d.Font("", 9)
		for _, ch := range s.Chapters {
			if ch.IsCover() {
				continue
			}
			label := "p." + firstToken(ch.Page)
			d.Ink(layout.Slate)
			d.Text(indent, y, ch.Title)

			start := indent + d.StringWidth(ch.Title) + 2
			end := right - d.StringWidth(label) - 2
			d.Fill(layout.Gray)
			for x := start; x < end; x += tocDotPitch {
				c.Circle(x, y-0.7, 0.2, "F")
			}
			d.RightText(right, y, label)
			y += tocChapterPitch
		}
		y += 4

		if y > layout.OverflowY && i < len(sections)-1 {
			d.DrawFooter()
			d.NewPage()
			pages++
			d.DrawHeader(tocContinued, firstPage+pages-1)
			y = tocContinuedStart
		}
	}
	d.Reset()
	d.DrawFooter()
	return pages
}

func firstToken(page string) string {
	first, _, _ := strings.Cut(page, "-")
	return first
}
