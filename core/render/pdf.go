// PDF renderer.
// Lays the guide out as an A4 document using gofpdf: cover, welcome page,
// table of contents, then one or two pages per chapter.

package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
)

// DefaultFileName is the name the finished guide is saved under.
const DefaultFileName = "embed-pro-user-guide.pdf"

// documentDate is stamped into the PDF metadata so that identical input
// produces identical bytes.
var documentDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders the guide as a PDF document.
type PDFRenderer struct {
	Brand     layout.Brand
	Numbering Numbering
	log       *zap.Logger
}

// NewPDFRenderer creates a PDFRenderer. A nil logger discards output.
func NewPDFRenderer(brand layout.Brand, log *zap.Logger) *PDFRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &PDFRenderer{Brand: brand, log: log}
}

// Summary describes what Draw put on the canvas.
type Summary struct {
	Pages        int      // physical pages
	TOCPages     int      // physical pages used by the table of contents
	ChapterPages int      // physical chapter pages
	FirstLabel   int      // page label of the first chapter page
	Misses       []string // chapter titles rendered with fallback text
}

// Render converts the guide into PDF bytes.
func (r *PDFRenderer) Render(guide *core.Guide) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(r.Brand.Name+" "+r.Brand.Subtitle, true)
	pdf.SetCreator(r.Brand.Name, true)

	sum := r.Draw(pdf, guide)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	r.log.Debug("Guide rendered",
		zap.Int("pages", sum.Pages),
		zap.Int("toc_pages", sum.TOCPages),
		zap.Int("chapter_pages", sum.ChapterPages),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// Draw lays the whole guide out on canvas.
func (r *PDFRenderer) Draw(canvas layout.Canvas, guide *core.Guide) Summary {
	d := layout.New(canvas, r.Brand)
	var sum Summary

	d.NewPage()
	drawCover(d)

	d.NewPage()
	drawWelcome(d, d.PageNo())

	d.NewPage()
	sum.TOCPages = drawTableOfContents(d, guide.Sections, d.PageNo())

	first := FixedFirstChapterPage
	if r.Numbering == NumberingDerived {
		first = d.PageNo() + 1
	} else if d.PageNo()+1 != FixedFirstChapterPage {
		r.log.Warn("Table of contents length does not match fixed page labels",
			zap.Int("toc_pages", sum.TOCPages),
			zap.Int("first_chapter_page", d.PageNo()+1),
			zap.Int("first_chapter_label", FixedFirstChapterPage))
	}
	sum.FirstLabel = first

	miss := func(title string) {
		sum.Misses = append(sum.Misses, title)
		r.log.Warn("No content for chapter, using fallback text", zap.String("chapter", title))
	}

	for _, slot := range Plan(guide, first) {
		for i, label := range slot.Pages {
			d.NewPage()
			drawChapterPage(d, guide, chapterPage{
				part:         slot.Part,
				sectionTitle: slot.SectionTitle,
				chapter:      slot.Chapter,
				page:         label,
				secondPage:   i == 1,
			}, miss)
			sum.ChapterPages++
		}
	}
	sum.Pages = d.PageNo()
	return sum
}
