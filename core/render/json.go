// JSON renderer.
// Builds a structured outline of the guide: every section, every chapter and
// the page labels the PDF renderer will print on it.

package render

import (
	"encoding/json"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
)

// OutlineChapter is a chapter entry in the JSON outline.
type OutlineChapter struct {
	Title      string          `json:"title"`
	Tier       string          `json:"tier"`
	Route      string          `json:"route,omitempty"`
	Declared   string          `json:"declared_pages"`
	Pages      []int           `json:"pages"`
	HasContent bool            `json:"has_content"`
	Mockup     core.MockupKind `json:"mockup,omitempty"`
	Steps      int             `json:"steps"`
	Bullets    int             `json:"bullets"`
}

// OutlineSection is a section entry in the JSON outline.
type OutlineSection struct {
	Part     int              `json:"part"`
	Title    string           `json:"title"`
	Pages    string           `json:"pages"`
	Tier     string           `json:"tier"`
	Chapters []OutlineChapter `json:"chapters"`
}

// Outline is the complete JSON output.
type Outline struct {
	Numbering    string           `json:"numbering"`
	TOCPages     int              `json:"toc_pages"`
	ChapterPages int              `json:"chapter_pages"`
	Sections     []OutlineSection `json:"sections"`
}

// JSONRenderer produces the structured outline.
type JSONRenderer struct {
	Numbering Numbering
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(numbering Numbering) *JSONRenderer {
	return &JSONRenderer{Numbering: numbering}
}

// measureTOCPages lays the table of contents out on a scratch document and
// returns the number of pages it takes, so page labels match the PDF.
func measureTOCPages(sections []core.GuideSection) int {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	d := layout.New(pdf, layout.DefaultBrand())
	d.NewPage()
	return drawTableOfContents(d, sections, 3)
}

// BuildOutline computes the outline without encoding it.
func (r *JSONRenderer) BuildOutline(guide *core.Guide) Outline {
	tocPages := measureTOCPages(guide.Sections)
	first := FixedFirstChapterPage
	if r.Numbering == NumberingDerived {
		first = 2 + tocPages + 1
	}

	out := Outline{Numbering: r.Numbering.String(), TOCPages: tocPages}
	slots := Plan(guide, first)
	next := 0
	for _, s := range guide.Sections {
		sec := OutlineSection{Part: s.Part, Title: s.Title, Pages: s.Pages, Tier: s.Tier}
		for _, ch := range s.Chapters {
			if ch.IsCover() {
				continue
			}
			slot := slots[next]
			next++
			c, ok := guide.Lookup(ch.Title)
			sec.Chapters = append(sec.Chapters, OutlineChapter{
				Title:      core.StripEmojis(ch.Title),
				Tier:       ch.Tier,
				Route:      ch.Route,
				Declared:   ch.Page,
				Pages:      slot.Pages,
				HasContent: ok,
				Mockup:     c.Mockup,
				Steps:      len(c.Steps),
				Bullets:    len(c.Bullets),
			})
			out.ChapterPages += len(slot.Pages)
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

// Render encodes the outline as indented JSON.
func (r *JSONRenderer) Render(guide *core.Guide) ([]byte, error) {
	data, err := json.MarshalIndent(r.BuildOutline(guide), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
