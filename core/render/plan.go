package render

import "github.com/gaurav-prasanna/guidegen/core"

// FixedFirstChapterPage is the label of the first chapter page: one cover
// page, one welcome page and two table-of-contents pages precede it.
const FixedFirstChapterPage = 5

// Numbering selects how chapter page labels are derived.
type Numbering int

const (
	// NumberingFixed starts chapter labels at FixedFirstChapterPage no
	// matter how many pages the table of contents actually used.
	NumberingFixed Numbering = iota
	// NumberingDerived starts chapter labels right after the last physical
	// table-of-contents page.
	NumberingDerived
)

// ParseNumbering maps a configuration value to a Numbering.
func ParseNumbering(s string) (Numbering, bool) {
	switch s {
	case "", "fixed":
		return NumberingFixed, true
	case "derived":
		return NumberingDerived, true
	}
	return NumberingFixed, false
}

func (n Numbering) String() string {
	if n == NumberingDerived {
		return "derived"
	}
	return "fixed"
}

// ChapterSlot is one chapter placed in the document with the page labels it
// will carry.
type ChapterSlot struct {
	Part         int
	SectionTitle string
	Chapter      core.Chapter
	Pages        []int
}

// Plan walks the guide in document order, skips the cover placeholder and
// assigns consecutive page labels starting at first.
func Plan(g *core.Guide, first int) []ChapterSlot {
	var slots []ChapterSlot
	page := first
	for _, s := range g.Sections {
		for _, ch := range s.Chapters {
			if ch.IsCover() {
				continue
			}
			slot := ChapterSlot{Part: s.Part, SectionTitle: s.Title, Chapter: ch}
			for i := 0; i < ch.PageCount(); i++ {
				slot.Pages = append(slot.Pages, page)
				page++
			}
			slots = append(slots, slot)
		}
	}
	return slots
}
