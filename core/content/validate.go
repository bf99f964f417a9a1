package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/gaurav-prasanna/guidegen/core"
)

var pageLabel = regexp.MustCompile(`^\d+(-\d+)?$`)

// Validate reports authoring problems in g: duplicate parts, malformed page
// labels, chapters without content, content nobody references, content keys
// that collide once emojis are stripped, unknown mockup keys and empty body
// text. All problems are returned together.
//
// The problems are advisory. Rendering never fails on them; a chapter
// without content simply gets the generic fallback text.
func Validate(g *core.Guide) error {
	var err error
	parts := make(map[int]bool)
	used := make(map[string]bool)

	for _, s := range g.Sections {
		if s.Part <= 0 {
			err = multierr.Append(err, fmt.Errorf("section %q: part must be positive, got %d", s.Title, s.Part))
		}
		if parts[s.Part] {
			err = multierr.Append(err, fmt.Errorf("section %q: duplicate part %d", s.Title, s.Part))
		}
		parts[s.Part] = true

		for _, ch := range s.Chapters {
			if !pageLabel.MatchString(ch.Page) {
				err = multierr.Append(err, fmt.Errorf("chapter %q: malformed page label %q", ch.Title, ch.Page))
			}
			if ch.IsCover() {
				continue
			}
			key := core.StripEmojis(ch.Title)
			if _, ok := g.Lookup(key); !ok {
				err = multierr.Append(err, fmt.Errorf("chapter %q: no content entry", ch.Title))
				continue
			}
			used[key] = true
		}
	}

	titles := make([]string, 0, len(g.Content))
	for title := range g.Content {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	seen := make(map[string]string)
	for _, title := range titles {
		c := g.Content[title]
		stripped := core.StripEmojis(title)
		if first, ok := seen[stripped]; ok {
			err = multierr.Append(err, fmt.Errorf("content %q: shadowed by %q, both match chapter %q", title, first, stripped))
		} else {
			seen[stripped] = title
		}
		if !used[core.StripEmojis(title)] {
			err = multierr.Append(err, fmt.Errorf("content %q: not referenced by any chapter", title))
		}
		if !c.Mockup.Valid() {
			err = multierr.Append(err, fmt.Errorf("content %q: unknown mockup %q", title, c.Mockup))
		}
		if strings.TrimSpace(c.BodyText) == "" {
			err = multierr.Append(err, fmt.Errorf("content %q: empty body", title))
		}
	}
	return err
}
