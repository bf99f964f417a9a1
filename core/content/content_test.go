package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/gaurav-prasanna/guidegen/core"
)

func TestDefaultGuideShape(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(g.Sections) != 8 {
		t.Fatalf("sections = %d, want 8", len(g.Sections))
	}
	for i, s := range g.Sections {
		if s.Part != i+1 {
			t.Errorf("section %d has part %d", i, s.Part)
		}
		if len(s.Chapters) != 6 {
			t.Errorf("section %q has %d chapters, want 6", s.Title, len(s.Chapters))
		}
	}
}

func TestDefaultGuideIsValid(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if err := Validate(g); err != nil {
		for _, e := range multierr.Errors(err) {
			t.Error(e)
		}
	}
}

func TestEveryChapterResolves(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	for _, s := range g.Sections {
		for _, ch := range s.Chapters {
			if ch.IsCover() {
				continue
			}
			if _, ok := g.Lookup(ch.Title); !ok {
				t.Errorf("chapter %q has no content", ch.Title)
			}
		}
	}
}

func TestEmojiTitlesMatchPlainKeys(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	var found int
	for _, s := range g.Sections {
		for _, ch := range s.Chapters {
			if core.StripEmojis(ch.Title) == ch.Title {
				continue
			}
			found++
			if _, ok := g.Content[core.StripEmojis(ch.Title)]; !ok {
				t.Errorf("emoji title %q has no plain content key", ch.Title)
			}
		}
	}
	if found == 0 {
		t.Error("embedded guide has no emoji titles to exercise stripping")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	g := &core.Guide{
		Sections: []core.GuideSection{
			{Part: 1, Title: "One", Chapters: []core.Chapter{
				{Page: "1", Title: "Cover"},
				{Page: "2-3", Title: "Known"},
				{Page: "4", Title: "Missing"},
			}},
			{Part: 1, Title: "Again", Chapters: []core.Chapter{
				{Page: "five", Title: "Known"},
			}},
		},
		Content: map[string]core.ChapterContent{
			"Known":  {BodyText: "body", Mockup: "carousel"},
			"Orphan": {BodyText: " "},
		},
	}

	errs := multierr.Errors(Validate(g))
	want := []string{
		`duplicate part 1`,
		`"Missing": no content entry`,
		`malformed page label "five"`,
		`unknown mockup "carousel"`,
		`"Orphan": not referenced`,
		`"Orphan": empty body`,
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	joined := Validate(g).Error()
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("missing %q in %s", w, joined)
		}
	}
}

func TestValidateReportsCollidingKeys(t *testing.T) {
	g := &core.Guide{
		Sections: []core.GuideSection{
			{Part: 1, Title: "One", Chapters: []core.Chapter{{Page: "3", Title: "Quick Start"}}},
		},
		Content: map[string]core.ChapterContent{
			"🚀 Quick Start": {BodyText: "rocket"},
			"⚡ Quick Start": {BodyText: "bolt"},
		},
	}
	errs := multierr.Errors(Validate(g))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if want := `"🚀 Quick Start": shadowed by "⚡ Quick Start"`; !strings.Contains(errs[0].Error(), want) {
		t.Errorf("error = %v, want %q", errs[0], want)
	}
	if c, _ := g.Lookup("Quick Start"); c.BodyText != "bolt" {
		t.Errorf("Lookup resolved to %q, want the reported winner", c.BodyText)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	data := `sections:
  - part: 1
    title: "Basics"
    pages: "1-2"
    tier: "All"
    chapters:
      - page: "1-2"
        title: "🎬 Intro"
        tier: "Beginner"
content:
  "Intro":
    body: "Hello"
    mockup: player
    bullets: ["a", "b"]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c, ok := g.Lookup(g.Sections[0].Chapters[0].Title)
	if !ok {
		t.Fatal("override chapter did not resolve")
	}
	if c.Mockup != core.MockupPlayer || len(c.Bullets) != 2 {
		t.Errorf("unexpected content %+v", c)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("content:\n  X:\n    bodytext: nope\n"))
	if err == nil {
		t.Fatal("expected an error for the misspelled field")
	}
}

func TestMarshalRoundTripsContent(t *testing.T) {
	in := &core.Guide{Content: map[string]core.ChapterContent{
		"Intro": {BodyText: "Hello", Steps: []core.Step{{Title: "One", Description: "First"}}},
	}}
	data, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
	}
	if out.Content["Intro"].Steps[0].Description != "First" {
		t.Errorf("steps lost in round trip: %+v", out.Content["Intro"])
	}
}
