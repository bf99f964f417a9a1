// Package core defines the guide data model and the pipeline interfaces for
// guidegen. Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"strings"
)

// MockupKind selects one of the fixed illustrative diagrams.
type MockupKind string

const (
	MockupNone       MockupKind = ""
	MockupPlayer     MockupKind = "player"
	MockupGrid       MockupKind = "grid"
	MockupPlatforms  MockupKind = "platforms"
	MockupAI         MockupKind = "ai"
	MockupProtection MockupKind = "protection"
	MockupAnalytics  MockupKind = "analytics"
	MockupLive       MockupKind = "live"
	MockupHierarchy  MockupKind = "hierarchy"
)

// Valid reports whether k names a known diagram (or no diagram at all).
func (k MockupKind) Valid() bool {
	switch k {
	case MockupNone, MockupPlayer, MockupGrid, MockupPlatforms, MockupAI,
		MockupProtection, MockupAnalytics, MockupLive, MockupHierarchy:
		return true
	}
	return false
}

// Step is one entry of a numbered step-by-step sequence.
type Step struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// ChapterContent is the rich content shown for a chapter, keyed by title.
type ChapterContent struct {
	BodyText string     `yaml:"body" json:"body"`
	Bullets  []string   `yaml:"bullets,omitempty" json:"bullets,omitempty"`
	Steps    []Step     `yaml:"steps,omitempty" json:"steps,omitempty"`
	ProTip   string     `yaml:"pro_tip,omitempty" json:"pro_tip,omitempty"`
	Mockup   MockupKind `yaml:"mockup,omitempty" json:"mockup,omitempty"`
}

// Chapter is the smallest addressable unit of the guide.
type Chapter struct {
	Page        string `yaml:"page" json:"page"`
	Title       string `yaml:"title" json:"title"`
	Tier        string `yaml:"tier" json:"tier"`
	Route       string `yaml:"route,omitempty" json:"route,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CoverTitle marks the pseudo-chapter that stands for the cover page. It is
// listed in the outline but never rendered as a chapter.
const CoverTitle = "Cover"

// IsCover reports whether the chapter is the cover placeholder.
func (c Chapter) IsCover() bool {
	return c.Title == CoverTitle
}

// PageCount returns how many physical pages the chapter occupies. Only the
// shape of the page label matters: "3-4" is two pages, "2" is one.
func (c Chapter) PageCount() int {
	if strings.Contains(c.Page, "-") {
		return 2
	}
	return 1
}

// GuideSection is one top-level part of the guide.
type GuideSection struct {
	Part     int       `yaml:"part" json:"part"`
	Title    string    `yaml:"title" json:"title"`
	Pages    string    `yaml:"pages" json:"pages"`
	Tier     string    `yaml:"tier" json:"tier"`
	Chapters []Chapter `yaml:"chapters" json:"chapters"`
}

// Guide is the complete read-only input of one generation run.
type Guide struct {
	Sections []GuideSection           `yaml:"sections" json:"sections"`
	Content  map[string]ChapterContent `yaml:"content" json:"content"`
}

// Renderer converts a guide into a final output format.
type Renderer interface {
	Render(guide *Guide) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ExtractedChapter is one chapter pulled out of an HTML help page, still
// holding HTML fragments.
type ExtractedChapter struct {
	Title   string
	Mockup  string
	Body    string
	Bullets []string
	Steps   []ExtractedStep
	ProTip  string
}

// ExtractedStep is a step whose description is still an HTML fragment.
type ExtractedStep struct {
	Title       string
	Description string
}

// Extractor pulls chapters out of raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) ([]ExtractedChapter, error)
}

// Normalizer converts an HTML fragment into plain display text.
type Normalizer interface {
	Normalize(html string) (string, error)
}
