// Package importer turns an HTML help page into a guide content table:
// fetch (or crawl) → extract → normalize → assemble.
package importer

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/crawl"
)

// firstPage is the label given to the first imported chapter: page 1 is the
// cover and page 2 the welcome page.
const firstPage = 3

// Options shape the imported section.
type Options struct {
	Part  int
	Title string
	Tier  string
}

// DefaultOptions returns the options used by the import command.
func DefaultOptions() Options {
	return Options{Part: 1, Title: "Imported", Tier: "All"}
}

// Pipeline wires the importer stages together.
type Pipeline struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Normalizer core.Normalizer
	Log        *zap.Logger
}

// Run fetches source and returns a guide with one section holding every
// chapter found on the page, plus a content entry per chapter.
func (p *Pipeline) Run(ctx context.Context, source string, opts Options) (*core.Guide, error) {
	result, err := p.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	b := p.newBuilder()
	if err := b.addSection(result.HTML, result.URL, opts); err != nil {
		return nil, err
	}
	return b.finish(result.URL)
}

// RunAll crawls the help center starting at startURL and returns a guide
// with one section per page that has chapters. Parts are numbered from
// opts.Part; each section is titled after its page heading.
func (p *Pipeline) RunAll(ctx context.Context, startURL string, opts Options, maxPages int) (*core.Guide, error) {
	pages, err := crawl.Discover(ctx, startURL, p.Fetcher, maxPages, p.logger())
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	b := p.newBuilder()
	part := opts.Part
	for _, page := range pages {
		sectionOpts := Options{Part: part, Title: page.Title, Tier: opts.Tier}
		if sectionOpts.Title == "" {
			sectionOpts.Title = opts.Title
		}
		if err := b.addSection(page.HTML, page.URL, sectionOpts); err != nil {
			b.log.Warn("Skipping page without chapters", zap.String("url", page.URL), zap.Error(err))
			continue
		}
		part++
	}
	return b.finish(startURL)
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

// builder accumulates sections and content while keeping page labels
// running across sections.
type builder struct {
	p     *Pipeline
	log   *zap.Logger
	guide *core.Guide
	page  int
}

func (p *Pipeline) newBuilder() *builder {
	return &builder{
		p:     p,
		log:   p.logger(),
		guide: &core.Guide{Content: map[string]core.ChapterContent{}},
		page:  firstPage,
	}
}

func (b *builder) addSection(html, source string, opts Options) error {
	extracted, err := b.p.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	section := core.GuideSection{Part: opts.Part, Title: opts.Title, Tier: opts.Tier}
	added := make(map[string]core.ChapterContent, len(extracted))
	page := b.page
	for _, ex := range extracted {
		if ex.Title == "" {
			b.log.Warn("Skipping chapter without a title", zap.String("source", source))
			continue
		}
		_, seen := b.guide.Content[ex.Title]
		if _, dup := added[ex.Title]; dup || seen {
			b.log.Warn("Skipping duplicate chapter", zap.String("title", ex.Title))
			continue
		}

		c, err := b.p.content(ex)
		if err != nil {
			return fmt.Errorf("normalize %q: %w", ex.Title, err)
		}
		if c.Mockup != core.MockupNone && !c.Mockup.Valid() {
			b.log.Warn("Dropping unknown mockup", zap.String("title", ex.Title), zap.String("mockup", string(c.Mockup)))
			c.Mockup = core.MockupNone
		}
		if c.BodyText == "" {
			b.log.Warn("Chapter has no body paragraph", zap.String("title", ex.Title))
		}

		ch := core.Chapter{Title: ex.Title, Tier: opts.Tier, Page: strconv.Itoa(page)}
		// Steps and the pro tip are drawn on a second page.
		if len(c.Steps) > 0 || c.ProTip != "" {
			ch.Page = fmt.Sprintf("%d-%d", page, page+1)
		}
		page += ch.PageCount()

		section.Chapters = append(section.Chapters, ch)
		added[ex.Title] = c
		b.log.Debug("Imported chapter", zap.String("title", ex.Title), zap.String("page", ch.Page),
			zap.Int("steps", len(c.Steps)), zap.Int("bullets", len(c.Bullets)))
	}
	if len(section.Chapters) == 0 {
		return fmt.Errorf("no usable chapters in %s", source)
	}

	section.Pages = fmt.Sprintf("%d-%d", b.page, page-1)
	b.guide.Sections = append(b.guide.Sections, section)
	for title, c := range added {
		b.guide.Content[title] = c
	}
	b.page = page
	return nil
}

func (b *builder) finish(source string) (*core.Guide, error) {
	if len(b.guide.Sections) == 0 {
		return nil, fmt.Errorf("no usable chapters in %s", source)
	}
	var chapters int
	for _, s := range b.guide.Sections {
		chapters += len(s.Chapters)
	}
	b.log.Info("Imported guide content", zap.String("source", source),
		zap.Int("sections", len(b.guide.Sections)), zap.Int("chapters", chapters))
	return b.guide, nil
}

func (p *Pipeline) content(ex core.ExtractedChapter) (core.ChapterContent, error) {
	var (
		c   = core.ChapterContent{Mockup: core.MockupKind(ex.Mockup)}
		err error
	)
	if c.BodyText, err = p.Normalizer.Normalize(ex.Body); err != nil {
		return c, err
	}
	if c.ProTip, err = p.Normalizer.Normalize(ex.ProTip); err != nil {
		return c, err
	}
	for _, b := range ex.Bullets {
		text, err := p.Normalizer.Normalize(b)
		if err != nil {
			return c, err
		}
		if text != "" {
			c.Bullets = append(c.Bullets, text)
		}
	}
	for i, s := range ex.Steps {
		desc, err := p.Normalizer.Normalize(s.Description)
		if err != nil {
			return c, err
		}
		title := s.Title
		if title == "" {
			title = "Step " + strconv.Itoa(i+1)
		}
		c.Steps = append(c.Steps, core.Step{Title: title, Description: desc})
	}
	return c, nil
}
