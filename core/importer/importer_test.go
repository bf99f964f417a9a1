package importer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/content"
	"github.com/gaurav-prasanna/guidegen/core/extract"
	"github.com/gaurav-prasanna/guidegen/core/normalize"
)

type stubFetcher struct {
	html string
	err  error
}

func (f stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: f.html}, nil
}

const page = `<main>
<h2 data-mockup="live">🎥 Live Studio</h2>
<p>Go live with <strong>one click</strong>.</p>
<ol>
  <li><strong>Connect:</strong> Pick a camera.</li>
  <li>Share the link.</li>
</ol>
<blockquote>Test privately first.</blockquote>

<h2 data-mockup="hologram">Analytics</h2>
<p>See who watched.</p>
<ul><li>Watch <em>time</em></li><li>Drop-off</li></ul>

<h2>Live Studio</h2>
<p>A second copy.</p>

<h2>Billing</h2>
</main>`

func newPipeline(html string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		Fetcher:    stubFetcher{html: html},
		Extractor:  extract.New(),
		Normalizer: normalize.New(),
		Log:        log,
	}
}

func TestRun(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	g, err := newPipeline(page, zap.New(obs)).Run(context.Background(), "help.html", DefaultOptions())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(g.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(g.Sections))
	}
	s := g.Sections[0]
	if s.Part != 1 || s.Title != "Imported" || s.Tier != "All" {
		t.Errorf("section header = %+v", s)
	}

	wantPages := []struct{ title, page string }{
		{"🎥 Live Studio", "3-4"},
		{"Analytics", "5"},
		{"Live Studio", "6"},
		{"Billing", "7"},
	}
	if len(s.Chapters) != len(wantPages) {
		t.Fatalf("chapters = %+v", s.Chapters)
	}
	for i, w := range wantPages {
		if s.Chapters[i].Title != w.title || s.Chapters[i].Page != w.page {
			t.Errorf("chapter %d = %q p.%s, want %q p.%s", i, s.Chapters[i].Title, s.Chapters[i].Page, w.title, w.page)
		}
	}
	if s.Pages != "3-7" {
		t.Errorf("section pages = %q, want 3-7", s.Pages)
	}

	live := g.Content["🎥 Live Studio"]
	if live.BodyText != "Go live with one click." || live.Mockup != core.MockupLive {
		t.Errorf("live content = %+v", live)
	}
	wantSteps := []core.Step{{Title: "Connect", Description: "Pick a camera."}, {Title: "Step 2", Description: "Share the link."}}
	if len(live.Steps) != 2 || live.Steps[0] != wantSteps[0] || live.Steps[1] != wantSteps[1] {
		t.Errorf("steps = %+v", live.Steps)
	}
	if live.ProTip != "Test privately first." {
		t.Errorf("pro tip = %q", live.ProTip)
	}

	an := g.Content["Analytics"]
	if an.Mockup != core.MockupNone {
		t.Errorf("unknown mockup kept: %q", an.Mockup)
	}
	if len(an.Bullets) != 2 || an.Bullets[0] != "Watch time" {
		t.Errorf("bullets = %v", an.Bullets)
	}

	if logs.FilterMessage("Dropping unknown mockup").Len() != 1 {
		t.Error("unknown mockup not logged")
	}
	if logs.FilterMessage("Chapter has no body paragraph").Len() != 1 {
		t.Error("empty body not logged")
	}
}

func TestRunOutputRoundTrips(t *testing.T) {
	g, err := newPipeline(page, nil).Run(context.Background(), "help.html", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	data, err := content.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := content.Parse(data)
	if err != nil {
		t.Fatalf("imported YAML does not parse: %v\n%s", err, data)
	}
	if len(back.Content) != len(g.Content) || len(back.Sections[0].Chapters) != 4 {
		t.Errorf("round trip lost chapters: %+v", back)
	}
}

func TestRunErrors(t *testing.T) {
	fetchErr := errors.New("connection refused")
	p := newPipeline("", nil)
	p.Fetcher = stubFetcher{err: fetchErr}
	if _, err := p.Run(context.Background(), "https://x", DefaultOptions()); !errors.Is(err, fetchErr) {
		t.Errorf("Run() error = %v, want wrapped fetch error", err)
	}

	if _, err := newPipeline("<p>no headings</p>", nil).Run(context.Background(), "x", DefaultOptions()); err == nil {
		t.Error("expected an error for a page without chapters")
	}
}

type siteFetcher map[string]string

func (s siteFetcher) Fetch(_ context.Context, u string) (*core.FetchResult, error) {
	html, ok := s[u]
	if !ok {
		return nil, errors.New("not found")
	}
	return &core.FetchResult{URL: u, StatusCode: 200, HTML: html}, nil
}

func TestRunAll(t *testing.T) {
	site := siteFetcher{
		"https://docs.embedpro.app/help": `<h1>Getting Started</h1>
			<a href="/help/live">Live</a><a href="/help/faq">FAQ</a>
			<h2>Dashboard</h2><p>Your home base.</p>`,
		"https://docs.embedpro.app/help/live": `<title>Going Live</title>
			<h2>Live Studio</h2><p>Stream it.</p><ol><li><strong>Connect</strong> a camera.</li></ol>
			<h2>Dashboard</h2><p>Repeated.</p>`,
		"https://docs.embedpro.app/help/faq": `<p>No chapters here.</p>`,
	}
	obs, logs := observer.New(zap.WarnLevel)
	p := newPipeline("", zap.New(obs))
	p.Fetcher = site

	g, err := p.RunAll(context.Background(), "https://docs.embedpro.app/help", Options{Part: 2, Title: "Help", Tier: "Pro"}, 10)
	if err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}
	if len(g.Sections) != 2 {
		t.Fatalf("sections = %+v", g.Sections)
	}
	first, second := g.Sections[0], g.Sections[1]
	if first.Part != 2 || first.Title != "Getting Started" || first.Pages != "3-3" {
		t.Errorf("first section = %+v", first)
	}
	if second.Part != 3 || second.Title != "Going Live" || second.Pages != "4-5" || second.Tier != "Pro" {
		t.Errorf("second section = %+v", second)
	}
	if len(second.Chapters) != 1 || second.Chapters[0].Page != "4-5" {
		t.Errorf("duplicate chapter not skipped: %+v", second.Chapters)
	}
	if g.Content["Dashboard"].BodyText != "Your home base." {
		t.Errorf("first occurrence should win, got %+v", g.Content["Dashboard"])
	}
	if err := content.Validate(g); err != nil {
		t.Errorf("crawled guide does not validate: %v", err)
	}
	if logs.FilterMessage("Skipping page without chapters").Len() != 1 {
		t.Error("chapterless page not logged")
	}
	if logs.FilterMessage("Skipping duplicate chapter").Len() != 1 {
		t.Error("duplicate chapter not logged")
	}
}

func TestProTipGetsSecondPage(t *testing.T) {
	html := `<h2>Watermarks</h2><p>Body.</p><ul><li>One</li></ul><blockquote>Use a subtle opacity.</blockquote>
<h2>Exports</h2><p>Download.</p>`
	g, err := newPipeline(html, nil).Run(context.Background(), "help.html", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	chapters := g.Sections[0].Chapters
	if chapters[0].Page != "3-4" {
		t.Errorf("Watermarks page = %q, want 3-4", chapters[0].Page)
	}
	if chapters[1].Page != "5" {
		t.Errorf("Exports page = %q, want 5", chapters[1].Page)
	}
	if g.Content["Watermarks"].ProTip != "Use a subtle opacity." {
		t.Errorf("pro tip = %q", g.Content["Watermarks"].ProTip)
	}
}
