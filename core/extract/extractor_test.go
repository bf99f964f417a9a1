package extract

import (
	"strings"
	"testing"
)

const helpPage = `<html><head><script>track()</script></head><body>
<nav><a href="/">Home</a></nav>
<main>
  <h1>Embed Pro Help</h1>
  <h2 data-mockup="live">🎥 Live Studio</h2>
  <p>Go live to your audience with <strong>one click</strong>.</p>
  <ol>
    <li><strong>Connect a source:</strong> Pick a camera or an RTMP encoder.</li>
    <li><b>Go live</b> Press the red button.</li>
    <li>Share the link.</li>
  </ol>
  <blockquote><p>Test your stream privately first.</p></blockquote>

  <h2>Analytics</h2>
  <div class="intro" data-mockup="analytics"><p>See who watched and for how long.</p></div>
  <ul><li>Watch time</li><li>Drop-off <em>points</em></li></ul>
  <div class="pro-tip">Export reports as CSV.</div>

  <h2>Empty Chapter</h2>
</main>
<footer>© Embed Pro</footer>
</body></html>`

func TestExtractChapters(t *testing.T) {
	chapters, err := New().Extract(helpPage)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(chapters) != 3 {
		t.Fatalf("chapters = %d, want 3", len(chapters))
	}

	live := chapters[0]
	if live.Title != "🎥 Live Studio" || live.Mockup != "live" {
		t.Errorf("live chapter header = %q / %q", live.Title, live.Mockup)
	}
	if !strings.Contains(live.Body, "<strong>one click</strong>") {
		t.Errorf("body = %q", live.Body)
	}
	if len(live.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(live.Steps))
	}
	if live.Steps[0].Title != "Connect a source" || live.Steps[0].Description != "Pick a camera or an RTMP encoder." {
		t.Errorf("step 1 = %+v", live.Steps[0])
	}
	if live.Steps[1].Title != "Go live" || live.Steps[1].Description != "Press the red button." {
		t.Errorf("step 2 = %+v", live.Steps[1])
	}
	if live.Steps[2].Title != "" || live.Steps[2].Description != "Share the link." {
		t.Errorf("step 3 = %+v", live.Steps[2])
	}
	if !strings.Contains(live.ProTip, "Test your stream privately first.") {
		t.Errorf("pro tip = %q", live.ProTip)
	}
	if len(live.Bullets) != 0 {
		t.Errorf("live chapter picked up bullets %v", live.Bullets)
	}

	an := chapters[1]
	if an.Mockup != "analytics" {
		t.Errorf("nested data-mockup not found, got %q", an.Mockup)
	}
	if an.Body != "See who watched and for how long." {
		t.Errorf("body = %q", an.Body)
	}
	if len(an.Bullets) != 2 || an.Bullets[1] != "Drop-off <em>points</em>" {
		t.Errorf("bullets = %v", an.Bullets)
	}
	if an.ProTip != "Export reports as CSV." {
		t.Errorf("pro tip = %q", an.ProTip)
	}

	empty := chapters[2]
	if empty.Body != "" || empty.ProTip != "" || len(empty.Steps) != 0 {
		t.Errorf("empty chapter = %+v", empty)
	}
}

func TestExtractRemovesNoise(t *testing.T) {
	chapters, err := New().Extract(`<body><h2>Setup</h2><nav><p>Menu</p></nav><p>Real body.</p></body>`)
	if err != nil {
		t.Fatal(err)
	}
	if chapters[0].Body != "Real body." {
		t.Errorf("body = %q", chapters[0].Body)
	}
}

func TestExtractWithoutHeadings(t *testing.T) {
	if _, err := New().Extract(`<html><body><p>Nothing here.</p></body></html>`); err == nil {
		t.Error("expected an error for a page without chapter headings")
	}
}
