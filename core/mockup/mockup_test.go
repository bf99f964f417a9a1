package mockup

import (
	"testing"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
	"github.com/gaurav-prasanna/guidegen/core/layout/layouttest"
)

func TestDrawEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			rec := layouttest.New()
			d := layout.New(rec, layout.DefaultBrand())
			d.NewPage()
			Draw(d, kind, layout.Margin, 40, d.ContentWidth(), 45)
			if err := rec.Error(); err != nil {
				t.Fatalf("gofpdf error after drawing %s: %v", kind, err)
			}
			if r, g, b := rec.GetTextColor(); r != 0 || g != 0 || b != 0 {
				t.Errorf("text colour leaked: (%d,%d,%d)", r, g, b)
			}
		})
	}
}

func TestDrawLabels(t *testing.T) {
	tests := []struct {
		kind  core.MockupKind
		texts int
		has   string
	}{
		{core.MockupPlatforms, 5, "Y"},
		{core.MockupAnalytics, len(BarHeights), "W"},
		{core.MockupLive, 1, "LIVE"},
		{core.MockupHierarchy, 4, "Channel"},
		{core.MockupProtection, 3, "DRM Protection"},
		{core.MockupAI, 3, "Generate"},
		{core.MockupPlayer, 0, ""},
		{core.MockupGrid, 0, ""},
		{core.MockupNone, 0, ""},
		{core.MockupKind("carousel"), 0, ""},
	}
	for _, tt := range tests {
		rec := layouttest.New()
		d := layout.New(rec, layout.DefaultBrand())
		d.NewPage()
		Draw(d, tt.kind, 20, 40, 170, 45)
		if len(rec.Texts) != tt.texts {
			t.Errorf("%q wrote %d strings, want %d", tt.kind, len(rec.Texts), tt.texts)
		}
		if tt.has != "" && !rec.Has(1, tt.has) {
			t.Errorf("%q did not write %q", tt.kind, tt.has)
		}
	}
}

func TestKindsAreValid(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 8 {
		t.Fatalf("Kinds() has %d entries, want 8", len(kinds))
	}
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("%q is not a valid kind", k)
		}
	}
}
