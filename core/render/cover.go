package render

import (
	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
	"github.com/gaurav-prasanna/guidegen/core/mockup"
)

const gradientBands = 20

// drawCover paints the full-bleed cover. It has no header or footer.
func drawCover(d *layout.Doc) {
	c := d.Canvas()
	w, h := d.PageWidth(), d.PageHeight()
	cx := w / 2

	d.Fill(layout.Dark)
	c.Rect(0, 0, w, h, "F")

	// Faux vertical gradient: amber bands fading out towards the middle.
	bandH := h * 0.5 / gradientBands
	d.Fill(layout.Amber)
	for i := 0; i < gradientBands; i++ {
		c.SetAlpha(0.3*(1-float64(i)/gradientBands), "Normal")
		c.Rect(0, float64(i)*bandH, w, bandH+0.1, "F")
	}
	c.SetAlpha(1, "Normal")

	d.Fill(layout.Amber)
	c.Circle(cx, 95, 18, "F")
	d.Font("B", 22)
	d.Ink(layout.Dark)
	d.CenterText(cx, 102.5, d.Brand.Monogram)

	d.Font("B", 34)
	d.Ink(layout.White)
	d.CenterText(cx, 142, d.Brand.Name)
	d.Font("", 18)
	d.Ink(layout.Amber)
	d.CenterText(cx, 155, d.Brand.Subtitle)
	d.Font("I", 11)
	d.Ink(layout.LightGray)
	d.CenterText(cx, 168, d.Brand.Tagline)

	d.Font("", 9)
	d.Ink(layout.Gray)
	d.CenterText(cx, h-20, d.Brand.Version)
	d.Reset()
}

var welcomeParagraphs = []string{
	"Thank you for choosing Embed Pro. This guide walks you through everything " +
		"the platform can do, from pasting your first link to running ticketed live " +
		"events and reading your revenue reports.",
	"Each part builds on the previous one, but every chapter stands on its own. " +
		"Tier badges show who a chapter is written for, so you can skip straight " +
		"to the features that matter to you today.",
}

var welcomeBullets = []string{
	"Embed video, audio, documents and images from the platforms you already use",
	"Organize everything into channels, sub-channels and playlists",
	"Protect your work with watermarks, DRM and password gates",
	"Sell access with flexible pricing tiers and subscriptions",
	"Host live events with ticketing and guest speakers",
	"Understand your audience with built-in analytics",
}

// drawWelcome paints the static welcome page.
func drawWelcome(d *layout.Doc, page int) {
	d.DrawHeader("Welcome", page)
	y := drawPageTitle(d, "Welcome to "+d.Brand.Name)

	for _, p := range welcomeParagraphs {
		y = d.WriteBody(p, y, layout.BodyOptions{FontSize: 10, Color: layout.Slate}) + 4
	}
	y = d.WriteSubheading("What you can do", y+2) + 2
	y = d.WriteBulletList(welcomeBullets, y) + 4
	d.DrawDivider(y)
	y += 8
	mockup.Draw(d, core.MockupPlatforms, layout.Margin, y, d.ContentWidth(), 30)
	d.DrawFooter()
}

// drawPageTitle writes a large page title under the header and returns the
// cursor below it.
func drawPageTitle(d *layout.Doc, title string) float64 {
	d.Font("B", 18)
	d.Ink(layout.Dark)
	d.Text(layout.Margin, 34, title)
	d.Reset()
	return 46
}
