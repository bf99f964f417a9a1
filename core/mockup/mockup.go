// Package mockup draws the fixed illustrative diagrams shown on chapter
// pages. Each diagram is drawn from primitive shapes scaled to the box it
// is given; none of them keep state.
package mockup

import (
	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/layout"
)

// Kinds lists every drawable diagram.
func Kinds() []core.MockupKind {
	return []core.MockupKind{
		core.MockupPlayer, core.MockupGrid, core.MockupPlatforms, core.MockupAI,
		core.MockupProtection, core.MockupAnalytics, core.MockupLive, core.MockupHierarchy,
	}
}

// Draw renders kind into the box at (x, y) of size w×h.
// MockupNone and unknown kinds draw nothing.
func Draw(d *layout.Doc, kind core.MockupKind, x, y, w, h float64) {
	switch kind {
	case core.MockupPlayer:
		player(d, x, y, w, h)
	case core.MockupGrid:
		grid(d, x, y, w, h)
	case core.MockupPlatforms:
		platforms(d, x, y, w, h)
	case core.MockupAI:
		aiPanel(d, x, y, w, h)
	case core.MockupProtection:
		protection(d, x, y, w, h)
	case core.MockupAnalytics:
		analytics(d, x, y, w, h)
	case core.MockupLive:
		live(d, x, y, w, h)
	case core.MockupHierarchy:
		hierarchy(d, x, y, w, h)
	case core.MockupNone:
	}
	d.Reset()
}

// playIcon draws a right-pointing triangle centred on (cx, cy).
func playIcon(d *layout.Doc, cx, cy, size float64) {
	d.Triangle(cx-size*0.4, cy-size/2, cx-size*0.4, cy+size/2, cx+size*0.6, cy, "F")
}

func player(d *layout.Doc, x, y, w, h float64) {
	c := d.Canvas()
	d.Fill(layout.Dark)
	d.RoundedRect(x, y, w, h, 3, "F")

	// play button
	d.Fill(layout.Amber)
	c.Circle(x+w/2, y+h/2-3, h*0.14, "F")
	d.Fill(layout.White)
	playIcon(d, x+w/2, y+h/2-3, h*0.12)

	// control bar and progress
	barY := y + h - 8
	d.Fill(layout.Slate)
	c.Rect(x+6, barY, w-12, 1.6, "F")
	d.Fill(layout.Amber)
	c.Rect(x+6, barY, (w-12)*0.35, 1.6, "F")
	c.Circle(x+6+(w-12)*0.35, barY+0.8, 1.5, "F")
}

func grid(d *layout.Doc, x, y, w, h float64) {
	const cols, rows, gap = 3, 2, 4.0
	c := d.Canvas()
	cw := (w - gap*(cols-1)) / cols
	ch := (h - gap*(rows-1)) / rows
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			cx := x + float64(col)*(cw+gap)
			cy := y + float64(r)*(ch+gap)
			d.Fill(layout.Slate)
			d.RoundedRect(cx, cy, cw, ch, 2, "F")
			d.Fill(layout.White)
			c.SetAlpha(0.85, "Normal")
			playIcon(d, cx+cw/2, cy+ch/2, ch*0.25)
			c.SetAlpha(1, "Normal")
		}
	}
}

// platformBadges are the initials and colours of supported sources.
var platformBadges = []struct {
	initial string
	color   layout.RGB
}{
	{"Y", layout.Red},
	{"V", layout.Blue},
	{"S", layout.Amber},
	{"D", layout.Purple},
	{"G", layout.Emerald},
}

func platforms(d *layout.Doc, x, y, w, h float64) {
	const size, gap = 16.0, 8.0
	c := d.Canvas()
	total := float64(len(platformBadges))*size + float64(len(platformBadges)-1)*gap
	startX := x + (w-total)/2
	cy := y + h/2
	for i, p := range platformBadges {
		bx := startX + float64(i)*(size+gap)
		d.Fill(p.color)
		c.Circle(bx+size/2, cy, size/2, "F")
		d.Font("B", 12)
		d.Ink(layout.White)
		d.CenterText(bx+size/2, cy+1.6, p.initial)
	}
}

func aiPanel(d *layout.Doc, x, y, w, h float64) {
	d.Fill(layout.Purple)
	d.RoundedRect(x, y, w, h, 3, "F")

	d.Font("B", 9)
	d.Ink(layout.White)
	d.Text(x+6, y+8, "AI Thumbnail Generator")

	// prompt input
	d.Fill(layout.White)
	d.RoundedRect(x+6, y+h*0.4, w*0.65, h*0.3, 1.5, "F")
	d.Font("", 7)
	d.Ink(layout.Gray)
	d.Text(x+9, y+h*0.4+h*0.19, "Describe your thumbnail...")

	// generate button
	d.Fill(layout.Amber)
	d.RoundedRect(x+w*0.65+10, y+h*0.4, w*0.35-16, h*0.3, 1.5, "F")
	d.Font("B", 7)
	d.Ink(layout.White)
	d.CenterText(x+w*0.65+10+(w*0.35-16)/2, y+h*0.4+h*0.19, "Generate")
}

var protectionRows = []struct {
	label string
	on    bool
}{
	{"Watermark", true},
	{"DRM Protection", true},
	{"Password Gate", false},
}

func protection(d *layout.Doc, x, y, w, h float64) {
	c := d.Canvas()
	d.Stroke(layout.LightGray)
	c.SetLineWidth(0.4)
	d.RoundedRect(x, y, w, h, 3, "D")

	rowH := h / float64(len(protectionRows))
	for i, row := range protectionRows {
		ry := y + float64(i)*rowH
		d.Font("", 9)
		d.Ink(layout.Slate)
		d.Text(x+8, ry+rowH/2+1.5, row.label)

		// toggle track and knob
		tx := x + w - 26
		ty := ry + rowH/2 - 3
		knobX := tx + 3
		if row.on {
			d.Fill(layout.Emerald)
			knobX = tx + 11
		} else {
			d.Fill(layout.LightGray)
		}
		d.RoundedRect(tx, ty, 14, 6, 3, "F")
		d.Fill(layout.White)
		c.Circle(knobX, ty+3, 2.3, "F")

		if i > 0 {
			d.Stroke(layout.LightGray)
			c.Line(x+4, ry, x+w-4, ry)
		}
	}
}

// BarHeights are the relative heights of the weekly analytics chart.
var BarHeights = []float64{0.6, 0.8, 0.5, 0.9, 0.7, 0.4, 0.75}

var weekdays = []string{"M", "T", "W", "T", "F", "S", "S"}

func analytics(d *layout.Doc, x, y, w, h float64) {
	c := d.Canvas()
	d.Fill(layout.Dark)
	d.RoundedRect(x, y, w, h, 3, "F")

	chartTop := y + 6
	chartH := h - 14
	slot := (w - 16) / float64(len(BarHeights))
	barW := slot * 0.55
	base := chartTop + chartH
	d.Font("", 6)
	for i, rel := range BarHeights {
		bx := x + 8 + float64(i)*slot + (slot-barW)/2
		bh := chartH * rel
		d.Fill(layout.Amber)
		c.Rect(bx, base-bh, barW, bh, "F")
		d.Ink(layout.LightGray)
		d.CenterText(bx+barW/2, base+5, weekdays[i])
	}
}

func live(d *layout.Doc, x, y, w, h float64) {
	c := d.Canvas()
	mainW := w * 0.7
	sideX := x + mainW + 3
	sideW := w - mainW - 3

	// main stage
	d.Fill(layout.Dark)
	d.RoundedRect(x, y, mainW, h, 3, "F")
	d.Fill(layout.Red)
	d.RoundedRect(x+4, y+4, 14, 6, 1.5, "F")
	d.Font("B", 7)
	d.Ink(layout.White)
	d.CenterText(x+11, y+8.2, "LIVE")
	d.Fill(layout.Slate)
	c.Circle(x+mainW/2, y+h/2, h*0.18, "F")

	// guest panel
	guestH := (h - 6) / 3
	for i := 0; i < 3; i++ {
		gy := y + float64(i)*(guestH+3)
		d.Fill(layout.Slate)
		d.RoundedRect(sideX, gy, sideW, guestH, 2, "F")
		d.Fill(layout.Gray)
		c.Circle(sideX+sideW/2, gy+guestH/2, guestH*0.25, "F")
	}
}

func hierarchy(d *layout.Doc, x, y, w, h float64) {
	c := d.Canvas()
	nodeW := w * 0.26
	nodeH := h * 0.26

	// parent
	px := x + (w-nodeW)/2
	d.Fill(layout.Amber)
	d.RoundedRect(px, y, nodeW, nodeH, 2, "F")
	d.Font("B", 8)
	d.Ink(layout.White)
	d.CenterText(px+nodeW/2, y+nodeH/2+1.2, "Channel")

	// connectors
	childY := y + h - nodeH
	midY := y + nodeH + (childY-y-nodeH)/2
	d.Stroke(layout.Gray)
	c.SetLineWidth(0.5)
	c.Line(x+w/2, y+nodeH, x+w/2, midY)

	gap := (w - 3*nodeW) / 2
	labels := []string{"Sub-channel", "Playlist", "Playlist"}
	for i, label := range labels {
		cx := x + float64(i)*(nodeW+gap)
		c.Line(cx+nodeW/2, midY, x+w/2, midY)
		c.Line(cx+nodeW/2, midY, cx+nodeW/2, childY)
		d.Fill(layout.Slate)
		d.RoundedRect(cx, childY, nodeW, nodeH, 2, "F")
		d.Font("", 7)
		d.Ink(layout.White)
		d.CenterText(cx+nodeW/2, childY+nodeH/2+1.2, label)
	}
}
