// Package layout provides the drawing primitives the guide is built from.
// Every primitive that flows content takes the current vertical cursor (mm
// from the page top) and returns the advanced cursor; nothing here keeps
// layout state between calls.
package layout

import (
	"math"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry, A4 portrait in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	Margin       = 20.0
	HeaderHeight = 14.0

	// OverflowY is the cursor position past which no further same-page
	// content is started.
	OverflowY = 260.0

	ProTipHeight  = 18.0
	ProTipAdvance = ProTipHeight + 4

	BulletPitch = 5.0
	StepPitch   = 4.5
)

const fontFamily = "Helvetica"

// Canvas is the subset of *gofpdf.Fpdf the guide draws with.
type Canvas interface {
	AddPage()
	PageNo() int
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	SetAlpha(alpha float64, blendModeStr string)
	Text(x, y float64, txtStr string)
	GetStringWidth(s string) float64
	SplitLines(txt []byte, w float64) [][]byte
	Rect(x, y, w, h float64, styleStr string)
	Circle(x, y, r float64, styleStr string)
	Polygon(points []gofpdf.PointType, styleStr string)
	Line(x1, y1, x2, y2 float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y float64)
	ClosePath()
	DrawPath(styleStr string)
	UnicodeTranslatorFromDescriptor(cpStr string) (rep func(string) string)
}

// RGB is a colour in 0-255 components.
type RGB struct{ R, G, B int }

// Palette.
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	Dark      = RGB{15, 23, 42}
	Slate     = RGB{51, 65, 85}
	Gray      = RGB{107, 114, 128}
	LightGray = RGB{229, 231, 235}
	Amber     = RGB{245, 158, 11}
	AmberDark = RGB{217, 119, 6}
	AmberTint = RGB{255, 251, 235}
	Emerald   = RGB{16, 185, 129}
	Purple    = RGB{139, 92, 246}
	Red       = RGB{239, 68, 68}
	Blue      = RGB{59, 130, 246}
)

// Brand holds the constant strings painted in page chrome.
type Brand struct {
	Label    string // header bar, left
	Name     string
	Subtitle string
	Monogram string // cover logo badge
	Tagline  string
	URL      string
	Version  string
}

// DefaultBrand returns the stock Embed Pro branding.
func DefaultBrand() Brand {
	return Brand{
		Label:    "EMBED PRO",
		Name:     "Embed Pro",
		Subtitle: "User Guide",
		Monogram: "EP",
		Tagline:  "Embed, protect and monetize your content",
		URL:      "www.embedpro.app",
		Version:  "Version 1.0",
	}
}

// Doc couples a canvas with the brand strings and the code page translator
// for the core fonts.
type Doc struct {
	pdf   Canvas
	tr    func(string) string
	Brand Brand
}

// New prepares pdf for drawing.
func New(pdf Canvas, brand Brand) *Doc {
	return &Doc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		Brand: brand,
	}
}

// Canvas exposes the underlying canvas for shape drawing.
func (d *Doc) Canvas() Canvas {
	return d.pdf
}

// PageWidth returns the physical page width.
func (d *Doc) PageWidth() float64 { return pageWidth }

// PageHeight returns the physical page height.
func (d *Doc) PageHeight() float64 { return pageHeight }

// ContentWidth is the page width less both margins.
func (d *Doc) ContentWidth() float64 { return pageWidth - 2*Margin }

// NewPage starts a new physical page.
func (d *Doc) NewPage() {
	d.pdf.AddPage()
}

// PageNo returns the number of the current physical page.
func (d *Doc) PageNo() int {
	return d.pdf.PageNo()
}

// Fill sets the fill colour.
func (d *Doc) Fill(c RGB) { d.pdf.SetFillColor(c.R, c.G, c.B) }

// Stroke sets the draw colour.
func (d *Doc) Stroke(c RGB) { d.pdf.SetDrawColor(c.R, c.G, c.B) }

// Ink sets the text colour.
func (d *Doc) Ink(c RGB) { d.pdf.SetTextColor(c.R, c.G, c.B) }

// Font selects the guide font family in the given style and size.
func (d *Doc) Font(style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
}

// Reset restores the default text, draw and line state.
func (d *Doc) Reset() {
	d.Ink(Black)
	d.Stroke(Black)
	d.pdf.SetLineWidth(0.2)
}

// prepare makes s safe for the core fonts.
func (d *Doc) prepare(s string) string {
	return d.tr(core.StripEmojis(s))
}

// Text writes s with its baseline starting at (x, y).
func (d *Doc) Text(x, y float64, s string) {
	d.pdf.Text(x, y, d.prepare(s))
}

// CenterText writes s centred horizontally on cx.
func (d *Doc) CenterText(cx, y float64, s string) {
	s = d.prepare(s)
	d.pdf.Text(cx-d.pdf.GetStringWidth(s)/2, y, s)
}

// RightText writes s so that it ends at x.
func (d *Doc) RightText(x, y float64, s string) {
	s = d.prepare(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s), y, s)
}

// StringWidth measures s in the current font.
func (d *Doc) StringWidth(s string) float64 {
	return d.pdf.GetStringWidth(d.prepare(s))
}

// Wrap splits s into lines no wider than w in the current font. The result
// is already translated and is written with writeLines. An empty string
// still occupies one line.
func (d *Doc) Wrap(s string, w float64) []string {
	raw := d.pdf.SplitLines([]byte(d.prepare(s)), w)
	if len(raw) == 0 {
		return []string{""}
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	return lines
}

func (d *Doc) writeLines(x, y, pitch float64, lines []string) {
	for i, l := range lines {
		d.pdf.Text(x, y+float64(i)*pitch, l)
	}
}

// RoundedRect draws a rectangle with corners of radius r.
// style is "D", "F" or "DF" as in gofpdf.
func (d *Doc) RoundedRect(x, y, w, h, r float64, style string) {
	r = math.Min(r, math.Min(w, h)/2)
	// Cubic bezier approximation of a quarter circle.
	k := r * 0.5523
	p := d.pdf
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveBezierCubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveBezierCubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveBezierCubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveBezierCubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
	p.DrawPath(style)
}

// Triangle fills the triangle through three points.
func (d *Doc) Triangle(x1, y1, x2, y2, x3, y3 float64, style string) {
	d.pdf.Polygon([]gofpdf.PointType{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}, style)
}
