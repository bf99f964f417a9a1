package layout

import "strconv"

// BodyOptions tunes WriteBody. Zero values select the defaults.
type BodyOptions struct {
	FontSize float64
	Color    RGB
	Indent   float64
}

const defaultBodySize = 10.0

// TierColor maps an audience tier to its badge colour.
func TierColor(tier string) RGB {
	switch tier {
	case "Beginner":
		return Emerald
	case "Intermediate":
		return Amber
	case "Professional":
		return Purple
	default:
		return Gray
	}
}

// DrawHeader paints the brand bar with the page number and writes title
// beneath it.
func (d *Doc) DrawHeader(title string, pageNumber int) {
	d.Fill(Dark)
	d.pdf.Rect(0, 0, pageWidth, HeaderHeight, "F")

	d.Font("B", 10)
	d.Ink(White)
	d.Text(Margin, 9, d.Brand.Label)
	d.Font("", 9)
	d.RightText(pageWidth-Margin, 9, "Page "+strconv.Itoa(pageNumber))

	d.Font("B", 9)
	d.Ink(AmberDark)
	d.Text(Margin, HeaderHeight+8, title)
	d.Reset()
}

// DrawFooter paints the two brand lines above the bottom margin.
func (d *Doc) DrawFooter() {
	d.Font("", 7)
	d.Ink(Gray)
	d.CenterText(pageWidth/2, pageHeight-14, d.Brand.Name+" "+d.Brand.Subtitle)
	d.CenterText(pageWidth/2, pageHeight-10, d.Brand.URL)
	d.Reset()
}

// TierBadgeWidth is the fixed width of a tier badge.
const TierBadgeWidth = 28.0

// DrawTierBadge paints a rounded tier label with its top-left corner at (x, y).
func (d *Doc) DrawTierBadge(tier string, x, y float64) {
	d.Fill(TierColor(tier))
	d.RoundedRect(x, y, TierBadgeWidth, 6, 1.5, "F")
	d.Font("B", 7)
	d.Ink(White)
	d.CenterText(x+TierBadgeWidth/2, y+4.2, tier)
	d.Reset()
}

// DrawDivider draws a rule across the content width at y.
func (d *Doc) DrawDivider(y float64) {
	d.Stroke(LightGray)
	d.pdf.SetLineWidth(0.3)
	d.pdf.Line(Margin, y, pageWidth-Margin, y)
	d.Reset()
}

// DrawProTip paints the tinted callout box at y and returns the cursor below
// it.
func (d *Doc) DrawProTip(text string, y float64) float64 {
	w := d.ContentWidth()
	d.Fill(AmberTint)
	d.Stroke(Amber)
	d.pdf.SetLineWidth(0.4)
	d.RoundedRect(Margin, y, w, ProTipHeight, 2, "DF")

	d.Font("B", 8)
	d.Ink(AmberDark)
	d.Text(Margin+4, y+6, "PRO TIP")

	d.Font("", 8)
	d.Ink(Slate)
	d.writeLines(Margin+4, y+11, 3.6, d.Wrap(text, w-8))
	d.Reset()
	return y + ProTipAdvance
}

// WriteBody word-wraps text to the content width less the indent and
// returns y advanced by lines × (fontSize×0.45 + 1).
func (d *Doc) WriteBody(text string, y float64, opt BodyOptions) float64 {
	size := opt.FontSize
	if size == 0 {
		size = defaultBodySize
	}
	pitch := size*0.45 + 1

	d.Font("", size)
	d.Ink(opt.Color)
	lines := d.Wrap(text, d.ContentWidth()-opt.Indent)
	d.writeLines(Margin+opt.Indent, y, pitch, lines)
	d.Reset()
	return y + float64(len(lines))*pitch
}

// WriteSubheading writes a bold heading line and returns the cursor below it.
func (d *Doc) WriteSubheading(text string, y float64) float64 {
	d.Font("B", 11)
	d.Ink(Dark)
	d.Text(Margin, y, text)
	d.Reset()
	return y + 6
}

// WriteBulletList writes each item behind a round bullet. Continuation lines
// of a wrapped item sit BulletPitch below the previous line.
func (d *Doc) WriteBulletList(items []string, y float64) float64 {
	if len(items) == 0 {
		return y + BulletPitch
	}
	d.Font("", 9)
	for _, item := range items {
		d.Fill(Amber)
		d.pdf.Circle(Margin+2, y-1.1, 0.9, "F")

		d.Ink(Slate)
		lines := d.Wrap(item, d.ContentWidth()-6)
		d.writeLines(Margin+6, y, BulletPitch, lines)
		y += float64(len(lines))*BulletPitch + 1
	}
	d.Reset()
	return y
}

// WriteNumberedStep paints a numbered circle, the step title and its
// wrapped description, returning y + 6 + lines×StepPitch.
func (d *Doc) WriteNumberedStep(n int, title, description string, y float64) float64 {
	d.Fill(Amber)
	d.pdf.Circle(Margin+3, y, 3, "F")
	d.Font("B", 8)
	d.Ink(White)
	d.CenterText(Margin+3, y+1, strconv.Itoa(n))

	d.Font("B", 9.5)
	d.Ink(Dark)
	d.Text(Margin+9, y+1, title)

	var lines []string
	if description != "" {
		d.Font("", 8.5)
		d.Ink(Gray)
		lines = d.Wrap(description, d.ContentWidth()-9)
		d.writeLines(Margin+9, y+6, StepPitch, lines)
	}
	d.Reset()
	return y + 6 + float64(len(lines))*StepPitch
}
