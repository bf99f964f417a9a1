// Package layouttest provides a recording canvas for layout tests.
package layouttest

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// TextCall is one captured Text invocation.
type TextCall struct {
	Page int
	X, Y float64
	Text string
}

// Recorder is a real gofpdf document that also remembers every string
// written with Text.
type Recorder struct {
	*gofpdf.Fpdf
	Texts []TextCall
}

// New returns an A4 recorder with automatic page breaks disabled.
func New() *Recorder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return &Recorder{Fpdf: pdf}
}

// Text records the call and forwards it to the document.
func (r *Recorder) Text(x, y float64, s string) {
	r.Texts = append(r.Texts, TextCall{Page: r.Fpdf.PageNo(), X: x, Y: y, Text: s})
	r.Fpdf.Text(x, y, s)
}

// OnPage returns the text calls made on the given page.
func (r *Recorder) OnPage(page int) []TextCall {
	var out []TextCall
	for _, t := range r.Texts {
		if t.Page == page {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the first call on page whose text contains substr.
func (r *Recorder) Find(page int, substr string) (TextCall, bool) {
	for _, t := range r.OnPage(page) {
		if strings.Contains(t.Text, substr) {
			return t, true
		}
	}
	return TextCall{}, false
}

// Has reports whether any text on page contains substr.
func (r *Recorder) Has(page int, substr string) bool {
	_, ok := r.Find(page, substr)
	return ok
}

// Joined concatenates all text written on page.
func (r *Recorder) Joined(page int) string {
	var b strings.Builder
	for _, t := range r.OnPage(page) {
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
