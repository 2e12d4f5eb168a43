// Package pdf provides the report document primitives: an fpdf-backed
// document with header/footer, section and table helpers, and a goldmark
// renderer for markdown narrative bodies.
package pdf

import "github.com/go-pdf/fpdf"

// RGB is a plain 8-bit color.
type RGB struct {
	R, G, B int
}

var (
	colorBlack   = RGB{0, 0, 0}
	colorWhite   = RGB{255, 255, 255}
	colorGray    = RGB{100, 100, 100}
	colorBanner  = RGB{41, 128, 185}
	colorSection = RGB{236, 240, 241}

	// Positive is the text color for favorable figures, the rating line in
	// particular.
	Positive = RGB{0, 150, 0}
)

// Style is the explicit formatting context threaded through render calls.
// Methods return modified copies; nothing mutates shared state.
type Style struct {
	Font   string
	Size   float64
	Bold   bool
	Italic bool
	Text   RGB
	Fill   RGB
}

// DefaultStyle is the report body style.
func DefaultStyle() Style {
	return Style{
		Font: "Arial",
		Size: 10,
		Text: colorBlack,
		Fill: colorWhite,
	}
}

// WithSize returns the style with a new font size.
func (s Style) WithSize(size float64) Style {
	s.Size = size
	return s
}

// WithBold returns the style with bold toggled.
func (s Style) WithBold(bold bool) Style {
	s.Bold = bold
	return s
}

// WithItalic returns the style with italic toggled.
func (s Style) WithItalic(italic bool) Style {
	s.Italic = italic
	return s
}

// WithText returns the style with a new text color.
func (s Style) WithText(c RGB) Style {
	s.Text = c
	return s
}

// WithFill returns the style with a new fill color.
func (s Style) WithFill(c RGB) Style {
	s.Fill = c
	return s
}

func (s Style) fontStyle() string {
	style := ""
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	return style
}

// apply sets the fpdf state for this style. Callers always apply a style
// before writing, so the document never depends on leftover state.
func (s Style) apply(doc *fpdf.Fpdf) {
	doc.SetFont(s.Font, s.fontStyle(), s.Size)
	doc.SetTextColor(s.Text.R, s.Text.G, s.Text.B)
	doc.SetFillColor(s.Fill.R, s.Fill.G, s.Fill.B)
}
