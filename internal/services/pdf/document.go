package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/ternarybob/aequitas/internal/models"
)

// Table is a fixed-column grid rendered row by row.
type Table struct {
	Widths   []float64 // column widths in mm
	Header   []string
	Rows     [][]string
	Aligns   []string // per-column alignment, "L"/"C"/"R"; defaults to "C"
	Centered bool     // center the table horizontally on the page
}

// Document is the report document being assembled. All drawing methods take
// their formatting from an explicit Style rather than ambient fpdf state.
type Document struct {
	pdf  *fpdf.Fpdf
	base Style
}

// pageWidth is the usable A4 width in mm.
const pageWidth = 210.0

// NewDocument creates the report document with the standard header banner,
// page-number footer, and metadata from the report run.
func NewDocument(meta models.ReportMeta) *Document {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 10, 10)
	doc.SetAutoPageBreak(true, 15)
	doc.SetTitle(fmt.Sprintf("%s (%s:%s) Equity Research Report", meta.CompanyName, meta.Exchange, meta.Ticker), false)
	doc.SetSubject(meta.ID, false)
	doc.SetCreator("aequitas", false)

	doc.SetHeaderFunc(func() {
		header := DefaultStyle().WithBold(true).WithSize(16).WithText(colorWhite).WithFill(colorBanner)
		header.apply(doc)
		doc.CellFormat(0, 10, "EQUITY RESEARCH REPORT", "", 1, "C", true, 0, "")
		doc.Ln(5)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		footer := DefaultStyle().WithItalic(true).WithSize(8).WithText(RGB{128, 128, 128})
		footer.apply(doc)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	return &Document{pdf: doc, base: DefaultStyle()}
}

// AddPage starts a new page.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// SectionTitle draws a filled section heading.
func (d *Document) SectionTitle(title string) {
	style := d.base.WithBold(true).WithSize(14).WithFill(colorSection)
	style.apply(d.pdf)
	d.pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	d.pdf.Ln(3)
}

// SubsectionTitle draws a bold subheading.
func (d *Document) SubsectionTitle(title string) {
	style := d.base.WithBold(true).WithSize(12)
	style.apply(d.pdf)
	d.pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

// Body renders a markdown narrative block at the base style.
func (d *Document) Body(markdown string) error {
	return renderMarkdown(d.pdf, d.base, markdown)
}

// Text writes a plain multi-line block with an explicit style.
func (d *Document) Text(text string, style Style) {
	style.apply(d.pdf)
	d.pdf.MultiCell(0, 5, text, "", "L", false)
	d.pdf.Ln(2)
}

// CenteredLine writes one centered line with an explicit style.
func (d *Document) CenteredLine(text string, height float64, style Style) {
	style.apply(d.pdf)
	d.pdf.CellFormat(0, height, text, "", 1, "C", false, 0, "")
}

// Line writes one left-aligned line with an explicit style.
func (d *Document) Line(text string, height float64, style Style) {
	style.apply(d.pdf)
	d.pdf.CellFormat(0, height, text, "", 1, "L", false, 0, "")
}

// Footnote writes a small gray italic source note.
func (d *Document) Footnote(text string) {
	style := d.base.WithItalic(true).WithSize(8).WithText(colorGray)
	style.apply(d.pdf)
	d.pdf.MultiCell(0, 4, text, "", "L", false)
	d.pdf.Ln(2)
}

// Spacer advances the cursor.
func (d *Document) Spacer(h float64) {
	d.pdf.Ln(h)
}

// Table renders a fixed-column grid. The header row is bold; every cell is
// bordered.
func (d *Document) Table(t Table) {
	startX := d.pdf.GetX()
	if t.Centered {
		total := 0.0
		for _, w := range t.Widths {
			total += w
		}
		startX = (pageWidth - total) / 2
	}

	align := func(col int) string {
		if col < len(t.Aligns) && t.Aligns[col] != "" {
			return t.Aligns[col]
		}
		return "C"
	}

	if len(t.Header) > 0 {
		style := d.base.WithBold(true).WithSize(9)
		style.apply(d.pdf)
		d.pdf.SetX(startX)
		for i, h := range t.Header {
			d.pdf.CellFormat(t.Widths[i], 7, h, "1", 0, align(i), false, 0, "")
		}
		d.pdf.Ln(-1)
	}

	style := d.base.WithSize(9)
	style.apply(d.pdf)
	for _, row := range t.Rows {
		d.pdf.SetX(startX)
		for i, cell := range row {
			d.pdf.CellFormat(t.Widths[i], 6, cell, "1", 0, align(i), false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(3)
}

// Image embeds a PNG at the current position, full usable width by default.
func (d *Document) Image(png []byte, name string, w float64) error {
	if len(png) == 0 {
		return fmt.Errorf("empty image %q", name)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	if d.pdf.Err() {
		return fmt.Errorf("failed to register image %q: %v", name, d.pdf.Error())
	}
	y := d.pdf.GetY()
	d.pdf.ImageOptions(name, 15, y, w, 0, false, opts, 0, "")
	if d.pdf.Err() {
		return fmt.Errorf("failed to place image %q: %v", name, d.pdf.Error())
	}
	d.pdf.SetY(y + 95)
	return nil
}

// Output serializes the document.
func (d *Document) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return nil
}
