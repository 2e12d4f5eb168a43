package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// mdRenderer walks a goldmark AST and writes it into the document.
// Inline emphasis is tracked as style deltas on top of the base style, so the
// formatting context stays explicit through the walk.
type mdRenderer struct {
	pdf    *fpdf.Fpdf
	source []byte
	base   Style

	bold      bool
	italic    bool
	inList    bool
	listLevel int
}

// renderMarkdown renders a markdown block at the given base style.
// Headings, paragraphs, emphasis and lists are supported; the report renders
// tables and images through the dedicated Document methods.
func renderMarkdown(doc *fpdf.Fpdf, base Style, markdown string) error {
	source := []byte(markdown)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	r := &mdRenderer{pdf: doc, source: source, base: base}
	if err := ast.Walk(root, r.walk); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	return nil
}

func (r *mdRenderer) current() Style {
	s := r.base
	if r.bold {
		s = s.WithBold(true)
	}
	if r.italic {
		s = s.WithItalic(true)
	}
	return s
}

func (r *mdRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.Kind() {
	case ast.KindHeading:
		return r.handleHeading(n.(*ast.Heading), entering)
	case ast.KindParagraph:
		return r.handleParagraph(entering)
	case ast.KindText:
		return r.handleText(n.(*ast.Text), entering)
	case ast.KindEmphasis:
		return r.handleEmphasis(n.(*ast.Emphasis), entering)
	case ast.KindList:
		return r.handleList(entering)
	case ast.KindListItem:
		return r.handleListItem(entering)
	case ast.KindThematicBreak:
		if entering {
			r.pdf.Ln(2)
			r.pdf.Line(15, r.pdf.GetY(), 195, r.pdf.GetY())
			r.pdf.Ln(2)
		}
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleHeading(n *ast.Heading, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.pdf.Ln(4)
		size := 10.0
		switch n.Level {
		case 1:
			size = 14
		case 2:
			size = 12
		case 3:
			size = 11
		}
		r.base.WithBold(true).WithSize(size).apply(r.pdf)
	} else {
		r.pdf.Ln(6)
		r.current().apply(r.pdf)
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleParagraph(entering bool) (ast.WalkStatus, error) {
	if !entering {
		if r.inList {
			return ast.WalkContinue, nil
		}
		r.pdf.Ln(7)
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleText(n *ast.Text, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.current().apply(r.pdf)
		r.pdf.Write(5, string(n.Text(r.source)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			r.pdf.Write(5, " ")
		}
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleEmphasis(n *ast.Emphasis, entering bool) (ast.WalkStatus, error) {
	if n.Level == 2 {
		r.bold = entering
	} else {
		r.italic = entering
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleList(entering bool) (ast.WalkStatus, error) {
	if entering {
		r.inList = true
		r.listLevel++
	} else {
		r.listLevel--
		if r.listLevel == 0 {
			r.inList = false
			r.pdf.Ln(2)
		}
	}
	return ast.WalkContinue, nil
}

func (r *mdRenderer) handleListItem(entering bool) (ast.WalkStatus, error) {
	if entering {
		r.pdf.Ln(5)
		indent := float64(r.listLevel) * 5.0
		r.pdf.SetX(15 + indent)
		r.current().apply(r.pdf)
		r.pdf.Write(5, "- ")
	}
	return ast.WalkContinue, nil
}
