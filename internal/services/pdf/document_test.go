package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/aequitas/internal/models"
)

func testMeta() models.ReportMeta {
	return models.ReportMeta{
		ID:          "rpt_test",
		Ticker:      "LLY",
		CompanyName: "Eli Lilly and Company",
		Exchange:    "NYSE",
		Rating:      "BUY",
		GeneratedAt: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestDocumentOutput(t *testing.T) {
	doc := NewDocument(testMeta())
	doc.AddPage()
	doc.SectionTitle("EXECUTIVE SUMMARY")
	doc.SubsectionTitle("Investment Thesis")
	require.NoError(t, doc.Body("Plain paragraph with **bold** and *italic* runs.\n\n- first point\n- second point"))
	doc.Footnote("Sources: test fixture")

	doc.Table(Table{
		Widths:   []float64{50, 60, 60},
		Header:   []string{"Year", "Total Revenue ($B)", "YoY Growth"},
		Rows:     [][]string{{"2024E", "45.0", "32%"}, {"2025E", "57.6", "28%"}},
		Centered: true,
	})

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with the PDF magic")
	assert.Greater(t, buf.Len(), 1000)
}

func TestDocumentMultiPage(t *testing.T) {
	doc := NewDocument(testMeta())
	for i := 0; i < 3; i++ {
		doc.AddPage()
		doc.SectionTitle("SECTION")
		require.NoError(t, doc.Body("Body text."))
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	assert.Greater(t, buf.Len(), 1000)
}

func TestDocumentImageRejectsEmpty(t *testing.T) {
	doc := NewDocument(testMeta())
	doc.AddPage()
	assert.Error(t, doc.Image(nil, "chart", 180))
}

func TestStyleImmutability(t *testing.T) {
	base := DefaultStyle()
	derived := base.WithBold(true).WithSize(16).WithText(Positive)

	assert.False(t, base.Bold)
	assert.InDelta(t, 10, base.Size, 0.001)
	assert.True(t, derived.Bold)
	assert.InDelta(t, 16, derived.Size, 0.001)
	assert.Equal(t, RGB{0, 150, 0}, derived.Text)
}

func TestStyleFontStyle(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"regular", DefaultStyle(), ""},
		{"bold", DefaultStyle().WithBold(true), "B"},
		{"italic", DefaultStyle().WithItalic(true), "I"},
		{"bold italic", DefaultStyle().WithBold(true).WithItalic(true), "BI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.fontStyle())
		})
	}
}
