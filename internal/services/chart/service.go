package chart

import (
	"bytes"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ternarybob/aequitas/internal/models"
)

// Fixed visual styling matching the report design: blue close line over a
// translucent fill, orange/red/purple moving averages.
var (
	closeColor  = drawing.ColorFromHex("2980b9")
	fillColor   = drawing.ColorFromHex("3498db").WithAlpha(76)
	ma20Color   = drawing.ColorFromHex("ffa500")
	ma50Color   = drawing.ColorFromHex("ff0000")
	ma200Color  = drawing.ColorFromHex("800080")
	overlayDefs = []struct {
		window int
		color  drawing.Color
	}{
		{20, ma20Color},
		{50, ma50Color},
		{200, ma200Color},
	}
)

// Service renders price charts.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new chart service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Render produces the price-performance PNG for a close series: the raw
// series with 20/50-period SMA overlays, plus the 200-period SMA when the
// series has at least 200 points. Pure function from series to image bytes.
func (s *Service) Render(history models.PriceHistory, title string) ([]byte, error) {
	if len(history) < 2 {
		return nil, fmt.Errorf("chart: need at least 2 bars, got %d", len(history))
	}

	dates := history.Dates()
	closes := history.Closes()

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Close Price",
			XValues: dates,
			YValues: closes,
			Style: chart.Style{
				StrokeColor: closeColor,
				StrokeWidth: 2.0,
				FillColor:   fillColor,
			},
		},
	}

	for _, def := range overlayDefs {
		if len(closes) < def.window {
			// insufficient history: the overlay is omitted entirely
			continue
		}
		sma := SMA(closes, def.window)
		series = append(series, chart.TimeSeries{
			Name:    fmt.Sprintf("MA%d", def.window),
			XValues: dates[def.window-1:],
			YValues: sma[def.window-1:],
			Style: chart.Style{
				StrokeColor: def.color,
				StrokeWidth: 1.0,
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1275,
		Height: 675,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name: "Price (USD)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	s.logger.Debug().
		Int("bars", len(history)).
		Int("series", len(series)).
		Int("png_size", buf.Len()).
		Msg("price chart rendered")

	return buf.Bytes(), nil
}
