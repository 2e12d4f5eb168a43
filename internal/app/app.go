// Package app wires the services together and runs the report pipeline:
// fetch market data, evaluate the valuation model, render the price chart,
// compose and validate the PDF.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/common"
	"github.com/ternarybob/aequitas/internal/marketdata"
	"github.com/ternarybob/aequitas/internal/models"
	"github.com/ternarybob/aequitas/internal/services/chart"
	"github.com/ternarybob/aequitas/internal/services/fetcher"
	"github.com/ternarybob/aequitas/internal/services/pdf"
	"github.com/ternarybob/aequitas/internal/services/report"
	"github.com/ternarybob/aequitas/internal/services/valuation"
)

// App holds the configured services for one report run.
type App struct {
	Config    *common.Config
	Logger    arbor.ILogger
	Fetcher   *fetcher.Service
	Valuation *valuation.Service
	Chart     *chart.Service
	Report    *report.Service

	runID string
}

// New builds the application from configuration.
func New(config *common.Config, logger arbor.ILogger) *App {
	client := marketdata.NewClient(config.Provider.APIToken,
		marketdata.WithBaseURL(config.Provider.BaseURL),
		marketdata.WithHTTPClient(&http.Client{Timeout: config.ProviderTimeout()}),
		marketdata.WithLogger(logger),
		marketdata.WithRateLimit(config.Provider.RateLimit),
	)

	return &App{
		Config:    config,
		Logger:    logger,
		Fetcher:   fetcher.NewService(client, logger, config.Provider.HistoryYears),
		Valuation: valuation.NewService(logger),
		Chart:     chart.NewService(logger),
		Report:    report.NewService(logger),
		runID:     common.NewReportID(),
	}
}

// Run executes the full pipeline for the configured ticker and writes the
// report PDF (and the chart PNG when history is available) to disk.
func (a *App) Run(ctx context.Context) error {
	cfg := a.Config.Report
	primary := common.ParseTicker(cfg.Ticker)
	peers := common.ParseTickers(cfg.Peers)

	a.Logger.Info().
		Str("run_id", a.runID).
		Str("ticker", primary.String()).
		Int("peers", len(peers)).
		Msg("report run started")

	data := a.Fetcher.FetchAll(ctx, primary, cfg.CompanyName, peers)
	if data.UsedFallback {
		a.Logger.Warn().Str("run_id", a.runID).Msg("primary market data unavailable, report built from fallback values")
	}

	assumptions, err := valuation.LoadAssumptions(a.Config.Valuation.AssumptionsFile)
	if err != nil {
		return fmt.Errorf("failed to load valuation assumptions: %w", err)
	}

	result, err := a.Valuation.Evaluate(data.Primary, assumptions)
	if err != nil {
		return fmt.Errorf("valuation failed for %s: %w", primary.String(), err)
	}

	perf := valuation.Performance(data.History, time.Now())

	chartPNG := a.renderChart(data.History, cfg)

	meta := models.ReportMeta{
		ID:          a.runID,
		Ticker:      primary.Code,
		CompanyName: cfg.CompanyName,
		Exchange:    cfg.Exchange,
		Rating:      cfg.Rating,
		GeneratedAt: time.Now(),
	}

	doc, err := a.Report.Compose(report.Input{
		Meta:        meta,
		Data:        data,
		Valuation:   result,
		Performance: perf,
		Chart:       chartPNG,
	})
	if err != nil {
		return fmt.Errorf("report composition failed: %w", err)
	}

	if err := a.writePDF(doc, cfg.OutputPath); err != nil {
		return err
	}

	if err := pdf.ValidateFile(cfg.OutputPath); err != nil {
		return fmt.Errorf("generated PDF failed validation: %w", err)
	}

	a.Logger.Info().
		Str("run_id", a.runID).
		Str("output", cfg.OutputPath).
		Float64("target_price", result.TargetPrice).
		Float64("upside_pct", result.Upside).
		Msg("report run complete")
	return nil
}

// renderChart produces the chart PNG and writes it beside the report. A
// failed render is logged and the report proceeds without the chart page.
func (a *App) renderChart(history models.PriceHistory, cfg common.ReportConfig) []byte {
	if len(history) == 0 {
		return nil
	}

	title := fmt.Sprintf("%s Price with Moving Averages", cfg.Ticker)
	png, err := a.Chart.Render(history, title)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("chart render failed, omitting chart from report")
		return nil
	}

	if err := os.WriteFile(cfg.ChartPath, png, 0o644); err != nil {
		a.Logger.Warn().Err(err).Str("path", cfg.ChartPath).Msg("failed to write chart file")
	} else {
		a.Logger.Info().Str("path", cfg.ChartPath).Int("bytes", len(png)).Msg("chart written")
	}
	return png
}

// writePDF serializes the document to the configured output path.
func (a *App) writePDF(doc *pdf.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	if err := doc.Output(f); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
