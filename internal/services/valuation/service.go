package valuation

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/models"
)

// Service evaluates the valuation model. It holds no state beyond the logger;
// every calculation is a pure function of its inputs.
type Service struct {
	logger arbor.ILogger
}

// NewService creates a new valuation service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Evaluate runs the full model for one snapshot.
// Returns ErrInvalidInput when the current price is not positive, since the
// upside calculation divides by it.
func (s *Service) Evaluate(snap models.Snapshot, a Assumptions) (*models.ValuationResult, error) {
	if snap.CurrentPrice <= 0 {
		return nil, fmt.Errorf("%w: current price must be positive, got %v", ErrInvalidInput, snap.CurrentPrice)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	shares := snap.SharesOutstanding()
	projections := Project(snap, a, shares)

	scenarioEPS := projections[a.ScenarioYear].EPS
	scenarios := Scenarios(scenarioEPS, a)
	target := WeightedTarget(scenarios)
	upside := (target - snap.CurrentPrice) / snap.CurrentPrice * 100

	s.logger.Info().
		Str("ticker", snap.Ticker).
		Float64("target", target).
		Float64("upside_pct", upside).
		Msg("valuation model evaluated")

	return &models.ValuationResult{
		Projections:       projections,
		Scenarios:         scenarios,
		ScenarioLabel:     projections[a.ScenarioYear].Label,
		SharesOutstanding: shares,
		TargetPrice:       target,
		CurrentPrice:      snap.CurrentPrice,
		Upside:            upside,
	}, nil
}

// Project computes the revenue, segment and EPS projections.
// Revenue compounds over the growth rates; the GLP-1 segment is a fixed
// fraction of the base-year revenue per year (not compounding); forecast EPS
// is revenue * margin / shares outstanding, with revenue held in billions.
func Project(snap models.Snapshot, a Assumptions, shares float64) []models.Projection {
	years := len(a.GrowthRates) + 1
	baseRevenue := snap.TrailingRevenue / 1e9

	projections := make([]models.Projection, years)
	projections[0] = models.Projection{
		Year:         a.BaseYear,
		Label:        fmt.Sprintf("%dE", a.BaseYear),
		Revenue:      baseRevenue,
		Growth:       a.BaseYearGrowth,
		SegmentShare: a.SegmentShares[0],
		SegmentRev:   baseRevenue * a.SegmentShares[0],
		Margin:       a.OperatingMargins[0],
		EPS:          snap.TrailingEPS,
	}

	for i := 1; i < years; i++ {
		growth := a.GrowthRates[i-1]
		revenue := projections[i-1].Revenue * (1 + growth)
		eps := 0.0
		if shares > 0 {
			eps = revenue * a.OperatingMargins[i] * 1e9 / shares
		}
		projections[i] = models.Projection{
			Year:         a.BaseYear + i,
			Label:        fmt.Sprintf("%dE", a.BaseYear+i),
			Revenue:      revenue,
			Growth:       growth,
			SegmentShare: a.SegmentShares[i],
			SegmentRev:   baseRevenue * a.SegmentShares[i],
			Margin:       a.OperatingMargins[i],
			EPS:          eps,
		}
	}
	return projections
}

// Scenarios derives one target price per scenario from the base-case
// scenario-year EPS: target = EPS * skew * multiple.
func Scenarios(baseEPS float64, a Assumptions) []models.Scenario {
	scenarios := make([]models.Scenario, len(a.Scenarios))
	for i, sa := range a.Scenarios {
		eps := baseEPS * sa.EPSSkew
		scenarios[i] = models.Scenario{
			Name:        sa.Name,
			Probability: sa.Probability,
			EPS:         eps,
			Multiple:    sa.Multiple,
			TargetPrice: eps * sa.Multiple,
		}
	}
	return scenarios
}

// WeightedTarget is the probability-weighted sum of scenario target prices.
func WeightedTarget(scenarios []models.Scenario) float64 {
	target := 0.0
	for _, sc := range scenarios {
		target += sc.TargetPrice * sc.Probability
	}
	return target
}

// Performance derives YTD and one-trading-year returns from the history.
// Both are optional: short or missing series simply leave them unset.
func Performance(history models.PriceHistory, now time.Time) models.Performance {
	var perf models.Performance
	perf.YTD, perf.HasYTD = history.YTDReturn(now)
	perf.OneYear, perf.HasOneYr = history.TrailingReturn(252)
	return perf
}
