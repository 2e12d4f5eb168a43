package valuation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/models"
)

func createTestLogger() arbor.ILogger {
	return arbor.NewLogger()
}

// snapshot with round numbers so expected values are exact:
// shares = 1000e9 / 1000 = 1e9, base revenue = 40B.
func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Ticker:          "TEST",
		CurrentPrice:    1000,
		MarketCap:       1000e9,
		TrailingRevenue: 40e9,
		TrailingEPS:     20,
	}
}

func TestScenarios(t *testing.T) {
	a := DefaultAssumptions()

	// EPS of 20 with the default 40x/35x/28x multiples and +/-15% skew:
	// bull  23.00 * 40 = 920
	// base  20.00 * 35 = 700
	// bear  17.00 * 28 = 476
	scenarios := Scenarios(20, a)
	require.Len(t, scenarios, 3)

	assert.InDelta(t, 920, scenarios[0].TargetPrice, 0.001)
	assert.InDelta(t, 700, scenarios[1].TargetPrice, 0.001)
	assert.InDelta(t, 476, scenarios[2].TargetPrice, 0.001)

	// weighted: 920*0.25 + 700*0.50 + 476*0.25 = 699
	assert.InDelta(t, 699.0, WeightedTarget(scenarios), 0.001)
}

func TestEvaluate(t *testing.T) {
	service := NewService(createTestLogger())
	a := DefaultAssumptions()

	result, err := service.Evaluate(testSnapshot(), a)
	require.NoError(t, err)

	assert.InDelta(t, 1e9, result.SharesOutstanding, 1)
	require.Len(t, result.Projections, 4)
	require.Len(t, result.Scenarios, 3)

	// revenue compounds: 40 -> 51.2 -> 64 -> 76.8
	assert.InDelta(t, 40.0, result.Projections[0].Revenue, 0.001)
	assert.InDelta(t, 51.2, result.Projections[1].Revenue, 0.001)
	assert.InDelta(t, 64.0, result.Projections[2].Revenue, 0.001)
	assert.InDelta(t, 76.8, result.Projections[3].Revenue, 0.001)

	// scenario-year EPS: 64.0B * 0.25 margin / 1e9 shares = 16.00
	scenarioEPS := result.Projections[a.ScenarioYear].EPS
	assert.InDelta(t, 16.0, scenarioEPS, 0.001)

	// weighted target scales linearly with EPS: 699 * 16/20 = 559.2
	assert.InDelta(t, 559.2, result.TargetPrice, 0.001)
	assert.InDelta(t, -44.08, result.Upside, 0.001)
	assert.Equal(t, result.Projections[a.ScenarioYear].Label, result.ScenarioLabel)
}

func TestEvaluateInvalidInput(t *testing.T) {
	service := NewService(createTestLogger())

	tests := []struct {
		name   string
		mutate func(*models.Snapshot, *Assumptions)
	}{
		{
			name:   "zero price",
			mutate: func(s *models.Snapshot, a *Assumptions) { s.CurrentPrice = 0 },
		},
		{
			name:   "negative price",
			mutate: func(s *models.Snapshot, a *Assumptions) { s.CurrentPrice = -5 },
		},
		{
			name: "probabilities do not sum to one",
			mutate: func(s *models.Snapshot, a *Assumptions) {
				a.Scenarios[0].Probability = 0.4
			},
		},
		{
			name: "margin series too short",
			mutate: func(s *models.Snapshot, a *Assumptions) {
				a.OperatingMargins = a.OperatingMargins[:2]
			},
		},
		{
			name: "scenario year out of range",
			mutate: func(s *models.Snapshot, a *Assumptions) {
				a.ScenarioYear = 10
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testSnapshot()
			a := DefaultAssumptions()
			tt.mutate(&snap, &a)

			_, err := service.Evaluate(snap, a)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestProjectSegmentNotCompounding(t *testing.T) {
	a := DefaultAssumptions()
	projections := Project(testSnapshot(), a, 1e9)
	require.Len(t, projections, 4)

	// segment revenue is share * base-year revenue (40B), not the grown total
	for i, p := range projections {
		assert.InDelta(t, 40.0*a.SegmentShares[i], p.SegmentRev, 0.001, "year %d", i)
	}
}

func TestProjectZeroShares(t *testing.T) {
	a := DefaultAssumptions()
	snap := testSnapshot()
	snap.MarketCap = 0

	projections := Project(snap, a, snap.SharesOutstanding())
	require.Len(t, projections, 4)

	// base year keeps trailing EPS, forecast EPS collapses to zero
	assert.InDelta(t, 20, projections[0].EPS, 0.001)
	for _, p := range projections[1:] {
		assert.Zero(t, p.EPS)
	}
}

func TestPerformance(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	var history models.PriceHistory
	start := now.AddDate(-1, -3, 0)
	for d := 0; d < 400; d++ {
		history = append(history, models.PriceBar{
			Date:  start.AddDate(0, 0, d),
			Close: 100 + float64(d)*0.5,
		})
	}

	perf := Performance(history, now)
	assert.True(t, perf.HasYTD)
	assert.True(t, perf.HasOneYr)
	assert.Greater(t, perf.YTD, 0.0)
	assert.Greater(t, perf.OneYear, 0.0)
}

func TestPerformanceShortHistory(t *testing.T) {
	perf := Performance(nil, time.Now())
	assert.False(t, perf.HasYTD)
	assert.False(t, perf.HasOneYr)
}
