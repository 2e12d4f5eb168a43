// Package valuation implements the deterministic scenario-weighted valuation
// model: multi-year revenue and EPS projections from fixed growth and margin
// assumptions, three P/E scenarios, and a probability-weighted target price.
package valuation

import "errors"

// ErrInvalidInput is returned when the model inputs cannot support the
// arithmetic, e.g. a non-positive current price.
var ErrInvalidInput = errors.New("valuation: invalid input")

// ScenarioAssumption defines one valuation branch.
type ScenarioAssumption struct {
	Name        string  `yaml:"name"`
	Probability float64 `yaml:"probability"`
	Multiple    float64 `yaml:"multiple"` // forward P/E applied to scenario EPS
	EPSSkew     float64 `yaml:"eps_skew"` // multiplier on the base-case scenario-year EPS
}

// Assumptions holds every model input that is not fetched from the provider.
// The zero value is not usable; start from DefaultAssumptions.
type Assumptions struct {
	BaseYear       int     `yaml:"base_year"`
	BaseYearGrowth float64 `yaml:"base_year_growth"` // display-only YoY growth for the base year

	// GrowthRates are the successive forecast-year revenue growth rates.
	GrowthRates []float64 `yaml:"growth_rates"`

	// SegmentShares are GLP-1 fractions of the base-year revenue, one per
	// model year including the base year. Not compounding.
	SegmentShares []float64 `yaml:"segment_shares"`

	// OperatingMargins per model year including the base year.
	OperatingMargins []float64 `yaml:"operating_margins"`

	// ScenarioYear indexes the forecast year whose EPS the scenarios
	// multiply (2 = second forecast year).
	ScenarioYear int `yaml:"scenario_year"`

	Scenarios []ScenarioAssumption `yaml:"scenarios"` // bull, base, bear
}

// DefaultAssumptions returns the fixed model inputs used by the base report:
// 28/25/20% revenue growth, GLP-1 share ramp 45→62% of base-year revenue,
// margins 21→26%, scenarios 40x/35x/28x with ±15% EPS skew at 25/50/25%.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		BaseYear:         2024,
		BaseYearGrowth:   0.32,
		GrowthRates:      []float64{0.28, 0.25, 0.20},
		SegmentShares:    []float64{0.45, 0.55, 0.60, 0.62},
		OperatingMargins: []float64{0.21, 0.23, 0.25, 0.26},
		ScenarioYear:     2,
		Scenarios: []ScenarioAssumption{
			{Name: "Bull Case", Probability: 0.25, Multiple: 40, EPSSkew: 1.15},
			{Name: "Base Case", Probability: 0.50, Multiple: 35, EPSSkew: 1.0},
			{Name: "Bear Case", Probability: 0.25, Multiple: 28, EPSSkew: 0.85},
		},
	}
}
