package models

// Projection is one forecast year of the financial model.
type Projection struct {
	Year         int
	Label        string  // e.g. "2026E"
	Revenue      float64 // $B
	Growth       float64 // YoY fraction assumed for this year
	SegmentShare float64 // GLP-1 share of base-year revenue, fraction
	SegmentRev   float64 // $B
	Margin       float64 // operating margin fraction
	EPS          float64 // $
}

// Scenario is a named valuation branch with an assigned probability.
// TargetPrice is a pure function of EPS and Multiple.
type Scenario struct {
	Name        string
	Probability float64
	EPS         float64
	Multiple    float64
	TargetPrice float64
}

// ValuationResult holds the complete output of the scenario-weighted model.
type ValuationResult struct {
	Projections       []Projection
	Scenarios         []Scenario // bull, base, bear in fixed order
	ScenarioLabel     string     // forecast-year label the scenarios price, e.g. "2026E"
	SharesOutstanding float64
	TargetPrice       float64 // probability-weighted
	CurrentPrice      float64
	Upside            float64 // percent
}

// Scenario lookup helpers used by the valuation and recommendation sections.

func (v ValuationResult) Bull() Scenario { return v.Scenarios[0] }
func (v ValuationResult) Base() Scenario { return v.Scenarios[1] }
func (v ValuationResult) Bear() Scenario { return v.Scenarios[2] }
