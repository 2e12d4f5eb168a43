package valuation

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAssumptions reads an assumptions override file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()
	if path == "" {
		return a, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("failed to read assumptions file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("failed to parse assumptions file %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return a, fmt.Errorf("invalid assumptions in %s: %w", path, err)
	}
	return a, nil
}

// Validate checks the structural invariants of the assumptions: series
// lengths line up, the scenario year is projectable, and scenario
// probabilities sum to 1.0.
func (a Assumptions) Validate() error {
	years := len(a.GrowthRates) + 1
	if len(a.SegmentShares) != years {
		return fmt.Errorf("segment_shares needs %d entries, got %d", years, len(a.SegmentShares))
	}
	if len(a.OperatingMargins) != years {
		return fmt.Errorf("operating_margins needs %d entries, got %d", years, len(a.OperatingMargins))
	}
	if a.ScenarioYear < 1 || a.ScenarioYear >= years {
		return fmt.Errorf("scenario_year %d out of forecast range 1..%d", a.ScenarioYear, years-1)
	}
	if len(a.Scenarios) == 0 {
		return fmt.Errorf("no scenarios defined")
	}
	sum := 0.0
	for _, s := range a.Scenarios {
		if s.Probability < 0 {
			return fmt.Errorf("scenario %q has negative probability", s.Name)
		}
		sum += s.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scenario probabilities sum to %v, want 1.0", sum)
	}
	return nil
}
