// Package models defines the domain types shared across the report pipeline.
package models

// Snapshot is a single-use quote snapshot for one ticker. Fields are resolved
// from the provider response with documented fallback defaults applied, so a
// Snapshot is always fully populated.
type Snapshot struct {
	Ticker string
	Name   string

	CurrentPrice    float64
	MarketCap       float64
	TrailingEPS     float64
	TrailingRevenue float64

	// Descriptive metrics used by the comparison and analysis tables.
	RevenueGrowth   float64 // YoY, fraction (0.32 = 32%)
	EarningsGrowth  float64 // YoY, fraction
	TrailingPE      float64
	ReturnOnEquity  float64 // fraction
	OperatingMargin float64 // fraction
	Focus           string  // short business-focus label for peer tables
}

// SharesOutstanding approximates the share count from market cap and price.
// Returns 0 when the price is not positive.
func (s Snapshot) SharesOutstanding() float64 {
	if s.CurrentPrice <= 0 {
		return 0
	}
	return s.MarketCap / s.CurrentPrice
}
