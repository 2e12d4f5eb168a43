package marketdata

import (
	"time"

	"github.com/ternarybob/aequitas/internal/models"
)

// EODData represents a single day's end-of-day price data.
type EODData struct {
	Date          time.Time `json:"-"`
	DateStr       string    `json:"date"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`
	AdjustedClose float64   `json:"adjusted_close"`
	Volume        int64     `json:"volume"`
}

// EODResponse is a slice of EODData.
type EODResponse []EODData

// PriceHistory converts the response to the domain series, dropping zero-close
// bars (holidays and null provider rows).
func (r EODResponse) PriceHistory() models.PriceHistory {
	history := make(models.PriceHistory, 0, len(r))
	for _, d := range r {
		if d.Close <= 0 {
			continue
		}
		history = append(history, models.PriceBar{Date: d.Date, Close: d.Close})
	}
	return history
}

// FundamentalsResponse represents the fundamentals data for a symbol.
// All numeric fields are pointers: the provider omits or nulls fields it has
// no data for, and the mapping to a Snapshot resolves each one against an
// explicit default.
type FundamentalsResponse struct {
	General    *GeneralInfo `json:"General"`
	Highlights *Highlights  `json:"Highlights"`
	Valuation  *Valuation   `json:"Valuation"`
}

// GeneralInfo contains general company information.
type GeneralInfo struct {
	Code     string `json:"Code"`
	Name     string `json:"Name"`
	Exchange string `json:"Exchange"`
	Sector   string `json:"Sector"`
	Industry string `json:"Industry"`
}

// Highlights contains headline fundamental metrics.
type Highlights struct {
	MarketCapitalization       *float64 `json:"MarketCapitalization"`
	PERatio                    *float64 `json:"PERatio"`
	EarningsShare              *float64 `json:"EarningsShare"`
	OperatingMarginTTM         *float64 `json:"OperatingMarginTTM"`
	ProfitMargin               *float64 `json:"ProfitMargin"`
	ReturnOnEquityTTM          *float64 `json:"ReturnOnEquityTTM"`
	RevenueTTM                 *float64 `json:"RevenueTTM"`
	QuarterlyRevenueGrowthYOY  *float64 `json:"QuarterlyRevenueGrowthYOY"`
	QuarterlyEarningsGrowthYOY *float64 `json:"QuarterlyEarningsGrowthYOY"`
}

// Valuation contains valuation metrics.
type Valuation struct {
	TrailingPE *float64 `json:"TrailingPE"`
	ForwardPE  *float64 `json:"ForwardPE"`
}

// Snapshot resolves the fundamentals plus a current price into a fully
// populated domain snapshot. Absent optional fields fall back to the matching
// value in defaults; an explicit zero from the provider is kept.
func (f *FundamentalsResponse) Snapshot(ticker string, price float64, defaults models.Snapshot) models.Snapshot {
	s := defaults
	s.Ticker = ticker
	if price > 0 {
		s.CurrentPrice = price
	}
	if f == nil {
		return s
	}
	if f.General != nil && f.General.Name != "" {
		s.Name = f.General.Name
	}
	if h := f.Highlights; h != nil {
		s.MarketCap = orDefault(h.MarketCapitalization, s.MarketCap)
		s.TrailingEPS = orDefault(h.EarningsShare, s.TrailingEPS)
		s.TrailingRevenue = orDefault(h.RevenueTTM, s.TrailingRevenue)
		s.RevenueGrowth = orDefault(h.QuarterlyRevenueGrowthYOY, s.RevenueGrowth)
		s.EarningsGrowth = orDefault(h.QuarterlyEarningsGrowthYOY, s.EarningsGrowth)
		s.OperatingMargin = orDefault(h.OperatingMarginTTM, s.OperatingMargin)
		s.ReturnOnEquity = orDefault(h.ReturnOnEquityTTM, s.ReturnOnEquity)
		s.TrailingPE = orDefault(h.PERatio, s.TrailingPE)
	}
	if v := f.Valuation; v != nil {
		s.TrailingPE = orDefault(v.TrailingPE, s.TrailingPE)
	}
	return s
}

// orDefault resolves an optional provider field. Only a missing value falls
// back; zero is a legitimate reading.
func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
