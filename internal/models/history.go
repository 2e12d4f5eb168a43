package models

import "time"

// PriceBar is a single end-of-day close.
type PriceBar struct {
	Date  time.Time
	Close float64
}

// PriceHistory is an ordered daily close series, ascending by date.
// It is immutable once fetched; derived series (moving averages, returns)
// are computed views over it.
type PriceHistory []PriceBar

// Closes returns the close prices in date order.
func (h PriceHistory) Closes() []float64 {
	closes := make([]float64, len(h))
	for i, b := range h {
		closes[i] = b.Close
	}
	return closes
}

// Dates returns the bar dates in order.
func (h PriceHistory) Dates() []time.Time {
	dates := make([]time.Time, len(h))
	for i, b := range h {
		dates[i] = b.Date
	}
	return dates
}

// Last returns the most recent bar. ok is false for an empty series.
func (h PriceHistory) Last() (PriceBar, bool) {
	if len(h) == 0 {
		return PriceBar{}, false
	}
	return h[len(h)-1], true
}

// YTDReturn returns the percentage return from the first bar of the current
// calendar year to the latest close. ok is false when the series has no bar
// in the current year.
func (h PriceHistory) YTDReturn(now time.Time) (float64, bool) {
	last, ok := h.Last()
	if !ok {
		return 0, false
	}
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, b := range h {
		if !b.Date.Before(yearStart) {
			if b.Close <= 0 {
				return 0, false
			}
			return (last.Close - b.Close) / b.Close * 100, true
		}
	}
	return 0, false
}

// TrailingReturn returns the percentage return over the trailing n bars
// (252 for one trading year). ok is false when fewer than n bars exist.
func (h PriceHistory) TrailingReturn(n int) (float64, bool) {
	if n <= 0 || len(h) < n {
		return 0, false
	}
	start := h[len(h)-n].Close
	if start <= 0 {
		return 0, false
	}
	last := h[len(h)-1].Close
	return (last - start) / start * 100, true
}
