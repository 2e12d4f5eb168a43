package models

import "time"

// ReportMeta identifies one report run.
type ReportMeta struct {
	ID          string // rpt_<uuid>, used for log correlation and PDF metadata
	Ticker      string
	CompanyName string
	Exchange    string
	Rating      string
	GeneratedAt time.Time
}

// MarketData is the fetch stage output consumed by the rest of the pipeline.
type MarketData struct {
	Primary      Snapshot
	History      PriceHistory
	UsedFallback bool // true when the primary fetch failed and defaults were substituted
	Peers        []Snapshot
}

// Performance holds supplemental price-performance figures for the
// recommendation section. Values are present only when the history is
// long enough to support them.
type Performance struct {
	YTD      float64
	HasYTD   bool
	OneYear  float64
	HasOneYr bool
}
