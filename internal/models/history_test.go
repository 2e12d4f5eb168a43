package models

import (
	"math"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYTDReturn(t *testing.T) {
	history := PriceHistory{
		{Date: day(2025, 12, 30), Close: 100},
		{Date: day(2026, 1, 2), Close: 110},
		{Date: day(2026, 3, 2), Close: 121},
	}

	got, ok := history.YTDReturn(day(2026, 3, 15))
	if !ok {
		t.Fatal("expected a YTD return")
	}
	if math.Abs(got-10.0) > 1e-9 {
		t.Errorf("YTDReturn = %v, want 10.0", got)
	}
}

func TestYTDReturnNoCurrentYearBars(t *testing.T) {
	history := PriceHistory{
		{Date: day(2025, 12, 30), Close: 100},
	}
	if _, ok := history.YTDReturn(day(2026, 3, 15)); ok {
		t.Error("expected ok=false without current-year bars")
	}
	if _, ok := PriceHistory(nil).YTDReturn(day(2026, 3, 15)); ok {
		t.Error("expected ok=false for empty history")
	}
}

func TestTrailingReturn(t *testing.T) {
	history := PriceHistory{
		{Date: day(2026, 1, 2), Close: 80},
		{Date: day(2026, 1, 3), Close: 90},
		{Date: day(2026, 1, 4), Close: 100},
	}

	got, ok := history.TrailingReturn(3)
	if !ok {
		t.Fatal("expected a trailing return")
	}
	if math.Abs(got-25.0) > 1e-9 {
		t.Errorf("TrailingReturn = %v, want 25.0", got)
	}

	if _, ok := history.TrailingReturn(4); ok {
		t.Error("expected ok=false when the series is shorter than n")
	}
}

func TestSharesOutstanding(t *testing.T) {
	snap := Snapshot{CurrentPrice: 500, MarketCap: 1000e9}
	if got := snap.SharesOutstanding(); math.Abs(got-2e9) > 1 {
		t.Errorf("SharesOutstanding = %v, want 2e9", got)
	}

	snap.CurrentPrice = 0
	if got := snap.SharesOutstanding(); got != 0 {
		t.Errorf("SharesOutstanding with zero price = %v, want 0", got)
	}
}
