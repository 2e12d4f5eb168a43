package marketdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/aequitas/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-token", WithBaseURL(server.URL))
}

func TestGetEOD(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eod/LLY.US", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("api_token"))
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("from"))

		w.Header().Set("Content-Type", "application/json")
		// out of order on purpose; the client sorts ascending
		w.Write([]byte(`[
			{"date":"2024-01-03","open":600,"high":610,"low":595,"close":605.5,"adjusted_close":605.5,"volume":1000},
			{"date":"2024-01-02","open":590,"high":600,"low":585,"close":598.2,"adjusted_close":598.2,"volume":1200}
		]`))
	})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	eod, err := client.GetEOD(context.Background(), "LLY.US", WithDateRange(from, to))
	require.NoError(t, err)
	require.Len(t, eod, 2)

	assert.Equal(t, "2024-01-02", eod[0].DateStr)
	assert.InDelta(t, 598.2, eod[0].Close, 0.001)
	assert.True(t, eod[0].Date.Before(eod[1].Date))
}

func TestGetEODDropsNullBars(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"date":"2024-01-02","close":598.2},
			{"date":"2024-01-03","close":0},
			{"date":"2024-01-04","close":601.0}
		]`))
	})

	eod, err := client.GetEOD(context.Background(), "LLY.US")
	require.NoError(t, err)
	require.Len(t, eod, 3)

	history := eod.PriceHistory()
	require.Len(t, history, 2)
	assert.InDelta(t, 598.2, history[0].Close, 0.001)
	assert.InDelta(t, 601.0, history[1].Close, 0.001)
}

func TestGetEODAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid token"))
	})

	_, err := client.GetEOD(context.Background(), "LLY.US")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "invalid token")
}

func TestGetEODRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetEOD(context.Background(), "LLY.US")
	require.Error(t, err)

	var rlErr *RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, 7*time.Second, rlErr.RetryAfter)
}

func TestGetEODCanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetEOD(ctx, "LLY.US")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "cancellation must surface as the context error")

	var rlErr *RateLimitError
	assert.False(t, errors.As(err, &rlErr), "cancellation is not a provider rate limit")
}

func TestGetEODMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	})

	_, err := client.GetEOD(context.Background(), "LLY.US")
	assert.Error(t, err)
}

func TestGetFundamentals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fundamentals/LLY.US", r.URL.Path)
		w.Write([]byte(`{
			"General": {"Code":"LLY","Name":"Eli Lilly and Company","Exchange":"NYSE"},
			"Highlights": {
				"MarketCapitalization": 980000000000,
				"PERatio": 52.1,
				"EarningsShare": 19.80,
				"RevenueTTM": 34100000000,
				"QuarterlyRevenueGrowthYOY": 0.32,
				"ReturnOnEquityTTM": null
			}
		}`))
	})

	fund, err := client.GetFundamentals(context.Background(), "LLY.US")
	require.NoError(t, err)
	require.NotNil(t, fund.General)
	require.NotNil(t, fund.Highlights)
	assert.Equal(t, "Eli Lilly and Company", fund.General.Name)
	assert.Nil(t, fund.Highlights.ReturnOnEquityTTM)
	require.NotNil(t, fund.Highlights.PERatio)
	assert.InDelta(t, 52.1, *fund.Highlights.PERatio, 0.001)
}

func TestFundamentalsSnapshotDefaults(t *testing.T) {
	defaults := models.Snapshot{
		Name:            "Fallback Name",
		CurrentPrice:    100,
		MarketCap:       50e9,
		TrailingPE:      30,
		ReturnOnEquity:  0.5,
		OperatingMargin: 0.2,
	}

	peRatio := 45.0
	fund := &FundamentalsResponse{
		General: &GeneralInfo{Name: "Real Name"},
		Highlights: &Highlights{
			PERatio: &peRatio,
			// everything else omitted or nulled by the provider
		},
	}

	snap := fund.Snapshot("TEST", 250, defaults)
	assert.Equal(t, "TEST", snap.Ticker)
	assert.Equal(t, "Real Name", snap.Name)
	assert.InDelta(t, 250, snap.CurrentPrice, 0.001)
	assert.InDelta(t, 45, snap.TrailingPE, 0.001)
	// absent provider fields keep the defaults
	assert.InDelta(t, 50e9, snap.MarketCap, 1)
	assert.InDelta(t, 0.5, snap.ReturnOnEquity, 0.001)
	assert.InDelta(t, 0.2, snap.OperatingMargin, 0.001)

	// nil response keeps everything
	var empty *FundamentalsResponse
	snap = empty.Snapshot("TEST", 0, defaults)
	assert.Equal(t, "Fallback Name", snap.Name)
	assert.InDelta(t, 100, snap.CurrentPrice, 0.001)
}

func TestFundamentalsSnapshotKeepsExplicitZero(t *testing.T) {
	defaults := models.Snapshot{RevenueGrowth: 0.32, OperatingMargin: 0.22}

	zero := 0.0
	fund := &FundamentalsResponse{
		Highlights: &Highlights{
			QuarterlyRevenueGrowthYOY: &zero,
			// OperatingMarginTTM absent
		},
	}

	snap := fund.Snapshot("TEST", 100, defaults)
	assert.Zero(t, snap.RevenueGrowth, "a reported zero is data, not a gap")
	assert.InDelta(t, 0.22, snap.OperatingMargin, 0.001)
}

func TestGetRealTimeQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/real-time/LLY.US", r.URL.Path)
		w.Write([]byte(`{"date":"2024-06-14","close":880.25,"volume":2500000}`))
	})

	quote, err := client.GetRealTimeQuote(context.Background(), "LLY.US")
	require.NoError(t, err)
	assert.InDelta(t, 880.25, quote.Close, 0.001)
}
