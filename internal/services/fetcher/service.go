// Package fetcher orchestrates market data retrieval for the primary ticker
// and its peer set. Provider failures never abort the pipeline: the primary
// ticker falls back to fixed literal values, failed peers are omitted.
package fetcher

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/common"
	"github.com/ternarybob/aequitas/internal/marketdata"
	"github.com/ternarybob/aequitas/internal/models"
)

// FallbackSnapshot returns the documented fallback values substituted when
// the primary ticker cannot be fetched.
func FallbackSnapshot(ticker, name string) models.Snapshot {
	return models.Snapshot{
		Ticker:          ticker,
		Name:            name,
		CurrentPrice:    1030.05,
		MarketCap:       980e9,
		TrailingRevenue: 34.1e9,
		TrailingEPS:     19.80,
		RevenueGrowth:   0.32,
		EarningsGrowth:  1.0,
		TrailingPE:      52,
		ReturnOnEquity:  0.85,
		OperatingMargin: 0.22,
		Focus:           "GLP-1, Oncology",
	}
}

// peerDefaults holds per-field fallbacks for known peers, applied when the
// provider omits individual fundamentals fields.
var peerDefaults = map[string]models.Snapshot{
	"NVO":  {Name: "Novo Nordisk", RevenueGrowth: 0.30, TrailingPE: 45, ReturnOnEquity: 0.75, Focus: "GLP-1 (Wegovy)"},
	"MRK":  {Name: "Merck", RevenueGrowth: 0.05, TrailingPE: 15, ReturnOnEquity: 0.25, Focus: "Keytruda, Vaccines"},
	"JNJ":  {Name: "Johnson & Johnson", RevenueGrowth: 0.02, TrailingPE: 22, ReturnOnEquity: 0.30, Focus: "Diversified"},
	"ABBV": {Name: "AbbVie", RevenueGrowth: 0.01, TrailingPE: 18, ReturnOnEquity: 0.35, Focus: "Humira, Immunology"},
	"PFE":  {Name: "Pfizer", RevenueGrowth: -0.05, TrailingPE: 12, ReturnOnEquity: 0.08, Focus: "Post-COVID decline"},
}

// PeerResult is the explicit per-peer fetch outcome. Failed peers carry their
// error and are filtered out of the comparison set.
type PeerResult struct {
	Ticker   common.Ticker
	Snapshot models.Snapshot
	Err      error
}

// Service fetches quote snapshots and price history from the provider.
type Service struct {
	client       *marketdata.Client
	logger       arbor.ILogger
	historyYears int
}

// NewService creates a new fetcher service.
func NewService(client *marketdata.Client, logger arbor.ILogger, historyYears int) *Service {
	if historyYears <= 0 || historyYears > 2 {
		historyYears = 2
	}
	return &Service{
		client:       client,
		logger:       logger,
		historyYears: historyYears,
	}
}

// FetchAll runs the complete fetch stage: price history and snapshot for the
// primary ticker, snapshots for each peer. It always returns usable market
// data; fallbacks are substituted where the provider is unreachable.
func (s *Service) FetchAll(ctx context.Context, primary common.Ticker, companyName string, peers []common.Ticker) *models.MarketData {
	history := s.fetchHistory(ctx, primary)

	snapshot, usedFallback := s.fetchPrimary(ctx, primary, companyName, history)

	peerResults := s.fetchPeers(ctx, peers)
	survivors := make([]models.Snapshot, 0, len(peerResults))
	for _, r := range peerResults {
		if r.Err != nil {
			s.logger.Warn().Err(r.Err).Str("peer", r.Ticker.String()).Msg("peer fetch failed, omitting from comparison")
			continue
		}
		survivors = append(survivors, r.Snapshot)
	}

	return &models.MarketData{
		Primary:      snapshot,
		History:      history,
		UsedFallback: usedFallback,
		Peers:        survivors,
	}
}

// fetchHistory returns the primary ticker's daily close history, or an empty
// series when the provider call fails.
func (s *Service) fetchHistory(ctx context.Context, t common.Ticker) models.PriceHistory {
	to := time.Now()
	from := to.AddDate(-s.historyYears, 0, 0)

	eod, err := s.client.GetEOD(ctx, t.ProviderSymbol(), marketdata.WithDateRange(from, to))
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", t.String()).Msg("history fetch failed, chart will be omitted")
		return nil
	}
	history := eod.PriceHistory()
	s.logger.Info().Str("ticker", t.String()).Int("bars", len(history)).Msg("price history fetched")
	return history
}

// fetchPrimary resolves the primary snapshot, substituting the fixed fallback
// values when the fundamentals call fails.
func (s *Service) fetchPrimary(ctx context.Context, t common.Ticker, companyName string, history models.PriceHistory) (models.Snapshot, bool) {
	defaults := FallbackSnapshot(t.Code, companyName)

	fund, err := s.client.GetFundamentals(ctx, t.ProviderSymbol())
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", t.String()).Msg("primary fetch failed, using fallback snapshot")
		snap := defaults
		if last, ok := history.Last(); ok {
			snap.CurrentPrice = last.Close
		}
		return snap, true
	}

	price := s.currentPrice(ctx, t, history)
	return fund.Snapshot(t.Code, price, defaults), false
}

// currentPrice prefers the real-time quote, then the last historical close.
// Zero means no price source was available; the snapshot default applies.
func (s *Service) currentPrice(ctx context.Context, t common.Ticker, history models.PriceHistory) float64 {
	if rt, err := s.client.GetRealTimeQuote(ctx, t.ProviderSymbol()); err == nil && rt.Close > 0 {
		return rt.Close
	}
	if last, ok := history.Last(); ok {
		return last.Close
	}
	return 0
}

// fetchPeers collects one result per peer, never failing the batch.
func (s *Service) fetchPeers(ctx context.Context, peers []common.Ticker) []PeerResult {
	results := make([]PeerResult, 0, len(peers))
	for _, p := range peers {
		defaults := peerDefaults[p.Code]
		defaults.Ticker = p.Code
		if defaults.Name == "" {
			defaults.Name = p.Code
		}

		fund, err := s.client.GetFundamentals(ctx, p.ProviderSymbol())
		if err != nil {
			results = append(results, PeerResult{Ticker: p, Err: err})
			continue
		}
		results = append(results, PeerResult{
			Ticker:   p,
			Snapshot: fund.Snapshot(p.Code, 0, defaults),
		})
	}
	return results
}
