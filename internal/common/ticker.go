package common

import (
	"strings"
)

// Ticker represents a parsed exchange-qualified ticker.
// Format: EXCHANGE:CODE (e.g., "NYSE:LLY", "NASDAQ:MSFT")
type Ticker struct {
	// Exchange is the exchange code (e.g., "NYSE", "NASDAQ", "CO")
	Exchange string
	// Code is the stock/security code (e.g., "LLY", "NVO")
	Code string
	// Raw is the original ticker string
	Raw string
}

// ExchangeToSuffix maps exchange codes to provider API suffixes.
var ExchangeToSuffix = map[string]string{
	"NYSE":   ".US",
	"NASDAQ": ".US",
	"ASX":    ".AU",
	"LSE":    ".LSE",
	"TSX":    ".TO",
	"XETRA":  ".XETRA",
	"CPH":    ".CO",
}

// DefaultExchange is the default exchange used when parsing tickers without an
// exchange prefix.
var DefaultExchange = "NYSE"

// ParseTicker parses an exchange-qualified ticker string.
// Supports formats:
//   - "NYSE:LLY" -> Exchange="NYSE", Code="LLY" (colon separator)
//   - "NYSE.LLY" -> Exchange="NYSE", Code="LLY" (dot separator)
//   - "LLY" -> Exchange=DefaultExchange, Code="LLY"
//   - "lly" -> Exchange=DefaultExchange, Code="LLY" (normalized to uppercase)
//
// The provider uses CODE.SUFFIX (e.g., "LLY.US"); use ProviderSymbol() to
// convert.
func ParseTicker(ticker string) Ticker {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return Ticker{}
	}

	// Exchange prefix with colon separator (EXCHANGE:CODE)
	if idx := strings.Index(ticker, ":"); idx > 0 {
		return Ticker{
			Exchange: strings.ToUpper(ticker[:idx]),
			Code:     strings.ToUpper(ticker[idx+1:]),
			Raw:      ticker,
		}
	}

	// Exchange prefix with dot separator (EXCHANGE.CODE). Only match when the
	// prefix is a known exchange to avoid conflicts with codes containing dots.
	if idx := strings.Index(ticker, "."); idx > 0 {
		possibleExchange := strings.ToUpper(ticker[:idx])
		if _, ok := ExchangeToSuffix[possibleExchange]; ok {
			return Ticker{
				Exchange: possibleExchange,
				Code:     strings.ToUpper(ticker[idx+1:]),
				Raw:      ticker,
			}
		}
	}

	// No exchange prefix - use default exchange
	return Ticker{
		Exchange: DefaultExchange,
		Code:     strings.ToUpper(ticker),
		Raw:      ticker,
	}
}

// String returns the full exchange-qualified ticker string.
func (t Ticker) String() string {
	if t.Exchange == "" || t.Code == "" {
		return t.Code
	}
	return t.Exchange + ":" + t.Code
}

// ProviderSymbol returns the provider API symbol format.
// Example: "NYSE:LLY" -> "LLY.US"
func (t Ticker) ProviderSymbol() string {
	if t.Code == "" {
		return ""
	}
	suffix, ok := ExchangeToSuffix[t.Exchange]
	if !ok {
		// Default to US for unknown exchanges
		suffix = ".US"
	}
	return t.Code + suffix
}

// ParseTickers parses a list of ticker strings, dropping unparseable entries.
func ParseTickers(tickers []string) []Ticker {
	result := make([]Ticker, 0, len(tickers))
	for _, t := range tickers {
		if parsed := ParseTicker(t); parsed.Code != "" {
			result = append(result, parsed)
		}
	}
	return result
}
