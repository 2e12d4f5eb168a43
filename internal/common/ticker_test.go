package common

import (
	"testing"
)

func TestParseTicker(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantExchange string
		wantCode     string
		wantSymbol   string
	}{
		{
			name:         "bare ticker defaults to NYSE",
			input:        "LLY",
			wantExchange: "NYSE",
			wantCode:     "LLY",
			wantSymbol:   "LLY.US",
		},
		{
			name:         "lowercase normalized",
			input:        "lly",
			wantExchange: "NYSE",
			wantCode:     "LLY",
			wantSymbol:   "LLY.US",
		},
		{
			name:         "colon separator",
			input:        "NASDAQ:MSFT",
			wantExchange: "NASDAQ",
			wantCode:     "MSFT",
			wantSymbol:   "MSFT.US",
		},
		{
			name:         "dot separator with known exchange",
			input:        "ASX.BHP",
			wantExchange: "ASX",
			wantCode:     "BHP",
			wantSymbol:   "BHP.AU",
		},
		{
			name:         "dot separator with unknown prefix stays a code",
			input:        "BRK.B",
			wantExchange: "NYSE",
			wantCode:     "BRK.B",
			wantSymbol:   "BRK.B.US",
		},
		{
			name:         "copenhagen listing",
			input:        "CPH:NOVO-B",
			wantExchange: "CPH",
			wantCode:     "NOVO-B",
			wantSymbol:   "NOVO-B.CO",
		},
		{
			name:         "whitespace trimmed",
			input:        "  PFE  ",
			wantExchange: "NYSE",
			wantCode:     "PFE",
			wantSymbol:   "PFE.US",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTicker(tt.input)
			if got.Exchange != tt.wantExchange {
				t.Errorf("Exchange = %q, want %q", got.Exchange, tt.wantExchange)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.ProviderSymbol() != tt.wantSymbol {
				t.Errorf("ProviderSymbol() = %q, want %q", got.ProviderSymbol(), tt.wantSymbol)
			}
		})
	}
}

func TestParseTickerEmpty(t *testing.T) {
	got := ParseTicker("")
	if got.Code != "" || got.ProviderSymbol() != "" {
		t.Errorf("empty input should parse to an empty ticker, got %+v", got)
	}
}

func TestParseTickers(t *testing.T) {
	got := ParseTickers([]string{"JNJ", "", "NASDAQ:AMGN", "   "})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Code != "JNJ" || got[1].Code != "AMGN" {
		t.Errorf("unexpected codes: %v, %v", got[0].Code, got[1].Code)
	}
}
