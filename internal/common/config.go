package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Report    ReportConfig    `toml:"report"`
	Provider  ProviderConfig  `toml:"provider"`
	Valuation ValuationConfig `toml:"valuation"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ReportConfig describes the subject company, its peer set and output targets.
type ReportConfig struct {
	Ticker      string   `toml:"ticker" validate:"required"`
	CompanyName string   `toml:"company_name"`
	Exchange    string   `toml:"exchange"` // exchange label shown on the cover, e.g. "NYSE"
	Peers       []string `toml:"peers"`
	Rating      string   `toml:"rating" validate:"oneof=BUY HOLD SELL"`
	OutputPath  string   `toml:"output_path" validate:"required"`
	ChartPath   string   `toml:"chart_path" validate:"required"`
}

// ProviderConfig configures the market data provider client.
type ProviderConfig struct {
	BaseURL      string `toml:"base_url" validate:"required,url"`
	APIToken     string `toml:"api_token"` // also settable via AEQUITAS_API_TOKEN
	Timeout      string `toml:"timeout"`   // e.g. "30s"
	RateLimit    int    `toml:"rate_limit" validate:"gte=0"`
	HistoryYears int    `toml:"history_years" validate:"gte=0,lte=2"`
}

// ValuationConfig points at an optional assumptions override file.
type ValuationConfig struct {
	AssumptionsFile string `toml:"assumptions_file"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig returns the built-in defaults. The defaults reproduce the
// Eli Lilly report so the binary is runnable with no config file at all.
func NewDefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Ticker:      "LLY",
			CompanyName: "Eli Lilly and Company",
			Exchange:    "NYSE",
			Peers:       []string{"JNJ", "PFE", "MRK", "ABBV", "NVO"},
			Rating:      "BUY",
			OutputPath:  "LLY_Equity_Research_Report.pdf",
			ChartPath:   "lly_chart.png",
		},
		Provider: ProviderConfig{
			BaseURL:      "https://eodhd.com/api",
			Timeout:      "30s",
			RateLimit:    10,
			HistoryYears: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// LoadFromFiles loads configuration with layered precedence:
// defaults -> file1 -> file2 -> ... -> environment variables.
// Later files override earlier ones. An empty path list returns defaults
// plus env overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// applyEnvOverrides applies AEQUITAS_* environment variables on top of the
// loaded configuration.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("AEQUITAS_TICKER"); v != "" {
		config.Report.Ticker = v
	}
	if v := os.Getenv("AEQUITAS_PEERS"); v != "" {
		config.Report.Peers = splitList(v)
	}
	if v := os.Getenv("AEQUITAS_OUTPUT_PATH"); v != "" {
		config.Report.OutputPath = v
	}
	if v := os.Getenv("AEQUITAS_PROVIDER_BASE_URL"); v != "" {
		config.Provider.BaseURL = v
	}
	if v := os.Getenv("AEQUITAS_API_TOKEN"); v != "" {
		config.Provider.APIToken = v
	}
	if v := os.Getenv("AEQUITAS_PROVIDER_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			config.Provider.RateLimit = n
		}
	}
	if v := os.Getenv("AEQUITAS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// ProviderTimeout parses the configured provider timeout, falling back to
// 30 seconds on a missing or malformed value.
func (c *Config) ProviderTimeout() time.Duration {
	d, err := time.ParseDuration(c.Provider.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
