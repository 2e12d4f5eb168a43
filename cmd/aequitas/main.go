package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aequitas/internal/app"
	"github.com/ternarybob/aequitas/internal/common"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths
	tickerFlag   = flag.String("ticker", "", "Primary ticker (overrides config)")
	outputFlag   = flag.String("output", "", "Report output path (overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	config *common.Config
	logger arbor.ILogger
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Aequitas version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// .env is optional; it carries AEQUITAS_API_TOKEN in local setups
	_ = godotenv.Load()

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("aequitas.toml"); err == nil {
			configFiles = append(configFiles, "aequitas.toml")
		} else if _, err := os.Stat("deployments/local/aequitas.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/aequitas.toml")
		}
	}

	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	if *tickerFlag != "" {
		config.Report.Ticker = *tickerFlag
	}
	if *outputFlag != "" {
		config.Report.OutputPath = *outputFlag
	}

	logger = common.InitLogger(config)
	common.PrintBanner(common.GetFullVersion())

	logger.Debug().
		Str("ticker", config.Report.Ticker).
		Strs("peers", config.Report.Peers).
		Str("output", config.Report.OutputPath).
		Str("log_level", config.Logging.Level).
		Msg("Resolved configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(config, logger)
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Report generation failed")
		os.Exit(1)
	}
}
