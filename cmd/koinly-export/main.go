package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luxlux/koinly-csv-exporter/internal/api"
	"github.com/luxlux/koinly-csv-exporter/internal/config"
	"github.com/luxlux/koinly-csv-exporter/internal/exporter"
	"github.com/luxlux/koinly-csv-exporter/internal/writer"
)

var cfgFile string

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "koinly-export",
		Short:         "Export Koinly transaction history to CSV and JSON files",
		Long: `koinly-export retrieves your complete transaction history from the
Koinly API, per wallet or across all wallets, and writes it to CSV and
JSON files for offline analysis.

Session credentials are read from the config file or from the
KOINLY_AUTH_TOKEN and KOINLY_PORTFOLIO_TOKEN environment variables
(a .env file in the working directory is honored).`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")

	root.AddCommand(newExportCmd())
	root.AddCommand(newWalletsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig resolves configuration from the config file or, without one,
// from the environment alone.
func loadConfig() (*config.Config, error) {
	// Optional; tokens may be supplied via a .env file next to the binary.
	_ = godotenv.Load()

	if cfgFile != "" {
		return config.LoadAndValidate(cfgFile)
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func newExporter(cfg *config.Config, outDir string, logger *slog.Logger, opts ...exporter.Option) (*exporter.Exporter, error) {
	client := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.AuthToken,
		cfg.API.PortfolioToken,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithPageSize(cfg.API.PageSize),
	)

	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	saver, err := writer.NewFileSaver(outDir, logger)
	if err != nil {
		return nil, err
	}

	return exporter.New(client, saver, logger, opts...), nil
}
