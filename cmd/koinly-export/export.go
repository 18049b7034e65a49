package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luxlux/koinly-csv-exporter/internal/exporter"
	"github.com/luxlux/koinly-csv-exporter/internal/ui"
)

func newExportCmd() *cobra.Command {
	var (
		walletFlags []string
		allFlag     bool
		formatFlag  string
		outFlag     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions for selected wallets",
		Long: `Export transaction history to files named "<wallet> - Transactions.<ext>".

With --wallet or --all the selection is taken from the flags; otherwise
an interactive picker is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			exp, err := newExporter(cfg, outFlag, logger)
			if err != nil {
				return err
			}
			defer exp.Reset()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			spinner, _ := pterm.DefaultSpinner.Start("Loading wallets...")
			session, err := exp.Session(ctx)
			if err != nil {
				spinner.Fail("Could not load session")
				return err
			}
			wallets, err := exp.Wallets(ctx)
			if err != nil {
				spinner.Fail("Could not load wallets")
				return err
			}
			spinner.Success(fmt.Sprintf("Loaded %d wallets (base currency %s)", len(wallets), session.BaseCurrency))

			targets := exporter.Targets(wallets)
			interactive := !allFlag && len(walletFlags) == 0

			var selected []exporter.Target
			var formats []exporter.Format

			if interactive {
				if selected, err = ui.SelectTargets(targets); err != nil {
					return err
				}
				if len(selected) == 0 {
					pterm.Info.Println("Nothing selected.")
					return nil
				}
				if formats, err = ui.SelectFormats(); err != nil {
					return err
				}
			} else {
				if selected, err = resolveTargets(targets, walletFlags, allFlag); err != nil {
					return err
				}
				if formats, err = ui.ParseFormats(formatFlag); err != nil {
					return err
				}
			}

			failed, err := runExports(ctx, exp, selected, formats)
			if !interactive {
				return err
			}

			// Failed targets stay retryable: the exporter evicted their
			// aggregations, so a retry refetches from scratch.
			for len(failed) > 0 {
				retry, promptErr := retryableTargets(failed)
				if promptErr != nil {
					return promptErr
				}
				if len(retry) == 0 {
					return err
				}
				failed, err = runExports(ctx, exp, retry, formats)
			}
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&walletFlags, "wallet", "w", nil, "wallet name or ID to export (repeatable)")
	cmd.Flags().BoolVarP(&allFlag, "all", "a", false, "export the combined all-transactions view")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "csv", "output format: csv, json or both")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output directory (default from config)")

	return cmd
}

// resolveTargets maps --wallet/--all flags onto the known targets.
func resolveTargets(targets []exporter.Target, walletFlags []string, all bool) ([]exporter.Target, error) {
	var selected []exporter.Target

	if all {
		selected = append(selected, exporter.AllTransactionsTarget())
	}

	for _, want := range walletFlags {
		found := false
		for _, t := range targets {
			if t.IsAll() {
				continue
			}
			if t.Name == want || t.Key == want {
				selected = append(selected, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no wallet named %q", want)
		}
	}

	return selected, nil
}

type exportResult struct {
	target exporter.Target
	format exporter.Format
	path   string
	err    error
}

// retryableTargets asks, per failed target, whether to try it again.
func retryableTargets(failed []exporter.Target) ([]exporter.Target, error) {
	var retry []exporter.Target
	for _, target := range failed {
		ok, err := ui.ConfirmRetry(target)
		if err != nil {
			return nil, err
		}
		if ok {
			retry = append(retry, target)
		}
	}
	return retry, nil
}

// runExports runs the selected exports, one goroutine per target. Formats of
// the same target run in that goroutine and share one cached aggregation. A
// failed target never affects the others. It returns the targets with at
// least one failed format.
func runExports(ctx context.Context, exp *exporter.Exporter, targets []exporter.Target, formats []exporter.Format) ([]exporter.Target, error) {
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Exporting %d target(s)...", len(targets)))

	results := make(chan exportResult, len(targets)*len(formats))
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(target exporter.Target) {
			defer wg.Done()
			for _, format := range formats {
				path, err := exp.Export(ctx, target, format)
				results <- exportResult{target: target, format: format, path: path, err: err}
			}
		}(target)
	}

	wg.Wait()
	close(results)
	spinner.Stop()

	failedKeys := make(map[string]bool)
	var failed []exporter.Target
	for res := range results {
		if res.err != nil {
			if !failedKeys[res.target.Key] {
				failedKeys[res.target.Key] = true
				failed = append(failed, res.target)
			}
			pterm.Error.Printf("%s (%s): %v\n", res.target.Name, res.format, res.err)
			continue
		}
		pterm.Success.Printf("%s -> %s\n", res.target.Name, res.path)
	}

	if len(failed) > 0 {
		return failed, fmt.Errorf("%d export(s) failed", len(failed))
	}
	return nil, nil
}
