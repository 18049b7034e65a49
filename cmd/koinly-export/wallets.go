package main

import (
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "List the portfolio's wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			exp, err := newExporter(cfg, "", logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			wallets, err := exp.Wallets(ctx)
			if err != nil {
				return err
			}

			if len(wallets) == 0 {
				pterm.Info.Println("No wallets found.")
				return nil
			}

			rows := pterm.TableData{{"ID", "Name"}}
			for _, w := range wallets {
				rows = append(rows, []string{w.ID.String(), w.Name})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
		},
	}
}
