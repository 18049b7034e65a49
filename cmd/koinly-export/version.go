package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxlux/koinly-csv-exporter/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("koinly-export " + version.String())
		},
	}
}
