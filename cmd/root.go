package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easeinvo/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "easeinvo",
	Short: "easeinvo - create, preview and export invoices from the terminal",
	Long: `easeinvo is a local invoice creation tool. You fill in sender, client
and line-item details, it computes the totals, renders the invoice in one of
three visual templates (modern, classic, minimal) and exports the result to a
single-page A4 PDF.

There is no server and no account: the invoice history, the in-progress draft
and your display preference all live in a data directory on this machine
(EASEINVO_DATA_DIR, default ~/.easeinvo).`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("easeinvo - local invoice creation")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
