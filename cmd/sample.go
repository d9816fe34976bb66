package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Load the demonstration invoice as the current draft",
	Long: `Replace the current draft with a richly populated example invoice.
The sample is a draft like any other: it never enters the saved history
until you explicitly run "easeinvo save".`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("sample")

	_, st, err := openStore()
	if err != nil {
		return err
	}

	inv := invoice.NewSample()
	if err := commit(st, inv); err != nil {
		return err
	}

	log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("Sample invoice loaded")
	fmt.Printf("Loaded sample invoice %s with %d items\n", inv.InvoiceNumber, len(inv.Items))
	return nil
}
