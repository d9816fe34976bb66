package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/logger"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new invoice draft",
	Long: `Create a fresh invoice draft with default field values and a newly
generated invoice number. The draft replaces the current one and is kept in
the draft slot until you save it with "easeinvo save".`,
	Example: `  # Start a blank draft
  easeinvo new`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("new")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	inv := newDraft(cfg)
	if err := commit(st, inv); err != nil {
		return err
	}

	log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("New draft created")
	fmt.Printf("Started draft %s (issued %s, due %s)\n", inv.InvoiceNumber, inv.IssueDate, inv.DueDate)
	return nil
}
