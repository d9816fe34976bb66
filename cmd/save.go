package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
	"easeinvo/internal/store"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current draft into the invoice history",
	Long: `Commit the current draft to the saved invoice history. A draft gets
a permanent identifier and is added to the top of the history; re-saving an
invoice that was saved before replaces that entry in place, so the history
never holds duplicates.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("save")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	current := currentDraft(cfg, st)
	wasDraft := current.IsDraft()

	stored, collection := invoice.Save(current, st.LoadInvoices())
	if err := st.SaveInvoices(collection); err != nil {
		return err
	}

	// The draft slot only protects unsaved work; once the invoice has a
	// permanent identifier the history is its home.
	if wasDraft {
		if err := st.Remove(store.KeyDraft); err != nil {
			return err
		}
	}

	log.Info().
		Str("id", stored.ID).
		Str("invoice_number", stored.InvoiceNumber).
		Bool("new_entry", wasDraft).
		Int("history_size", len(collection)).
		Msg("Invoice saved")

	if wasDraft {
		fmt.Printf("Saved %s (id %s). History now holds %d invoice(s).\n", stored.InvoiceNumber, stored.ID, len(collection))
	} else {
		fmt.Printf("Updated %s (id %s).\n", stored.InvoiceNumber, stored.ID)
	}
	return nil
}
