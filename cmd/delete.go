package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <invoice-id>",
	Short: "Delete a saved invoice from the history",
	Long: `Remove the invoice with the given identifier from the saved history.
Deletion is permanent; the command asks for confirmation unless --yes is
given. Deleting an identifier that is not in the history is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("delete")

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm("Delete this record permanently from history?") {
		fmt.Println("Aborted.")
		return nil
	}

	_, st, err := openStore()
	if err != nil {
		return err
	}

	id := args[0]
	before := st.LoadInvoices()
	after := invoice.Delete(id, before)
	if err := st.SaveInvoices(after); err != nil {
		return err
	}

	if len(after) == len(before) {
		log.Info().Str("id", id).Msg("Delete was a no-op, id not in history")
		fmt.Printf("No invoice with id %s in history.\n", id)
		return nil
	}

	log.Info().Str("id", id).Int("history_size", len(after)).Msg("Invoice deleted")
	fmt.Printf("Deleted %s. History now holds %d invoice(s).\n", id, len(after))
	return nil
}
