package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current draft and start over",
	Long: `Reset the current draft to the initial template, discarding all
unsaved edits. Saved invoices are not affected. The command asks for
confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// confirm asks a destructive-action question on the terminal. The lifecycle
// operations themselves carry no confirmation semantics; that belongs here at
// the interface boundary.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func runReset(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("reset")

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm("Reset to initial template? This will clear the current draft") {
		fmt.Println("Aborted.")
		return nil
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	inv := applyDefaults(invoice.Reset(), cfg)
	if err := commit(st, inv); err != nil {
		return err
	}

	log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("Draft reset to defaults")
	fmt.Printf("Draft reset. New invoice number: %s\n", inv.InvoiceNumber)
	return nil
}
