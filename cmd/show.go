package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [invoice-id]",
	Short: "Show an invoice with its computed totals",
	Long: `Print an invoice in full. Without an argument the current draft is
shown; with an identifier the matching saved invoice is shown.

With --json the invoice is emitted as indented JSON, suitable for backup or
for moving an invoice between machines.`,
	Example: `  # Inspect the current draft
  easeinvo show

  # Export a saved invoice as JSON
  easeinvo show 0b8e8c7a --json > invoice.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("json", false, "Emit the invoice as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}
	inv, err := resolveInvoice(cfg, st, id)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(inv)
	}

	totals := invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)

	state := "draft"
	if !inv.IsDraft() {
		state = "saved (id " + inv.ID + ")"
	}
	fmt.Printf("Invoice %s  [%s]\n", inv.InvoiceNumber, state)
	fmt.Printf("Template: %s  Accent: %s\n", inv.Template, inv.AccentColor)
	fmt.Printf("Issued %s, due %s\n\n", inv.IssueDate, inv.DueDate)
	fmt.Printf("From:   %s <%s>\n", inv.Sender.Name, inv.Sender.Email)
	fmt.Printf("BillTo: %s <%s>\n\n", inv.Client.Name, inv.Client.Email)

	for _, item := range inv.Items {
		fmt.Printf("  %-10s %-40q %8g x %-10s %12s\n",
			item.ID, item.Name, item.Quantity,
			render.Amount(inv.Currency, item.Rate),
			render.Amount(inv.Currency, item.Quantity*item.Rate))
	}

	fmt.Printf("\n%26s %12s\n", "Subtotal", render.Amount(inv.Currency, totals.Subtotal))
	if totals.Tax > 0 {
		fmt.Printf("%26s %12s\n", fmt.Sprintf("Tax (%g%%)", inv.TaxRate), render.Amount(inv.Currency, totals.Tax))
	}
	if totals.Discount > 0 {
		fmt.Printf("%26s %12s\n", fmt.Sprintf("Discount (%g%%)", inv.DiscountRate), "-"+render.Amount(inv.Currency, totals.Discount))
	}
	fmt.Printf("%26s %12s\n", "Total", render.Amount(inv.Currency, totals.Total))
	return nil
}
