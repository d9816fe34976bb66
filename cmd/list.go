package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved invoice history",
	Long: `Show the saved invoice history, newest first. The totals shown are
derived from each invoice's line items and rates; they are never stored.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}

	invoices := st.LoadInvoices()
	if len(invoices) == 0 {
		fmt.Println("No saved invoices yet. Create one with \"easeinvo new\" and save it with \"easeinvo save\".")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tISSUED\tDUE\tTOTAL")
	for _, inv := range invoices {
		totals := invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inv.ID, inv.InvoiceNumber, inv.Client.Name, inv.IssueDate, inv.DueDate,
			render.Amount(inv.Currency, totals.Total))
	}
	return w.Flush()
}
