package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/pdf"
	"easeinvo/internal/render"
	"easeinvo/pkg/models"
)

var exportCmd = &cobra.Command{
	Use:   "export [invoice-id]",
	Short: "Export an invoice to a single-page A4 PDF",
	Long: `Render an invoice in its selected visual template and capture it as
a print-resolution, single-page A4 PDF. The file is named
invoice-{invoiceNumber}.pdf and written to the export directory
(EASEINVO_EXPORT_DIR, default the current directory).

Without an argument the current draft is exported; with an identifier the
matching saved invoice is exported.`,
	Example: `  # Export the current draft into the working directory
  easeinvo export

  # Export a saved invoice to a specific directory
  easeinvo export 0b8e8c7a -d ~/invoices`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("dir", "d", "", "Directory to write the PDF into (default: EASEINVO_EXPORT_DIR)")
	exportCmd.Flags().String("template", "", "Export with this template instead of the invoice's own")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	if override, _ := cmd.Flags().GetString("template"); override != "" {
		inv.Template = models.Template(override)
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.ExportDir
	}

	totals := invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)
	doc := render.Render(inv, totals)

	path, err := pdf.NewExporter().ExportFile(doc, dir)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %s (%s layout) to %s\n", inv.InvoiceNumber, doc.Variant, path)
	return nil
}
