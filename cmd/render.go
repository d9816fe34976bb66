package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
	"easeinvo/internal/render"
	"easeinvo/pkg/models"
)

var renderCmd = &cobra.Command{
	Use:   "render [invoice-id]",
	Short: "Render an invoice to an HTML document",
	Long: `Lay out an invoice in its selected visual template and write the
HTML document. Without an argument the current draft is rendered; with an
identifier the matching saved invoice is rendered.

The document is authored at a fixed A4 page size so that the HTML preview and
the PDF export share identical geometry. An invoice whose stored template is
not one of modern, classic or minimal renders with the modern layout.`,
	Example: `  # Preview the current draft
  easeinvo render -o preview.html

  # Render a saved invoice with a one-off template override
  easeinvo render 0b8e8c7a --template classic -o invoice.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().String("template", "", "Render with this template instead of the invoice's own")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("render")

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

	totals := invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)
	doc := render.Render(inv, totals)

	out := os.Stdout
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := render.WriteHTML(out, doc); err != nil {
		return err
	}

	log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("template", string(doc.Variant)).
		Str("output", outputPath).
		Msg("Invoice rendered")

	if outputPath != "" {
		fmt.Printf("Rendered %s (%s layout) to %s\n", inv.InvoiceNumber, doc.Variant, outputPath)
	}
	return nil
}
