package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
	"easeinvo/internal/store"
	"easeinvo/pkg/models"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit fields of the current draft or a saved invoice",
	Long: `Update invoice fields. Without --id the current draft is edited and
kept in the draft slot; with --id the matching saved invoice is edited and
written back to the history in place.

Dates are ISO formatted (2006-01-02). The currency is a display symbol and is
prefixed to every figure exactly as given; no conversion or validation against
a currency list happens. An unknown --template value is stored as-is and falls
back to the modern layout at render time.`,
	Example: `  # Fill in the client block of the current draft
  easeinvo set --client-name "Innovate Corp" --client-email accounts@innovate.co

  # Switch a saved invoice to the minimal layout with a blue accent
  easeinvo set --id 0b8e8c7a --template minimal --accent "#0f172a"`,
	Args: cobra.NoArgs,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().String("id", "", "Saved invoice to edit (default: current draft)")
	setCmd.Flags().String("number", "", "Display invoice number")
	setCmd.Flags().String("issue-date", "", "Issue date (2006-01-02)")
	setCmd.Flags().String("due-date", "", "Due date (2006-01-02)")
	setCmd.Flags().String("sender-name", "", "Sender business name")
	setCmd.Flags().String("sender-address", "", "Sender address")
	setCmd.Flags().String("sender-email", "", "Sender email")
	setCmd.Flags().String("sender-phone", "", "Sender phone")
	setCmd.Flags().String("sender-logo", "", "Path to the sender logo image")
	setCmd.Flags().String("client-name", "", "Client name")
	setCmd.Flags().String("client-address", "", "Client address")
	setCmd.Flags().String("client-email", "", "Client email")
	setCmd.Flags().String("client-phone", "", "Client phone")
	setCmd.Flags().String("currency", "", "Currency symbol prefixed to every figure")
	setCmd.Flags().Float64("tax-rate", 0, "Tax rate in percent")
	setCmd.Flags().Float64("discount-rate", 0, "Discount rate in percent")
	setCmd.Flags().String("notes", "", "Free-text notes")
	setCmd.Flags().String("terms", "", "Payment terms")
	setCmd.Flags().String("template", "", "Visual template: modern, classic or minimal")
	setCmd.Flags().String("accent", "", "Accent color, e.g. \"#1f2937\"")
}

func runSet(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("set")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetString("id")
	inv, err := resolveInvoice(cfg, st, id)
	if err != nil {
		return err
	}

	setString := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			*dst = v
		}
	}
	setDate := func(flag string, dst *models.DateOnly) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		v, _ := cmd.Flags().GetString(flag)
		var d models.DateOnly
		if err := d.UnmarshalJSON([]byte(fmt.Sprintf("%q", v))); err != nil {
			return fmt.Errorf("invalid %s %q: expected 2006-01-02", flag, v)
		}
		*dst = d
		return nil
	}

	setString("number", &inv.InvoiceNumber)
	setString("sender-name", &inv.Sender.Name)
	setString("sender-address", &inv.Sender.Address)
	setString("sender-email", &inv.Sender.Email)
	setString("sender-phone", &inv.Sender.Phone)
	setString("sender-logo", &inv.Sender.Logo)
	setString("client-name", &inv.Client.Name)
	setString("client-address", &inv.Client.Address)
	setString("client-email", &inv.Client.Email)
	setString("client-phone", &inv.Client.Phone)
	setString("currency", &inv.Currency)
	setString("notes", &inv.Notes)
	setString("terms", &inv.Terms)
	setString("accent", &inv.AccentColor)
	if err := setDate("issue-date", &inv.IssueDate); err != nil {
		return err
	}
	if err := setDate("due-date", &inv.DueDate); err != nil {
		return err
	}
	if cmd.Flags().Changed("tax-rate") {
		inv.TaxRate, _ = cmd.Flags().GetFloat64("tax-rate")
	}
	if cmd.Flags().Changed("discount-rate") {
		inv.DiscountRate, _ = cmd.Flags().GetFloat64("discount-rate")
	}
	if cmd.Flags().Changed("template") {
		v, _ := cmd.Flags().GetString("template")
		inv.Template = models.Template(v)
		if !inv.Template.Valid() {
			log.Warn().Str("template", v).Msg("Unknown template, will render as modern")
		}
	}

	if err := commitEdited(st, inv); err != nil {
		return err
	}

	log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("Invoice updated")
	fmt.Printf("Updated %s\n", inv.InvoiceNumber)
	return nil
}

// commitEdited routes an edited invoice back to where it lives: the draft
// slot for drafts, the history (replaced in place) for saved invoices.
func commitEdited(st *store.Store, inv models.Invoice) error {
	if inv.IsDraft() {
		return commit(st, inv)
	}
	_, collection := invoice.Save(inv, st.LoadInvoices())
	return st.SaveInvoices(collection)
}
