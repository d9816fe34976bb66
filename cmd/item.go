package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"easeinvo/internal/invoice"
	"easeinvo/internal/logger"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage the line items of an invoice",
	Long: `Add, update or remove line items. Without --id the current draft is
edited; with --id the matching saved invoice is edited in place.

A line's amount is always quantity times rate; it is recomputed on every edit
and cannot be set directly. Negative quantities and rates are accepted and
flow through the totals, which allows credit or refund lines.`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a new line item",
	Example: `  # Add and immediately fill a line
  easeinvo item add --name "Design Consulting" --quantity 5 --rate 150`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <item-id>",
	Short: "Update a line item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemSet,
}

var itemRemoveCmd = &cobra.Command{
	Use:     "rm <item-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a line item",
	Args:    cobra.ExactArgs(1),
	RunE:    runItemRemove,
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd, itemSetCmd, itemRemoveCmd)

	itemCmd.PersistentFlags().String("id", "", "Saved invoice to edit (default: current draft)")

	for _, c := range []*cobra.Command{itemAddCmd, itemSetCmd} {
		c.Flags().String("name", "", "Item description")
		c.Flags().Float64("quantity", 0, "Units billed")
		c.Flags().Float64("rate", 0, "Currency units per unit")
	}
}

// itemPatch collects the name/quantity/rate flags that were actually set.
func itemPatch(cmd *cobra.Command) invoice.ItemPatch {
	var patch invoice.ItemPatch
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		patch.Name = &v
	}
	if cmd.Flags().Changed("quantity") {
		v, _ := cmd.Flags().GetFloat64("quantity")
		patch.Quantity = &v
	}
	if cmd.Flags().Changed("rate") {
		v, _ := cmd.Flags().GetFloat64("rate")
		patch.Rate = &v
	}
	return patch
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	inv, err := resolveInvoice(cfg, st, id)
	if err != nil {
		return err
	}

	inv = invoice.AddItem(inv)
	newItem := inv.Items[len(inv.Items)-1]
	if patch := itemPatch(cmd); patch != (invoice.ItemPatch{}) {
		inv = invoice.UpdateItem(inv, newItem.ID, patch)
		newItem = inv.Items[len(inv.Items)-1]
	}

	if err := commitEdited(st, inv); err != nil {
		return err
	}

	log.Info().Str("item_id", newItem.ID).Msg("Line item added")
	fmt.Printf("Added item %s (%q, qty %g, rate %g)\n", newItem.ID, newItem.Name, newItem.Quantity, newItem.Rate)
	return nil
}

func runItemSet(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	inv, err := resolveInvoice(cfg, st, id)
	if err != nil {
		return err
	}

	itemID := args[0]
	found := false
	for _, item := range inv.Items {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no line item with id %q on invoice %s", itemID, inv.InvoiceNumber)
	}

	inv = invoice.UpdateItem(inv, itemID, itemPatch(cmd))
	if err := commitEdited(st, inv); err != nil {
		return err
	}

	log.Info().Str("item_id", itemID).Msg("Line item updated")
	fmt.Printf("Updated item %s\n", itemID)
	return nil
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("item")

	cfg, st, err := openStore()
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	inv, err := resolveInvoice(cfg, st, id)
	if err != nil {
		return err
	}

	inv = invoice.RemoveItem(inv, args[0])
	if err := commitEdited(st, inv); err != nil {
		return err
	}

	log.Info().Str("item_id", args[0]).Msg("Line item removed")
	fmt.Printf("Invoice %s now has %d item(s)\n", inv.InvoiceNumber, len(inv.Items))
	return nil
}
