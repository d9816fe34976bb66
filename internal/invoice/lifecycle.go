// Package invoice holds the invoice computation pipeline: the totals
// calculator and the pure lifecycle operations that create, edit, save and
// delete invoices.
//
// Every operation in this package is a pure transformation. Inputs are never
// mutated; callers commit the returned values as the new current state and
// are responsible for persisting them through the store.
package invoice

import (
	"github.com/google/uuid"

	"easeinvo/pkg/models"
)

// ItemPatch is a partial update for a single line item. Nil fields are left
// unchanged. The item's Total is always recomputed from the post-merge
// quantity and rate; it cannot be set directly.
type ItemPatch struct {
	Name     *string
	Quantity *float64
	Rate     *float64
}

// Save commits the current invoice into the saved collection.
//
// A draft gets a newly minted permanent identifier and is prepended to the
// collection. An invoice that already carries a permanent identifier
// replaces the existing entry with that identifier in place, preserving the
// order of the rest of the collection. The invoice as stored and the new
// collection are returned; the inputs are left untouched.
func Save(current models.Invoice, saved []models.Invoice) (models.Invoice, []models.Invoice) {
	stored := current.Clone()
	if stored.IsDraft() {
		stored.ID = uuid.NewString()
	}

	for i, inv := range saved {
		if inv.ID == stored.ID {
			out := make([]models.Invoice, len(saved))
			copy(out, saved)
			out[i] = stored
			return stored, out
		}
	}

	out := make([]models.Invoice, 0, len(saved)+1)
	out = append(out, stored)
	out = append(out, saved...)
	return stored, out
}

// Delete removes the invoice with the given identifier from the collection.
// Deleting an identifier that is not present is a no-op, not an error.
func Delete(id string, saved []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, 0, len(saved))
	for _, inv := range saved {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	return out
}

// Reset returns the default invoice for "start over" semantics, equivalent
// to creating a fresh draft. Discarding the current draft is the caller's
// decision; a confirmation step belongs at the interface boundary, not here.
func Reset() models.Invoice {
	return NewDraft()
}

// UpdateItem merges the patch into the matching line item and recomputes its
// cached total from the post-merge quantity and rate. An unknown item
// identifier leaves the invoice unchanged.
func UpdateItem(inv models.Invoice, itemID string, patch ItemPatch) models.Invoice {
	out := inv.Clone()
	for i := range out.Items {
		if out.Items[i].ID != itemID {
			continue
		}
		item := &out.Items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Rate != nil {
			item.Rate = *patch.Rate
		}
		item.Total = item.Quantity * item.Rate
		break
	}
	return out
}

// AddItem appends a new empty line item with quantity 1, rate 0 and a fresh
// unique identifier.
func AddItem(inv models.Invoice) models.Invoice {
	out := inv.Clone()
	out.Items = append(out.Items, models.InvoiceItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	})
	return out
}

// RemoveItem returns the invoice with the matching line item excluded.
// Removing an unknown identifier is a no-op.
func RemoveItem(inv models.Invoice, itemID string) models.Invoice {
	out := inv.Clone()
	items := make([]models.InvoiceItem, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	out.Items = items
	return out
}
