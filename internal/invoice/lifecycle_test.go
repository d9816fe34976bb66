package invoice

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easeinvo/pkg/models"
)

func TestNewDraft(t *testing.T) {
	inv := NewDraft()

	assert.True(t, inv.IsDraft())
	assert.Regexp(t, regexp.MustCompile(`^INV-\d{4}$`), inv.InvoiceNumber)
	assert.Equal(t, models.TemplateModern, inv.Template)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, inv.Items[0].Quantity*inv.Items[0].Rate, inv.Items[0].Total)
	assert.NotEqual(t, inv.Items[0].ID, inv.Items[1].ID)
	assert.Equal(t, inv.IssueDate.AddDate(0, 0, 7), inv.DueDate.Time)
}

func TestNewSample(t *testing.T) {
	inv := NewSample()

	assert.True(t, inv.IsDraft(), "sample must not enter the history until saved")
	assert.Equal(t, "INV-SAMPLE-2025", inv.InvoiceNumber)
	require.Len(t, inv.Items, 4)

	totals := ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)
	assert.InDelta(t, 10350.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 879.75, totals.Tax, 1e-9)
	assert.InDelta(t, 517.5, totals.Discount, 1e-9)
	assert.InDelta(t, 10712.25, totals.Total, 1e-9)
}

func TestSaveMintsIDAndPrepends(t *testing.T) {
	draft := NewDraft()
	existing := persisted(t, "older")

	stored, collection := Save(draft, []models.Invoice{existing})

	assert.False(t, stored.IsDraft())
	assert.NotEmpty(t, stored.ID)
	require.Len(t, collection, 2)
	assert.Equal(t, stored.ID, collection[0].ID, "drafts are prepended")
	assert.Equal(t, existing.ID, collection[1].ID)

	// The input draft is untouched.
	assert.True(t, draft.IsDraft())
}

func TestSaveReplacesInPlace(t *testing.T) {
	first := persisted(t, "first")
	second := persisted(t, "second")
	third := persisted(t, "third")
	collection := []models.Invoice{first, second, third}

	edited := second.Clone()
	edited.Notes = "edited"

	stored, got := Save(edited, collection)

	assert.Equal(t, second.ID, stored.ID, "persisted id is kept")
	require.Len(t, got, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, ids(got), "order preserved")
	assert.Equal(t, "edited", got[1].Notes)
	assert.NotEqual(t, "edited", collection[1].Notes, "input collection untouched")
}

func TestSaveTwiceKeepsSingleEntry(t *testing.T) {
	draft := NewDraft()

	stored, collection := Save(draft, nil)
	require.Len(t, collection, 1)

	stored.Notes = "second pass"
	again, collection := Save(stored, collection)

	assert.Equal(t, stored.ID, again.ID)
	require.Len(t, collection, 1, "re-saving must not duplicate the entry")
	assert.Equal(t, "second pass", collection[0].Notes)
}

func TestDelete(t *testing.T) {
	a := persisted(t, "a")
	b := persisted(t, "b")
	collection := []models.Invoice{a, b}

	got := Delete(a.ID, collection)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	// Unknown id is a no-op, not an error.
	same := Delete("no-such-id", collection)
	assert.Equal(t, ids(collection), ids(same))
}

func TestUpdateItemRecomputesTotal(t *testing.T) {
	inv := NewDraft()
	target := inv.Items[0]

	qty := 4.0
	rate := 25.5
	name := "Adjusted"

	testCases := []struct {
		name     string
		patch    ItemPatch
		expected float64
	}{
		{"quantity_only", ItemPatch{Quantity: &qty}, qty * target.Rate},
		{"rate_only", ItemPatch{Rate: &rate}, target.Quantity * rate},
		{"both", ItemPatch{Quantity: &qty, Rate: &rate}, qty * rate},
		{"name_only", ItemPatch{Name: &name}, target.Quantity * target.Rate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdateItem(inv, target.ID, tc.patch)

			item := got.Items[0]
			assert.InDelta(t, tc.expected, item.Total, 1e-9, "total follows post-merge quantity and rate")
			assert.Equal(t, target.Total, inv.Items[0].Total, "input invoice untouched")
		})
	}
}

func TestUpdateItemUnknownIDIsNoop(t *testing.T) {
	inv := NewDraft()
	qty := 99.0

	got := UpdateItem(inv, "no-such-item", ItemPatch{Quantity: &qty})

	assert.Equal(t, inv.Items, got.Items)
}

func TestAddItem(t *testing.T) {
	inv := NewDraft()
	require.Len(t, inv.Items, 2)

	got := AddItem(inv)

	require.Len(t, got.Items, 3)
	added := got.Items[2]
	assert.Empty(t, added.Name)
	assert.Equal(t, 1.0, added.Quantity)
	assert.Zero(t, added.Rate)
	assert.Zero(t, added.Total)
	assert.NotEqual(t, added.ID, got.Items[0].ID)
	assert.NotEqual(t, added.ID, got.Items[1].ID)
	assert.Len(t, inv.Items, 2, "input invoice untouched")
}

func TestRemoveItem(t *testing.T) {
	inv := NewDraft()
	first := inv.Items[0].ID

	got := RemoveItem(inv, first)
	require.Len(t, got.Items, 1)
	assert.NotEqual(t, first, got.Items[0].ID)

	// Unknown id is a no-op.
	same := RemoveItem(inv, "no-such-item")
	assert.Equal(t, inv.Items, same.Items)
}

func persisted(t *testing.T, notes string) models.Invoice {
	t.Helper()
	stored, _ := Save(NewDraft(), nil)
	stored.Notes = notes
	return stored
}

func ids(invoices []models.Invoice) []string {
	out := make([]string, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.ID
	}
	return out
}
