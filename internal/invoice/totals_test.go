package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"easeinvo/pkg/models"
)

func TestComputeTotals(t *testing.T) {
	testCases := []struct {
		name         string
		items        []models.InvoiceItem
		taxRate      float64
		discountRate float64
		expected     Totals
	}{
		{
			name: "tax_only",
			items: []models.InvoiceItem{
				{ID: "1", Quantity: 1, Rate: 1200},
				{ID: "2", Quantity: 5, Rate: 150},
			},
			taxRate:      10,
			discountRate: 0,
			expected:     Totals{Subtotal: 1950, Tax: 195, Discount: 0, Total: 2145},
		},
		{
			name:         "empty_items",
			items:        nil,
			taxRate:      10,
			discountRate: 5,
			expected:     Totals{},
		},
		{
			name: "fractional_rates",
			items: []models.InvoiceItem{
				{ID: "1", Quantity: 1, Rate: 2500},
				{ID: "2", Quantity: 40, Rate: 125},
				{ID: "3", Quantity: 1, Rate: 1500},
				{ID: "4", Quantity: 3, Rate: 450},
			},
			taxRate:      8.5,
			discountRate: 5,
			expected:     Totals{Subtotal: 10350, Tax: 879.75, Discount: 517.5, Total: 10712.25},
		},
		{
			name: "negative_quantity_propagates",
			items: []models.InvoiceItem{
				{ID: "1", Quantity: 2, Rate: 100},
				{ID: "2", Quantity: -1, Rate: 50},
			},
			taxRate:      0,
			discountRate: 0,
			expected:     Totals{Subtotal: 150, Total: 150},
		},
		{
			name: "discount_exceeds_tax",
			items: []models.InvoiceItem{
				{ID: "1", Quantity: 1, Rate: 100},
			},
			taxRate:      5,
			discountRate: 20,
			expected:     Totals{Subtotal: 100, Tax: 5, Discount: 20, Total: 85},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.taxRate, tc.discountRate)

			assert.InDelta(t, tc.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.expected.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tc.expected.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tc.expected.Total, got.Total, 1e-9)
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []models.InvoiceItem{
		{ID: "1", Quantity: 3, Rate: 99.99},
		{ID: "2", Quantity: 7, Rate: 12.5},
	}

	first := ComputeTotals(items, 8.5, 2.5)
	second := ComputeTotals(items, 8.5, 2.5)

	assert.Equal(t, first, second)
}

func TestComputeTotalsDoesNotMutateItems(t *testing.T) {
	items := []models.InvoiceItem{{ID: "1", Name: "Service", Quantity: 2, Rate: 50, Total: 100}}
	before := items[0]

	ComputeTotals(items, 10, 5)

	assert.Equal(t, before, items[0])
}
