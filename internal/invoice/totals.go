package invoice

import "easeinvo/pkg/models"

// Totals is the derived monetary summary of an invoice. All four figures are
// computed on demand from the line items and rates; none is ever persisted.
type Totals struct {
	Subtotal float64
	Tax      float64
	Discount float64
	Total    float64
}

// ComputeTotals derives the monetary summary from the line items and the tax
// and discount percentages.
//
// The arithmetic is exact: no rounding is applied here, and display
// formatting (thousands separators, decimal places) is left to the render
// layer. Negative quantities or rates are not rejected and propagate through
// the sums, which permits credit and refund lines. An empty item slice
// yields all zeros.
func ComputeTotals(items []models.InvoiceItem, taxRatePercent, discountRatePercent float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.Rate
	}

	tax := subtotal * taxRatePercent / 100
	discount := subtotal * discountRatePercent / 100

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal + tax - discount,
	}
}
