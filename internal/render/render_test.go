package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easeinvo/internal/invoice"
	"easeinvo/pkg/models"
)

func testInvoice() models.Invoice {
	return models.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-1234",
		Sender: models.BusinessDetails{
			Name:    "Creative Studio Pro",
			Address: "77 Digital Avenue",
			Email:   "contact@creativestudio.pro",
		},
		Client: models.ClientDetails{
			Name:  "Innovate Corp",
			Email: "accounts@innovate.co",
		},
		Items: []models.InvoiceItem{
			{ID: "a", Name: "Premium Service", Quantity: 1, Rate: 1200, Total: 1200},
			{ID: "b", Name: "Design Consulting", Quantity: 5, Rate: 150, Total: 750},
		},
		Currency:     "$",
		TaxRate:      10,
		DiscountRate: 0,
		Notes:        "Thanks.",
		Terms:        "Net 15.",
		Template:     models.TemplateModern,
		AccentColor:  "#1f2937",
	}
}

func renderFor(inv models.Invoice) *Document {
	return Render(inv, invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate))
}

func summaryKinds(doc *Document) []SummaryKind {
	kinds := make([]SummaryKind, len(doc.Summary))
	for i, row := range doc.Summary {
		kinds[i] = row.Kind
	}
	return kinds
}

func TestRenderItemRowsInOrder(t *testing.T) {
	doc := renderFor(testInvoice())

	require.Len(t, doc.Items, 2)
	assert.Equal(t, ItemRow{Name: "Premium Service", Quantity: "1", Rate: "$1,200", Amount: "$1,200"}, doc.Items[0])
	assert.Equal(t, ItemRow{Name: "Design Consulting", Quantity: "5", Rate: "$150", Amount: "$750"}, doc.Items[1])
}

func TestRenderConditionalSummaryLines(t *testing.T) {
	testCases := []struct {
		name         string
		taxRate      float64
		discountRate float64
		expected     []SummaryKind
	}{
		{"tax_only", 10, 0, []SummaryKind{SummarySubtotal, SummaryTax, SummaryTotal}},
		{"discount_only", 0, 5, []SummaryKind{SummarySubtotal, SummaryDiscount, SummaryTotal}},
		{"both", 10, 5, []SummaryKind{SummarySubtotal, SummaryTax, SummaryDiscount, SummaryTotal}},
		{"neither", 0, 0, []SummaryKind{SummarySubtotal, SummaryTotal}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := testInvoice()
			inv.TaxRate = tc.taxRate
			inv.DiscountRate = tc.discountRate

			doc := renderFor(inv)
			assert.Equal(t, tc.expected, summaryKinds(doc))
		})
	}
}

func TestRenderDiscountAmount(t *testing.T) {
	inv := testInvoice()
	inv.DiscountRate = 5 // subtotal 1950 -> discount 97.5

	doc := renderFor(inv)

	var discount *SummaryRow
	for i := range doc.Summary {
		if doc.Summary[i].Kind == SummaryDiscount {
			require.Nil(t, discount, "exactly one discount line")
			discount = &doc.Summary[i]
		}
	}
	require.NotNil(t, discount)
	assert.Equal(t, "-$97.5", discount.Amount)
	assert.Equal(t, "Discount (5%)", discount.Label)
}

func TestRenderUnknownTemplateFallsBackToModern(t *testing.T) {
	inv := testInvoice()
	inv.Template = models.Template("holographic")

	got := renderFor(inv)

	inv.Template = models.TemplateModern
	want := renderFor(inv)

	assert.Equal(t, want, got)
	assert.Equal(t, models.TemplateModern, got.Variant)
}

func TestRenderDeterministic(t *testing.T) {
	inv := testInvoice()

	assert.Equal(t, renderFor(inv), renderFor(inv))
}

func TestRenderDoesNotMutateInvoice(t *testing.T) {
	inv := testInvoice()
	before := inv.Clone()

	renderFor(inv)

	assert.Equal(t, before, inv)
}

func TestRenderLogoFallback(t *testing.T) {
	inv := testInvoice()

	doc := renderFor(inv)
	assert.Empty(t, doc.Header.LogoSrc)
	assert.Equal(t, "C", doc.Header.LogoFallback)

	inv.Sender.Logo = "logo.png"
	doc = renderFor(inv)
	assert.Equal(t, "logo.png", doc.Header.LogoSrc)

	inv.Sender.Logo = ""
	inv.Sender.Name = "études"
	doc = renderFor(inv)
	assert.Equal(t, "é", doc.Header.LogoFallback, "fallback is the first rune, not the first byte")
}

func TestRenderAccentSurfaces(t *testing.T) {
	testCases := []struct {
		template    models.Template
		accentBar   bool
		accentRule  bool
		accentTitle bool
	}{
		{models.TemplateModern, true, false, false},
		{models.TemplateClassic, false, true, true},
		{models.TemplateMinimal, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.template), func(t *testing.T) {
			inv := testInvoice()
			inv.Template = tc.template

			doc := renderFor(inv)

			assert.Equal(t, tc.accentBar, doc.Header.AccentBar)
			assert.Equal(t, tc.accentRule, doc.Header.AccentRule)
			assert.Equal(t, tc.accentTitle, doc.Header.AccentTitle)
			assert.Equal(t, "#1f2937", doc.Accent)

			total := doc.Summary[len(doc.Summary)-1]
			assert.Equal(t, SummaryTotal, total.Kind)
			assert.True(t, total.Accent, "every layout accents its total figure")
		})
	}
}

func TestRenderFileName(t *testing.T) {
	doc := renderFor(testInvoice())
	assert.Equal(t, "invoice-INV-1234.pdf", doc.FileName)
}

func TestRenderCurrencyPrefixVerbatim(t *testing.T) {
	inv := testInvoice()
	inv.Currency = "€"

	doc := renderFor(inv)

	assert.Equal(t, "€1,200", doc.Items[0].Amount)
	assert.Equal(t, "€2,145", doc.AmountDue)
}
