package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easeinvo/pkg/models"
)

func renderHTML(t *testing.T, inv models.Invoice) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, renderFor(inv)))
	return buf.String()
}

func TestWriteHTMLContainsInvoiceData(t *testing.T) {
	html := renderHTML(t, testInvoice())

	assert.Contains(t, html, "#INV-1234")
	assert.Contains(t, html, "Creative Studio Pro")
	assert.Contains(t, html, "Innovate Corp")
	assert.Contains(t, html, "Premium Service")
	assert.Contains(t, html, "$2,145")
	assert.Contains(t, html, `id="invoice-capture-area"`, "export needs an addressable capture surface")
	assert.Contains(t, html, "210mm", "document is authored at the nominal A4 size")
}

func TestWriteHTMLByteForByteIdentical(t *testing.T) {
	inv := testInvoice()

	first := renderHTML(t, inv)
	second := renderHTML(t, inv)

	assert.Equal(t, first, second)
}

func TestWriteHTMLOmitsZeroRateLines(t *testing.T) {
	inv := testInvoice() // taxRate 10, discountRate 0
	html := renderHTML(t, inv)

	assert.Contains(t, html, "Tax (10%)")
	assert.NotContains(t, html, "Discount")

	inv.TaxRate = 0
	inv.DiscountRate = 5
	html = renderHTML(t, inv)

	assert.NotContains(t, html, "Tax (")
	assert.Contains(t, html, "Discount (5%)")
	assert.Contains(t, html, "-$97.5")
}

func TestWriteHTMLEscapesUserText(t *testing.T) {
	inv := testInvoice()
	inv.Client.Name = `<script>alert("x")</script>`

	html := renderHTML(t, inv)

	assert.NotContains(t, html, "<script>alert")
}

func TestWriteHTMLPerVariant(t *testing.T) {
	for _, tmpl := range []models.Template{models.TemplateModern, models.TemplateClassic, models.TemplateMinimal} {
		t.Run(string(tmpl), func(t *testing.T) {
			inv := testInvoice()
			inv.Template = tmpl

			html := renderHTML(t, inv)

			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, "#1f2937", "accent color reaches the markup")
			assert.Contains(t, html, "Design Consulting")
		})
	}
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, "1,950", Number(1950))
	assert.Equal(t, "879.75", Number(879.75))
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "1,234,567", Number(1234567))
	assert.Equal(t, "$10,712.25", Amount("$", 10712.25))
	assert.Equal(t, "₹500", Amount("₹", 500))
}
