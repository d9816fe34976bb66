package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats figures with locale-aware grouping separators. Formatting
// is a presentation concern only; the calculator itself returns exact values.
var printer = message.NewPrinter(language.English)

// Number formats a numeric figure with thousands separators, e.g. 1950 ->
// "1,950" and 879.75 -> "879.75". Trailing zero fractions are not padded.
func Number(v float64) string {
	return printer.Sprint(number.Decimal(v))
}

// Amount prefixes a formatted figure with the invoice's currency symbol,
// concatenated verbatim. The symbol is display-only and never validated
// against a currency list.
func Amount(currency string, v float64) string {
	return currency + Number(v)
}
