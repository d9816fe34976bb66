// Package render projects an invoice and its computed totals into a laid-out
// document in one of the fixed visual templates, ready for screen display or
// PDF capture.
package render

import (
	"easeinvo/internal/invoice"
	"easeinvo/pkg/models"
)

// Nominal page size in millimetres. The document is always authored at A4
// regardless of how it is displayed, because the export path captures it at
// this fixed size.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// SummaryKind tags the rows of the totals summary block.
type SummaryKind string

const (
	SummarySubtotal SummaryKind = "subtotal"
	SummaryTax      SummaryKind = "tax"
	SummaryDiscount SummaryKind = "discount"
	SummaryTotal    SummaryKind = "total"
)

// Header is the document's top block: title, invoice number, logo and the
// issue/due dates.
type Header struct {
	Title        string // Fixed "INVOICE" wordmark
	Number       string // Display invoice number
	LogoSrc      string // Image path or data URI; empty when the sender has no logo
	LogoFallback string // Placeholder derived from the sender name when LogoSrc is empty
	IssueDate    string
	DueDate      string

	// Accent surface assignments. The template decides which of these the
	// accent color lands on; the values themselves are layout-independent.
	AccentBar   bool // Full-width bar above the header (modern)
	AccentRule  bool // Rule under the header block (classic)
	AccentTitle bool // Colored title wordmark (classic)
}

// Party is one of the sender/client blocks.
type Party struct {
	Label   string // "From" / "Bill To"
	Name    string
	Address string
	Email   string
	Phone   string
}

// ItemRow is one formatted line of the item table, in insertion order.
type ItemRow struct {
	Name     string
	Quantity string
	Rate     string // Currency-prefixed unit rate
	Amount   string // Currency-prefixed quantity*rate
}

// SummaryRow is one formatted line of the totals summary block.
type SummaryRow struct {
	Kind   SummaryKind
	Label  string
	Amount string // Currency-prefixed; discounts carry a leading minus
	Accent bool   // Whether the template colors this row with the accent
}

// NoteBlock is a labelled free-text section (notes, terms).
type NoteBlock struct {
	Label string
	Text  string
}

// Document is the structured visual document produced by Render. Given
// identical invoice, totals and template selector, the document is
// byte-for-byte identical; rendering never mutates the invoice.
type Document struct {
	Variant  models.Template // Resolved layout; never an unknown value
	Accent   string          // Accent color applied to the designated surfaces
	FileName string          // Suggested export file name

	Header  Header
	Sender  Party
	Client  Party
	Items   []ItemRow
	Summary []SummaryRow

	// AmountDue is the headline total figure some layouts repeat outside the
	// summary block (modern's "Total Amount Due" card). Always populated;
	// layouts that do not show it simply ignore it.
	AmountDue string

	Notes NoteBlock
	Terms NoteBlock
}

// Render builds the document for the invoice's selected template. An
// unrecognized template identifier falls back to the modern layout; the
// renderer never fails for that input class.
func Render(inv models.Invoice, totals invoice.Totals) *Document {
	variant := inv.Template
	if !variant.Valid() {
		variant = models.TemplateModern
	}

	doc := &Document{
		Variant:  variant,
		Accent:   inv.AccentColor,
		FileName: "invoice-" + inv.InvoiceNumber + ".pdf",
		Header: Header{
			Title:        "INVOICE",
			Number:       inv.InvoiceNumber,
			LogoSrc:      inv.Sender.Logo,
			LogoFallback: logoFallback(inv.Sender.Name),
			IssueDate:    inv.IssueDate.String(),
			DueDate:      inv.DueDate.String(),
		},
		Sender: Party{
			Label:   "From",
			Name:    inv.Sender.Name,
			Address: inv.Sender.Address,
			Email:   inv.Sender.Email,
			Phone:   inv.Sender.Phone,
		},
		Client: Party{
			Label:   "Billed To",
			Name:    inv.Client.Name,
			Address: inv.Client.Address,
			Email:   inv.Client.Email,
			Phone:   inv.Client.Phone,
		},
		AmountDue: Amount(inv.Currency, totals.Total),
	}

	for _, item := range inv.Items {
		doc.Items = append(doc.Items, ItemRow{
			Name:     item.Name,
			Quantity: Number(item.Quantity),
			Rate:     Amount(inv.Currency, item.Rate),
			Amount:   Amount(inv.Currency, item.Quantity*item.Rate),
		})
	}

	doc.Summary = summaryRows(inv, totals, variant)
	applyAccents(doc, variant)

	doc.Notes = NoteBlock{Label: "Notes", Text: inv.Notes}
	doc.Terms = NoteBlock{Label: "Terms", Text: inv.Terms}
	return doc
}

// summaryRows assembles the totals block. The tax row appears only when tax
// is positive and the discount row only when the discount is positive; a zero
// rate omits the row entirely rather than showing a zero figure.
func summaryRows(inv models.Invoice, totals invoice.Totals, variant models.Template) []SummaryRow {
	rows := []SummaryRow{
		{Kind: SummarySubtotal, Label: "Subtotal", Amount: Amount(inv.Currency, totals.Subtotal)},
	}
	if totals.Tax > 0 {
		rows = append(rows, SummaryRow{
			Kind:   SummaryTax,
			Label:  "Tax (" + Number(inv.TaxRate) + "%)",
			Amount: Amount(inv.Currency, totals.Tax),
		})
	}
	if totals.Discount > 0 {
		rows = append(rows, SummaryRow{
			Kind:   SummaryDiscount,
			Label:  "Discount (" + Number(inv.DiscountRate) + "%)",
			Amount: "-" + Amount(inv.Currency, totals.Discount),
		})
	}
	label := "Total"
	if variant == models.TemplateModern {
		label = "Total Due"
	}
	rows = append(rows, SummaryRow{Kind: SummaryTotal, Label: label, Amount: Amount(inv.Currency, totals.Total)})
	return rows
}

// applyAccents assigns the accent color to the surfaces each layout
// designates. The three layouts differ in which elements receive the accent,
// never in whether accenting happens.
func applyAccents(doc *Document, variant models.Template) {
	switch variant {
	case models.TemplateClassic:
		// Header rule, colored title and the total row.
		doc.Header.AccentRule = true
		doc.Header.AccentTitle = true
		markSummaryAccent(doc, SummaryTotal)
	case models.TemplateMinimal:
		// The dark summary card is the single accent surface.
		markSummaryAccent(doc, SummaryTotal)
	default:
		// Modern: header bar, the amount-due figure and the total row.
		doc.Header.AccentBar = true
		markSummaryAccent(doc, SummaryTotal)
	}
}

func markSummaryAccent(doc *Document, kind SummaryKind) {
	for i := range doc.Summary {
		if doc.Summary[i].Kind == kind {
			doc.Summary[i].Accent = true
		}
	}
}

// logoFallback derives the deterministic logo placeholder from the sender
// name: its first character, or empty when there is no name to derive from.
func logoFallback(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
