package models

import (
	"encoding/json"
	"time"
)

// Template identifies one of the fixed visual layouts an invoice can be
// rendered with. The set is closed; unknown values fall back to
// TemplateModern at render time.
type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateMinimal Template = "minimal"
)

// Valid reports whether t names one of the known layouts.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal:
		return true
	}
	return false
}

// DraftID is the sentinel identifier carried by an invoice that has not been
// saved yet. A permanent identifier is minted at first save.
const DraftID = "temp-id"

// DateOnly is a calendar date serialized as an ISO "2006-01-02" string.
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to its calendar date.
func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON accepts "2006-01-02" strings; empty and null mean no date.
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON emits the date as a "2006-01-02" string, or null when unset.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// String returns the ISO date, or the empty string when unset.
func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// InvoiceItem is a single billable line on an invoice.
//
// Total is a cached derived value: it is recomputed as Quantity*Rate whenever
// either factor changes and is never authoritative on its own.
type InvoiceItem struct {
	ID       string  `json:"id"`       // Unique within one invoice, not globally
	Name     string  `json:"name"`     // Free-text description
	Quantity float64 `json:"quantity"` // Units billed
	Rate     float64 `json:"rate"`     // Currency units per unit
	Total    float64 `json:"total"`    // Quantity * Rate, cached
}

// BusinessDetails describes the party issuing the invoice.
type BusinessDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Logo    string `json:"logo,omitempty"` // Optional image file path or data URI
}

// ClientDetails describes the party being billed. Structurally close to
// BusinessDetails but semantically distinct: clients carry no logo.
type ClientDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Invoice is the aggregate root of the editing and rendering pipeline.
//
// Monetary figures (subtotal, tax, discount, total) are never stored on the
// invoice; they are derived on demand from Items, TaxRate and DiscountRate.
type Invoice struct {
	ID            string          `json:"id"` // DraftID until first save
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     DateOnly        `json:"issue_date"`
	DueDate       DateOnly        `json:"due_date"`
	Sender        BusinessDetails `json:"sender"`
	Client        ClientDetails   `json:"client"`
	Items         []InvoiceItem   `json:"items"`         // Insertion order, preserved through edits
	Currency      string          `json:"currency"`      // Display symbol, prefixed verbatim
	TaxRate       float64         `json:"tax_rate"`      // Percent, may be fractional
	DiscountRate  float64         `json:"discount_rate"` // Percent, may be fractional
	Notes         string          `json:"notes"`
	Terms         string          `json:"terms"`
	Template      Template        `json:"template"`
	AccentColor   string          `json:"accent_color"` // Hex color, e.g. "#000000"
}

// IsDraft reports whether the invoice still carries the draft sentinel.
func (inv Invoice) IsDraft() bool {
	return inv.ID == DraftID
}

// Clone returns a deep copy of the invoice. Items are copied so that edits to
// the clone never show through to the original.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = make([]InvoiceItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
