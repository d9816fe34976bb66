package invoice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"easeinvo/pkg/models"
)

// invoiceNumberPrefix is the fixed display prefix of generated invoice
// numbers; the suffix is a random 4-digit number.
const invoiceNumberPrefix = "INV-"

// NewInvoiceNumber generates a display invoice number such as "INV-4821".
func NewInvoiceNumber() string {
	return fmt.Sprintf("%s%d", invoiceNumberPrefix, rand.Intn(9000)+1000)
}

// NewDraft produces a fresh invoice with default field values, the draft
// sentinel identifier and a newly generated invoice number. The invoice is
// not persisted anywhere; committing it is the caller's concern.
func NewDraft() models.Invoice {
	now := time.Now()
	return models.Invoice{
		ID:            models.DraftID,
		InvoiceNumber: NewInvoiceNumber(),
		IssueDate:     models.NewDateOnly(now),
		DueDate:       models.NewDateOnly(now.AddDate(0, 0, 7)),
		Sender: models.BusinessDetails{
			Name:    "Your Business Name",
			Address: "123 Business St, City, Country",
			Email:   "hello@business.com",
			Phone:   "+1 (555) 000-0000",
		},
		Client: models.ClientDetails{
			Name:    "Client Name",
			Address: "456 Client Rd, Suite 100, City",
			Email:   "billing@client.com",
		},
		Items: []models.InvoiceItem{
			{ID: uuid.NewString(), Name: "Premium Service", Quantity: 1, Rate: 1200, Total: 1200},
			{ID: uuid.NewString(), Name: "Design Consulting", Quantity: 5, Rate: 150, Total: 750},
		},
		Currency:     "$",
		TaxRate:      10,
		DiscountRate: 0,
		Notes:        "Thank you for choosing our services.",
		Terms:        "Payment is due within 15 days of the invoice date.",
		Template:     models.TemplateModern,
		AccentColor:  "#000000",
	}
}

// NewSample produces the richly populated demonstration invoice. Like a
// fresh draft it carries the draft sentinel and enters the saved collection
// only through an explicit save.
func NewSample() models.Invoice {
	inv := NewDraft()
	inv.InvoiceNumber = "INV-SAMPLE-2025"
	inv.Sender = models.BusinessDetails{
		Name:    "Creative Studio Pro",
		Address: "77 Digital Avenue, Tech District\nSan Francisco, CA 94105",
		Email:   "contact@creativestudio.pro",
		Phone:   "+1 (415) 555-0123",
	}
	inv.Client = models.ClientDetails{
		Name:    "Innovate Corp",
		Address: "1200 Market Street, Suite 400\nPhiladelphia, PA 19107",
		Email:   "accounts@innovate.co",
		Phone:   "+1 (215) 555-9876",
	}
	inv.Items = []models.InvoiceItem{
		{ID: uuid.NewString(), Name: "Brand Identity Design", Quantity: 1, Rate: 2500, Total: 2500},
		{ID: uuid.NewString(), Name: "React Frontend Development (Hourly)", Quantity: 40, Rate: 125, Total: 5000},
		{ID: uuid.NewString(), Name: "Cloud Infrastructure Setup", Quantity: 1, Rate: 1500, Total: 1500},
		{ID: uuid.NewString(), Name: "Social Media Assets Kit", Quantity: 3, Rate: 450, Total: 1350},
	}
	inv.TaxRate = 8.5
	inv.DiscountRate = 5
	inv.Notes = "Hope you enjoy the sample invoice! This data demonstrates a professional high-value service contract."
	inv.Terms = "Standard net-30 terms apply. Please remit payment via bank transfer or digital wallet."
	return inv
}
