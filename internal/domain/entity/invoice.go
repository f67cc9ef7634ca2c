package entity

import "time"

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusUnpaid    = "unpaid"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCollected = "collected" // encaissée (cheque o effet cobrado)
)

// Medios de pago.
const (
	PaymentVirement = "virement"
	PaymentEspece   = "espece"
	PaymentCheque   = "cheque"
	PaymentEffet    = "effet"
)

// Invoice representa una factura con sus líneas y totales.
type Invoice struct {
	ID             string
	CompanyID      string
	ClientID       string
	Number         string
	Date           time.Time
	DueDate        time.Time
	Items          []LineItem
	Totals         DocumentTotals
	TotalInWords   string
	Status         string
	PaymentMethod  string
	CollectionDate *time.Time
	CollectionType string // cheque | effet
	QuoteID        string // devis de origen (si fue convertido)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValidInvoiceStatus indica si s es un estado de factura conocido.
func IsValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusCollected:
		return true
	}
	return false
}

// IsValidPaymentMethod indica si m es un medio de pago conocido. Vacío es válido (sin definir).
func IsValidPaymentMethod(m string) bool {
	switch m {
	case "", PaymentVirement, PaymentEspece, PaymentCheque, PaymentEffet:
		return true
	}
	return false
}
