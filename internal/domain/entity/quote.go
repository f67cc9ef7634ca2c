package entity

import "time"

// Estados de un devis.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Quote representa un devis (presupuesto).
type Quote struct {
	ID           string
	CompanyID    string
	ClientID     string
	Number       string
	Date         time.Time
	ValidUntil   time.Time
	Items        []LineItem
	Totals       DocumentTotals
	TotalInWords string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidQuoteStatus indica si s es un estado de devis conocido.
func IsValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}
