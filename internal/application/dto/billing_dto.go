package dto

import "github.com/shopspring/decimal"

// LineItemRequest línea de factura o devis tal como llega del cliente.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VatRate     decimal.Decimal `json:"vat_rate"` // porcentaje: 20 = 20%
	Unit        string          `json:"unit,omitempty"`
}

// LineItemResponse línea con su total HT.
type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VatRate     decimal.Decimal `json:"vat_rate"`
	Unit        string          `json:"unit,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// VatGroupResponse desglose de IVA por tasa (montos redondeados a 2 decimales).
type VatGroupResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	VatAmount decimal.Decimal `json:"vat_amount"`
	Products  []string        `json:"products"`
}

// TotalsResponse totales del documento.
type TotalsResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TotalVat     decimal.Decimal `json:"total_vat"`
	TotalTTC     decimal.Decimal `json:"total_ttc"`
	TotalInWords string          `json:"total_in_words"`
	Currency     string          `json:"currency"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Date vacío = hoy; DueDate vacío = Date + BUSINESS_PAYMENT_DAYS.
type CreateInvoiceRequest struct {
	ClientID      string            `json:"client_id"`
	Date          string            `json:"date,omitempty"`
	DueDate       string            `json:"due_date,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Items         []LineItemRequest `json:"items"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Los totales se recalculan; el número no cambia.
type UpdateInvoiceRequest struct {
	ClientID      string            `json:"client_id,omitempty"`
	Date          string            `json:"date,omitempty"`
	DueDate       string            `json:"due_date,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Items         []LineItemRequest `json:"items"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status         string `json:"status"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	CollectionDate string `json:"collection_date,omitempty"`
	CollectionType string `json:"collection_type,omitempty"` // cheque | effet
}

// InvoiceResponse factura con líneas, totales y desglose de IVA.
type InvoiceResponse struct {
	ID             string             `json:"id"`
	CompanyID      string             `json:"company_id"`
	ClientID       string             `json:"client_id"`
	ClientName     string             `json:"client_name,omitempty"`
	Number         string             `json:"number"`
	Date           string             `json:"date"`
	DueDate        string             `json:"due_date"`
	Status         string             `json:"status"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	CollectionDate string             `json:"collection_date,omitempty"`
	CollectionType string             `json:"collection_type,omitempty"`
	QuoteID        string             `json:"quote_id,omitempty"`
	Items          []LineItemResponse `json:"items"`
	VatGroups      []VatGroupResponse `json:"vat_groups"`
	Totals         TotalsResponse     `json:"totals"`
}

// InvoiceSummary fila del listado de facturas.
type InvoiceSummary struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name,omitempty"`
	Date       string          `json:"date"`
	DueDate    string          `json:"due_date"`
	Status     string          `json:"status"`
	TotalTTC   decimal.Decimal `json:"total_ttc"`
}

// CreateQuoteRequest body para POST /api/quotes.
// ValidUntil vacío = Date + BUSINESS_QUOTE_VALIDITY_DAYS.
type CreateQuoteRequest struct {
	ClientID   string            `json:"client_id"`
	Date       string            `json:"date,omitempty"`
	ValidUntil string            `json:"valid_until,omitempty"`
	Items      []LineItemRequest `json:"items"`
}

// UpdateQuoteRequest body para PUT /api/quotes/:id.
type UpdateQuoteRequest struct {
	ClientID   string            `json:"client_id,omitempty"`
	Date       string            `json:"date,omitempty"`
	ValidUntil string            `json:"valid_until,omitempty"`
	Items      []LineItemRequest `json:"items"`
}

// UpdateStatusRequest body genérico para PATCH .../status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// QuoteResponse devis con líneas, totales y desglose de IVA.
type QuoteResponse struct {
	ID         string             `json:"id"`
	CompanyID  string             `json:"company_id"`
	ClientID   string             `json:"client_id"`
	ClientName string             `json:"client_name,omitempty"`
	Number     string             `json:"number"`
	Date       string             `json:"date"`
	ValidUntil string             `json:"valid_until"`
	Status     string             `json:"status"`
	Items      []LineItemResponse `json:"items"`
	VatGroups  []VatGroupResponse `json:"vat_groups"`
	Totals     TotalsResponse     `json:"totals"`
}

// QuoteSummary fila del listado de devis.
type QuoteSummary struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name,omitempty"`
	Date       string          `json:"date"`
	ValidUntil string          `json:"valid_until"`
	Status     string          `json:"status"`
	TotalTTC   decimal.Decimal `json:"total_ttc"`
}

// ConvertQuoteRequest body opcional para POST /api/quotes/:id/convert.
type ConvertQuoteRequest struct {
	Date    string `json:"date,omitempty"`
	DueDate string `json:"due_date,omitempty"`
}

// ConvertQuoteResponse resultado de la conversión devis → factura.
type ConvertQuoteResponse struct {
	Invoice     InvoiceResponse `json:"invoice"`
	QuoteID     string          `json:"quote_id"`
	QuoteStatus string          `json:"quote_status"`
}
