package dto

// NumberingSettingsResponse estado de numeración del tenant con vista previa.
type NumberingSettingsResponse struct {
	Format          string `json:"format"`
	Prefix          string `json:"prefix"`
	Template        string `json:"template"`
	InvoiceCounter  int    `json:"invoice_counter"`
	QuoteCounter    int    `json:"quote_counter"`
	LastInvoiceYear int    `json:"last_invoice_year"`
	LastQuoteYear   int    `json:"last_quote_year"`
	NextInvoice     string `json:"next_invoice_number"`
	NextQuote       string `json:"next_quote_number"`
	// WillReset indica que el próximo número de factura reinicia el contador (año nuevo).
	WillReset bool `json:"will_reset"`
}

// UpdateNumberingRequest body para PUT /api/settings/numbering. Campos vacíos no se modifican.
type UpdateNumberingRequest struct {
	Format   string  `json:"format,omitempty"`
	Prefix   *string `json:"prefix,omitempty"`
	Template string  `json:"template,omitempty"`
}

// CompanyResponse datos de cabecera de la empresa.
type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ICE      string `json:"ice,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Template string `json:"template"`
}

// UpdateCompanyRequest body para PUT /api/settings/company. Campos nil no se modifican.
type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	ICE     *string `json:"ice,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}
