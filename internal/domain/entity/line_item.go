package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de factura o devis. VatRate es un porcentaje (20 = 20%).
type LineItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	VatRate     decimal.Decimal
	Unit        string
}

// Total devuelve quantity × unitPrice (HT), sin redondeo.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}
