package entity

import "github.com/shopspring/decimal"

// DocumentTotals son los montos ya redondeados a 2 decimales que se adjuntan al documento.
type DocumentTotals struct {
	Subtotal decimal.Decimal // HT
	TotalVat decimal.Decimal
	TotalTTC decimal.Decimal
}
