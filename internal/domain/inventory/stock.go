package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StockLevel situación de stock de un producto (servicio de dominio, sin I/O).
//
//	Remaining = Initial - Sold
//	Low       = Remaining <= MinStock
//
// Sold proviene de las líneas de factura cuya descripción coincide con el nombre del producto.
type StockLevel struct {
	Initial   decimal.Decimal
	Sold      decimal.Decimal
	Remaining decimal.Decimal
	MinStock  decimal.Decimal
	Low       bool
	// Value valoración del stock restante a precio de compra (0 si Remaining < 0).
	Value decimal.Decimal
}

// ComputeStockLevel calcula la situación de stock de un producto.
func ComputeStockLevel(initial, sold, minStock, purchasePrice decimal.Decimal) StockLevel {
	remaining := initial.Sub(sold)
	value := decimal.Zero
	if remaining.IsPositive() {
		value = remaining.Mul(purchasePrice).Round(2)
	}
	return StockLevel{
		Initial:   initial,
		Sold:      sold,
		Remaining: remaining,
		MinStock:  minStock,
		Low:       remaining.LessThanOrEqual(minStock),
		Value:     value,
	}
}

// MatchKey normaliza una descripción de línea o un nombre de producto para el cruce
// (sin espacios extremos, sin distinguir mayúsculas).
func MatchKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SoldIndex acumula cantidades vendidas por MatchKey.
type SoldIndex map[string]decimal.Decimal

// Add suma qty a la descripción dada.
func (s SoldIndex) Add(description string, qty decimal.Decimal) {
	k := MatchKey(description)
	s[k] = s[k].Add(qty)
}

// For devuelve la cantidad vendida con ese nombre (0 si nunca se facturó).
func (s SoldIndex) For(name string) decimal.Decimal {
	if v, ok := s[MatchKey(name)]; ok {
		return v
	}
	return decimal.Zero
}
