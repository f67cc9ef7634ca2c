// Package billing contiene las reglas de negocio de facturas y devis:
// agregación de IVA por tasa, totales del documento, numeración y montos en letras.
// Todas las funciones son puras (sin I/O).
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// VatGroup acumula el IVA de las líneas que comparten la misma tasa.
// Se construye en cada cálculo; nunca se persiste.
type VatGroup struct {
	Rate               decimal.Decimal
	VatAmount          decimal.Decimal // precisión completa, sin redondear
	MemberDescriptions []string
}

// Aggregate devuelve el subtotal HT y los grupos de IVA en orden de primera aparición.
//
//	subtotal        = Σ quantity × unitPrice
//	group.VatAmount = Σ (unitPrice × quantity × vatRate) / 100
//
// Las tasas se comparan por igualdad numérica (20 y 20.00 son el mismo grupo).
func Aggregate(items []entity.LineItem) (decimal.Decimal, []VatGroup) {
	subtotal := decimal.Zero
	groups := make([]VatGroup, 0)
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
		vat := item.UnitPrice.Mul(item.Quantity).Mul(item.VatRate).Div(hundred)

		i := indexOfRate(groups, item.VatRate)
		if i < 0 {
			groups = append(groups, VatGroup{Rate: item.VatRate, VatAmount: decimal.Zero})
			i = len(groups) - 1
		}
		groups[i].VatAmount = groups[i].VatAmount.Add(vat)
		groups[i].MemberDescriptions = append(groups[i].MemberDescriptions, item.Description)
	}
	return subtotal, groups
}

// Búsqueda lineal: pocas tasas por documento y preserva el orden de inserción.
func indexOfRate(groups []VatGroup, rate decimal.Decimal) int {
	for i := range groups {
		if groups[i].Rate.Equal(rate) {
			return i
		}
	}
	return -1
}
