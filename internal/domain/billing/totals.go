package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// MoneyPlaces decimales de los montos persistidos y mostrados.
const MoneyPlaces = 2

// ComputeTotals calcula {subtotal, totalVat, totalTTC} de un documento.
//
// Disciplina de redondeo: las sumas intermedias van a precisión completa y cada una de las
// tres salidas se redondea una sola vez (half away from zero). totalTTC se redondea desde
// subtotal+IVA sin redondear, así |totalTTC - (subtotal + totalVat)| <= 0.01.
func ComputeTotals(items []entity.LineItem) entity.DocumentTotals {
	subtotal, groups := Aggregate(items)
	return totalsFrom(subtotal, groups)
}

// ComputeTotalsWithGroups igual que ComputeTotals pero devuelve también los grupos
// para el desglose de IVA.
func ComputeTotalsWithGroups(items []entity.LineItem) (entity.DocumentTotals, []VatGroup) {
	subtotal, groups := Aggregate(items)
	return totalsFrom(subtotal, groups), groups
}

// SumVat suma VatAmount de todos los grupos a precisión completa.
func SumVat(groups []VatGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.VatAmount)
	}
	return total
}

func totalsFrom(subtotal decimal.Decimal, groups []VatGroup) entity.DocumentTotals {
	vat := SumVat(groups)
	return entity.DocumentTotals{
		Subtotal: subtotal.Round(MoneyPlaces),
		TotalVat: vat.Round(MoneyPlaces),
		TotalTTC: subtotal.Add(vat).Round(MoneyPlaces),
	}
}
