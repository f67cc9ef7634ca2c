package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Helvetica (cp1252) no tiene el espacio fino que usa CLDR como separador de miles en francés.
var spaceFixer = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

// frenchNumbers formatea montos y cantidades al estilo "1 234,56". Uno por documento:
// message.Printer no es seguro para uso concurrente.
type frenchNumbers struct {
	p *message.Printer
}

func newFrenchNumbers() frenchNumbers {
	return frenchNumbers{p: message.NewPrinter(language.French)}
}

// money siempre con dos decimales.
func (f frenchNumbers) money(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return spaceFixer.Replace(f.p.Sprint(number.Decimal(v, number.Scale(2))))
}

// quantity hasta tres decimales, sin ceros a la derecha.
func (f frenchNumbers) quantity(d decimal.Decimal) string {
	v, _ := d.Round(3).Float64()
	return spaceFixer.Replace(f.p.Sprint(number.Decimal(v, number.MaxFractionDigits(3))))
}

// rate porcentaje de IVA sin decimales superfluos: "20 %", "5,5 %".
func (f frenchNumbers) rate(d decimal.Decimal) string {
	return f.quantity(d) + " %"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
