package billing

import (
	"fmt"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// NextNumber calcula el siguiente número de documento y el estado actualizado.
// Es pura: no persiste nada. El número solo queda emitido cuando el caller persiste
// el estado devuelto junto con el documento.
//
// Si currentYear supera el último año del contador correspondiente, el contador vuelve
// a 0 antes de incrementarse. Si es anterior (reloj atrasado), el año guardado no
// retrocede: el contador sigue y el número se imprime con el año guardado, así la
// secuencia nunca repite un número ya emitido.
func NextNumber(kind entity.DocumentKind, state entity.NumberingState, currentYear int) (string, entity.NumberingState) {
	next := state
	var counter, year int
	switch kind {
	case entity.DocumentQuote:
		counter, year = advance(state.QuoteCounter, state.LastQuoteYear, currentYear)
		next.QuoteCounter = counter
		next.LastQuoteYear = year
	default:
		counter, year = advance(state.InvoiceCounter, state.LastInvoiceYear, currentYear)
		next.InvoiceCounter = counter
		next.LastInvoiceYear = year
	}
	return FormatNumber(state.Format, PrefixFor(kind, state), counter, year), next
}

// advance devuelve el contador incrementado y el año efectivo (el mayor de ambos).
func advance(counter, lastYear, currentYear int) (int, int) {
	if currentYear > lastYear {
		return 1, currentYear
	}
	return counter + 1, lastYear
}

// lastYearFor año del último documento emitido del tipo dado.
func lastYearFor(kind entity.DocumentKind, state entity.NumberingState) int {
	if kind == entity.DocumentQuote {
		return state.LastQuoteYear
	}
	return state.LastInvoiceYear
}

// PreviewNumber devuelve el número que emitiría NextNumber sin consumir el contador.
func PreviewNumber(kind entity.DocumentKind, state entity.NumberingState, currentYear int) string {
	n, _ := NextNumber(kind, state, currentYear)
	return n
}

// WillReset indica si el próximo documento del tipo dado reinicia el contador.
func WillReset(kind entity.DocumentKind, state entity.NumberingState, currentYear int) bool {
	return currentYear > lastYearFor(kind, state)
}

// PrefixFor: facturas con el prefijo del tenant (FAC por defecto); devis siempre DEV.
func PrefixFor(kind entity.DocumentKind, state entity.NumberingState) string {
	if kind == entity.DocumentQuote {
		return entity.QuotePrefix
	}
	if state.Prefix == "" {
		return entity.DefaultInvoicePrefix
	}
	return state.Prefix
}

// FormatNumber aplica el layout. El contador se rellena a 3 dígitos y se ensancha
// a partir de 1000. Un formato desconocido o vacío usa format2.
func FormatNumber(format entity.NumberingFormat, prefix string, counter, year int) string {
	c := fmt.Sprintf("%03d", counter)
	switch format {
	case entity.NumberingFormat1:
		return fmt.Sprintf("%d-%s", year, c)
	case entity.NumberingFormat3:
		return fmt.Sprintf("%s/%d", c, year)
	case entity.NumberingFormat4:
		return fmt.Sprintf("%d/%s-%s", year, c, prefix)
	case entity.NumberingFormat5:
		return fmt.Sprintf("%s%s-%d", prefix, c, year)
	default:
		return fmt.Sprintf("%s-%d-%s", prefix, year, c)
	}
}
