package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

func TestNextNumber_ReinicioPorCambioDeAnio(t *testing.T) {
	state := entity.NumberingState{
		Format:          entity.NumberingFormat2,
		Prefix:          "FAC",
		InvoiceCounter:  0,
		LastInvoiceYear: 2024,
	}
	number, next := billing.NextNumber(entity.DocumentInvoice, state, 2025)

	assert.Equal(t, "FAC-2025-001", number)
	assert.Equal(t, 1, next.InvoiceCounter)
	assert.Equal(t, 2025, next.LastInvoiceYear)
}

func TestNextNumber_ReinicioAunqueElContadorSeaAlto(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat2, Prefix: "FAC", InvoiceCounter: 87, LastInvoiceYear: 2024}
	number, next := billing.NextNumber(entity.DocumentInvoice, state, 2025)
	assert.Equal(t, "FAC-2025-001", number)
	assert.Equal(t, 1, next.InvoiceCounter)
}

func TestNextNumber_RelojAtrasadoNoRetrocedeElAnio(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat2, Prefix: "FAC", InvoiceCounter: 7, LastInvoiceYear: 2025}

	number, next := billing.NextNumber(entity.DocumentInvoice, state, 2024)
	assert.Equal(t, "FAC-2025-008", number)
	assert.Equal(t, 8, next.InvoiceCounter)
	assert.Equal(t, 2025, next.LastInvoiceYear)

	number, next = billing.NextNumber(entity.DocumentInvoice, next, 2025)
	assert.Equal(t, "FAC-2025-009", number, "al volver el reloj no hay reinicio")
	assert.Equal(t, 9, next.InvoiceCounter)

	q := entity.NumberingState{QuoteCounter: 3, LastQuoteYear: 2025}
	number, next = billing.NextNumber(entity.DocumentQuote, q, 2024)
	assert.Equal(t, "DEV-2025-004", number)
	assert.Equal(t, 2025, next.LastQuoteYear)
	assert.False(t, billing.WillReset(entity.DocumentQuote, q, 2024))
}

func TestNextNumber_MismoAnioFormat3(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat3, InvoiceCounter: 5, LastInvoiceYear: 2025}
	number, next := billing.NextNumber(entity.DocumentInvoice, state, 2025)
	assert.Equal(t, "006/2025", number)
	assert.Equal(t, 6, next.InvoiceCounter)
}

func TestNextNumber_EsPura(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat2, Prefix: "FAC", InvoiceCounter: 3, LastInvoiceYear: 2025}

	n1, s1 := billing.NextNumber(entity.DocumentInvoice, state, 2025)
	n2, s2 := billing.NextNumber(entity.DocumentInvoice, state, 2025)

	assert.Equal(t, n1, n2, "reintentar sin persistir reproduce el mismo número")
	assert.Equal(t, s1, s2)
	assert.Equal(t, 3, state.InvoiceCounter, "el estado de entrada no se modifica")
}

func TestNextNumber_SecuenciaSinHuecos(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat1, LastInvoiceYear: 2025}
	var numbers []string
	for i := 0; i < 3; i++ {
		var n string
		n, state = billing.NextNumber(entity.DocumentInvoice, state, 2025)
		numbers = append(numbers, n)
	}
	assert.Equal(t, []string{"2025-001", "2025-002", "2025-003"}, numbers)
}

func TestNextNumber_CincoFormatos(t *testing.T) {
	cases := map[entity.NumberingFormat]string{
		entity.NumberingFormat1: "2025-001",
		entity.NumberingFormat2: "FAC-2025-001",
		entity.NumberingFormat3: "001/2025",
		entity.NumberingFormat4: "2025/001-FAC",
		entity.NumberingFormat5: "FAC001-2025",
		"":                      "FAC-2025-001",
		"format9":               "FAC-2025-001",
	}
	for format, want := range cases {
		state := entity.NumberingState{Format: format, Prefix: "FAC", LastInvoiceYear: 2025}
		got, _ := billing.NextNumber(entity.DocumentInvoice, state, 2025)
		assert.Equal(t, want, got, string(format))
	}
}

func TestNextNumber_DevisUsaPrefijoFijo(t *testing.T) {
	state := entity.NumberingState{
		Format:          entity.NumberingFormat5,
		Prefix:          "ACME",
		QuoteCounter:    41,
		LastQuoteYear:   2025,
		InvoiceCounter:  9,
		LastInvoiceYear: 2025,
	}
	number, next := billing.NextNumber(entity.DocumentQuote, state, 2025)

	assert.Equal(t, "DEV042-2025", number)
	assert.Equal(t, 42, next.QuoteCounter)
	assert.Equal(t, 9, next.InvoiceCounter, "el contador de facturas no se toca")
	assert.Equal(t, 2025, next.LastInvoiceYear)
}

func TestNextNumber_ContadoresIndependientesPorTipo(t *testing.T) {
	state := entity.NumberingState{InvoiceCounter: 12, LastInvoiceYear: 2025, QuoteCounter: 4, LastQuoteYear: 2024}
	_, next := billing.NextNumber(entity.DocumentQuote, state, 2025)
	assert.Equal(t, 1, next.QuoteCounter)
	assert.Equal(t, 12, next.InvoiceCounter)
}

func TestNextNumber_PrefijoPorDefecto(t *testing.T) {
	got, _ := billing.NextNumber(entity.DocumentInvoice, entity.NumberingState{LastInvoiceYear: 2025}, 2025)
	assert.Equal(t, "FAC-2025-001", got)
}

func TestFormatNumber_ContadorSeEnsancha(t *testing.T) {
	assert.Equal(t, "FAC-2025-007", billing.FormatNumber(entity.NumberingFormat2, "FAC", 7, 2025))
	assert.Equal(t, "FAC-2025-999", billing.FormatNumber(entity.NumberingFormat2, "FAC", 999, 2025))
	assert.Equal(t, "FAC-2025-1000", billing.FormatNumber(entity.NumberingFormat2, "FAC", 1000, 2025))
	assert.Equal(t, "12345/2025", billing.FormatNumber(entity.NumberingFormat3, "FAC", 12345, 2025))
}

func TestPreviewNumber_NoConsume(t *testing.T) {
	state := entity.NumberingState{Format: entity.NumberingFormat2, Prefix: "FAC", InvoiceCounter: 9, LastInvoiceYear: 2025}
	assert.Equal(t, "FAC-2025-010", billing.PreviewNumber(entity.DocumentInvoice, state, 2025))
	assert.Equal(t, "FAC-2026-001", billing.PreviewNumber(entity.DocumentInvoice, state, 2026))
	assert.False(t, billing.WillReset(entity.DocumentInvoice, state, 2025))
	assert.True(t, billing.WillReset(entity.DocumentInvoice, state, 2026))
	assert.Equal(t, 9, state.InvoiceCounter)
}
