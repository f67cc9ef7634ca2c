package hr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturation-api/internal/domain/hr"
)

func newCalculator() *hr.WorkingDayCalculator {
	return hr.NewWorkingDayCalculator(hr.NewHolidayCalendar(hr.DefaultHolidays))
}

// Lunes 2024-01-01 a domingo 2024-01-07, sin festivos en el rango.
func TestCountWorkingDays_SemanaSinSabado(t *testing.T) {
	got := newCalculator().CountWorkingDays(date(2024, time.January, 1), date(2024, time.January, 7), false)
	assert.Equal(t, 5, got)
}

func TestCountWorkingDays_SemanaConSabado(t *testing.T) {
	got := newCalculator().CountWorkingDays(date(2024, time.January, 1), date(2024, time.January, 7), true)
	assert.Equal(t, 6, got)
}

func TestCountWorkingDays_UnSoloDiaFestivo(t *testing.T) {
	got := newCalculator().CountWorkingDays(date(2025, time.May, 1), date(2025, time.May, 1), false)
	assert.Equal(t, 0, got, "el 1 de mayo es festivo")
}

func TestCountWorkingDays_RangoInvertido(t *testing.T) {
	calc := newCalculator()
	assert.Equal(t, 0, calc.CountWorkingDays(date(2024, time.January, 7), date(2024, time.January, 1), false))
	assert.Equal(t, 0, calc.CountWorkingDays(date(2024, time.January, 7), date(2024, time.January, 1), true))
}

func TestCountWorkingDays_FestivoEnSabadoNoSeDescuentaDosVeces(t *testing.T) {
	// 2026-08-01 es sábado; 2026-08-14 viernes festivo.
	calc := hr.NewWorkingDayCalculator(hr.NewHolidayCalendar([]hr.Holiday{
		{Month: time.August, Day: 1}, {Month: time.August, Day: 14},
	}))
	assert.Equal(t, 9, calc.CountWorkingDays(date(2026, time.August, 3), date(2026, time.August, 14), false))
	assert.Equal(t, 10, calc.CountWorkingDays(date(2026, time.August, 1), date(2026, time.August, 14), true))
}

func TestCountWorkingDays_DomingoSiempreExcluido(t *testing.T) {
	sunday := date(2024, time.January, 7)
	calc := hr.NewWorkingDayCalculator(nil)
	assert.Equal(t, 0, calc.CountWorkingDays(sunday, sunday, true))
	assert.Equal(t, 0, calc.CountWorkingDays(sunday, sunday, false))
}

func TestCountWorkingDays_IgnoraHora(t *testing.T) {
	calc := newCalculator()
	start := time.Date(2024, time.January, 1, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 2, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, calc.CountWorkingDays(start, end, false))
}

func TestCountWorkingDays_CruceDeAnio(t *testing.T) {
	// 2025-12-29 (lun) .. 2026-01-16 (vie). Festivos en el rango: 01-11 (domingo) y 01-14 (miércoles).
	got := newCalculator().CountWorkingDays(date(2025, time.December, 29), date(2026, time.January, 16), false)
	assert.Equal(t, 14, got)
}

func TestCountCalendarDays(t *testing.T) {
	calc := newCalculator()
	assert.Equal(t, 7, calc.CountCalendarDays(date(2024, time.January, 1), date(2024, time.January, 7)))
	assert.Equal(t, 1, calc.CountCalendarDays(date(2025, time.May, 1), date(2025, time.May, 1)))
	assert.Equal(t, 0, calc.CountCalendarDays(date(2024, time.January, 7), date(2024, time.January, 1)))
	// Año bisiesto completo.
	assert.Equal(t, 366, calc.CountCalendarDays(date(2024, time.January, 1), date(2024, time.December, 31)))
}

func TestHolidaysBetween(t *testing.T) {
	got := newCalculator().HolidaysBetween(date(2025, time.August, 10), date(2025, time.August, 31))
	if assert.Len(t, got, 3) {
		assert.Equal(t, 14, got[0].Day)
		assert.Equal(t, 20, got[1].Day)
		assert.Equal(t, "Fête de la Jeunesse", got[2].Name)
	}
	assert.Empty(t, newCalculator().HolidaysBetween(date(2025, time.August, 31), date(2025, time.August, 1)))
}
