package hr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/domain/hr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday_IndependienteDelAnio(t *testing.T) {
	cal := hr.NewHolidayCalendar(hr.DefaultHolidays)

	assert.True(t, cal.IsHoliday(date(2025, time.May, 1)))
	assert.True(t, cal.IsHoliday(date(2030, time.May, 1)))
	assert.True(t, cal.IsHoliday(date(1999, time.May, 1)))
	assert.False(t, cal.IsHoliday(date(2025, time.May, 2)))
}

func TestIsHoliday_SoloMesYDia(t *testing.T) {
	cal := hr.NewHolidayCalendar(hr.DefaultHolidays)
	for year := 2000; year <= 2040; year++ {
		assert.Equal(t, cal.IsHoliday(date(2025, time.November, 18)), cal.IsHoliday(date(year, time.November, 18)))
		assert.Equal(t, cal.IsHoliday(date(2025, time.March, 3)), cal.IsHoliday(date(year, time.March, 3)))
	}
}

func TestIsHoliday_IgnoraHoraYZona(t *testing.T) {
	cal := hr.NewHolidayCalendar(hr.DefaultHolidays)
	casablanca := time.FixedZone("Africa/Casablanca", 3600)
	assert.True(t, cal.IsHoliday(time.Date(2025, time.July, 30, 23, 59, 0, 0, casablanca)))
}

func TestHolidayCalendar_TablaInyectable(t *testing.T) {
	cal := hr.NewHolidayCalendar([]hr.Holiday{{Month: time.March, Day: 3, Name: "Test"}})

	assert.True(t, cal.IsHoliday(date(2026, time.March, 3)))
	assert.False(t, cal.IsHoliday(date(2026, time.May, 1)), "la tabla por defecto no se mezcla con la inyectada")
	assert.Equal(t, "Test", cal.HolidayName(date(2026, time.March, 3)))
	assert.Equal(t, 1, cal.Len())
}

func TestHolidayCalendar_NilYVacio(t *testing.T) {
	var nilCal *hr.HolidayCalendar
	assert.False(t, nilCal.IsHoliday(date(2025, time.May, 1)))
	assert.False(t, hr.NewHolidayCalendar(nil).IsHoliday(date(2025, time.May, 1)))
}

func TestParseHolidays(t *testing.T) {
	got, err := hr.ParseHolidays([]string{"05-01=Fête du Travail", " 11-18 ", "", "02-29"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, hr.Holiday{Month: time.May, Day: 1, Name: "Fête du Travail"}, got[0])
	assert.Equal(t, hr.Holiday{Month: time.November, Day: 18}, got[1])
	assert.Equal(t, time.February, got[2].Month)
}

func TestParseHolidays_Errores(t *testing.T) {
	for _, in := range []string{"2025-05-01", "13-01", "04-31", "ab-01", "05"} {
		_, err := hr.ParseHolidays([]string{in})
		assert.Error(t, err, in)
	}
}
