// Package hr contiene las reglas de negocio del módulo de recursos humanos:
// calendario de días festivos y cálculo de días hábiles para las ausencias.
package hr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Holiday es un festivo de fecha fija: se repite cada año el mismo mes/día.
type Holiday struct {
	Month time.Month
	Day   int
	Name  string
}

// DefaultHolidays festivos nacionales de fecha fija (Marruecos).
// Tabla aproximada: los festivos religiosos (calendario lunar) no se modelan y el
// 1 de enero no figura; se corrige por configuración (HR_HOLIDAYS) sin tocar código.
var DefaultHolidays = []Holiday{
	{Month: time.January, Day: 11, Name: "Manifeste de l'Indépendance"},
	{Month: time.January, Day: 14, Name: "Nouvel An Amazigh"},
	{Month: time.May, Day: 1, Name: "Fête du Travail"},
	{Month: time.July, Day: 30, Name: "Fête du Trône"},
	{Month: time.August, Day: 14, Name: "Allégeance Oued Eddahab"},
	{Month: time.August, Day: 20, Name: "Révolution du Roi et du Peuple"},
	{Month: time.August, Day: 21, Name: "Fête de la Jeunesse"},
	{Month: time.November, Day: 6, Name: "Marche Verte"},
	{Month: time.November, Day: 18, Name: "Fête de l'Indépendance"},
}

type monthDay struct {
	month time.Month
	day   int
}

// HolidayCalendar responde si una fecha es festiva. Es inmutable tras construirse.
type HolidayCalendar struct {
	days map[monthDay]string
}

// NewHolidayCalendar construye el calendario a partir de la tabla indicada.
// Con una tabla vacía ningún día es festivo.
func NewHolidayCalendar(holidays []Holiday) *HolidayCalendar {
	days := make(map[monthDay]string, len(holidays))
	for _, h := range holidays {
		days[monthDay{h.Month, h.Day}] = h.Name
	}
	return &HolidayCalendar{days: days}
}

// IsHoliday depende solo del mes y el día de date, nunca del año.
func (c *HolidayCalendar) IsHoliday(date time.Time) bool {
	if c == nil {
		return false
	}
	_, ok := c.days[monthDay{date.Month(), date.Day()}]
	return ok
}

// HolidayName devuelve el nombre del festivo o "" si date no es festivo.
func (c *HolidayCalendar) HolidayName(date time.Time) string {
	if c == nil {
		return ""
	}
	return c.days[monthDay{date.Month(), date.Day()}]
}

// Len número de festivos distintos.
func (c *HolidayCalendar) Len() int {
	if c == nil {
		return 0
	}
	return len(c.days)
}

// ParseHolidays interpreta entradas "MM-DD" (ej. "05-01", "11-18").
// Se admite un nombre opcional tras "=": "05-01=Fête du Travail".
func ParseHolidays(entries []string) ([]Holiday, error) {
	out := make([]Holiday, 0, len(entries))
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		name := ""
		if i := strings.Index(entry, "="); i >= 0 {
			name = strings.TrimSpace(entry[i+1:])
			entry = strings.TrimSpace(entry[:i])
		}
		parts := strings.Split(entry, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("festivo %q: formato esperado MM-DD", raw)
		}
		m, err := strconv.Atoi(parts[0])
		if err != nil || m < 1 || m > 12 {
			return nil, fmt.Errorf("festivo %q: mes inválido", raw)
		}
		d, err := strconv.Atoi(parts[1])
		// 2024 es bisiesto: acepta 02-29.
		if err != nil || d < 1 || d > daysIn(time.Month(m), 2024) {
			return nil, fmt.Errorf("festivo %q: día inválido", raw)
		}
		out = append(out, Holiday{Month: time.Month(m), Day: d, Name: name})
	}
	return out, nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
