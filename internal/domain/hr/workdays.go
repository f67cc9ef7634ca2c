package hr

import "time"

// WorkingDayCalculator cuenta días hábiles excluyendo domingos, festivos y
// (opcionalmente) sábados.
type WorkingDayCalculator struct {
	calendar *HolidayCalendar
}

// NewWorkingDayCalculator construye el calculador sobre el calendario dado (nil = sin festivos).
func NewWorkingDayCalculator(calendar *HolidayCalendar) *WorkingDayCalculator {
	return &WorkingDayCalculator{calendar: calendar}
}

// CountWorkingDays recorre cada fecha de start a end (inclusive).
// Un rango vacío (end < start) devuelve 0, no es un error.
func (w *WorkingDayCalculator) CountWorkingDays(start, end time.Time, includeSaturdays bool) int {
	from, to := civilDate(start), civilDate(end)
	if to.Before(from) {
		return 0
	}
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if w.isWorkingDay(d, includeSaturdays) {
			count++
		}
	}
	return count
}

// CountCalendarDays devuelve end - start + 1 en días (solo informativo).
func (w *WorkingDayCalculator) CountCalendarDays(start, end time.Time) int {
	from, to := civilDate(start), civilDate(end)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// HolidaysBetween lista los festivos del rango (inclusive) en orden cronológico,
// incluidos los que caen en fin de semana.
func (w *WorkingDayCalculator) HolidaysBetween(start, end time.Time) []Holiday {
	from, to := civilDate(start), civilDate(end)
	var out []Holiday
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if w.calendar.IsHoliday(d) {
			out = append(out, Holiday{Month: d.Month(), Day: d.Day(), Name: w.calendar.HolidayName(d)})
		}
	}
	return out
}

func (w *WorkingDayCalculator) isWorkingDay(d time.Time, includeSaturdays bool) bool {
	switch d.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		if !includeSaturdays {
			return false
		}
	}
	return !w.calendar.IsHoliday(d)
}

// civilDate descarta hora y zona: trabaja con la fecha calendario en UTC
// para que los cambios de horario no alteren el conteo.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
