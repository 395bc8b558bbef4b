package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// StartOfDay trunca la fecha a la medianoche local
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normaliza la fecha al último instante del día (23:59:59.999)
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// DayKey devuelve la clave de calendario YYYY-MM-DD usada por los buckets diarios
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ISOWeekKey devuelve el identificador de semana ISO, p. ej. "2024-W03"
func ISOWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
