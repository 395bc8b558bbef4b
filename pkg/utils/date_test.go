package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndEndOfDay(t *testing.T) {
	moment := time.Date(2025, time.March, 10, 14, 23, 5, 0, time.Local)

	start := StartOfDay(moment)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), start)

	end := EndOfDay(moment)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 999000000, time.Local), end)

	assert.True(t, start.Before(moment) && moment.Before(end))
}

func TestDayKey(t *testing.T) {
	moment := time.Date(2025, time.March, 3, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2025-03-03", DayKey(moment))
}

func TestISOWeekKey(t *testing.T) {
	// El lunes 3 de marzo de 2025 abre la semana ISO 10
	assert.Equal(t, "2025-W10", ISOWeekKey(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)))
	// Los primeros días de enero pueden pertenecer a la última semana del año anterior
	assert.Equal(t, "2020-W53", ISOWeekKey(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.Local)))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.March, date.Month())

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)

	// Cadena vacía: fecha cero, sin error
	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}
