package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_UnaFilaPorRegistro(t *testing.T) {
	date := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local)
	activities := []*domain.Activity{
		{
			ID:            "act-1",
			Date:          &date,
			Contractor:    "CUC",
			Type:          domain.ActivityTypeNutrition,
			Subtype:       "workshops",
			Location:      &domain.Location{Name: "CDV Norte", Type: "Centro de Vida"},
			Beneficiaries: 42,
			Educational:   &domain.EducationalActivity{Included: true, Type: domain.ActivityTypeNutrition},
		},
		{
			// Sin fecha ni estructuras anidadas: celdas vacías, nunca se omite
			ID:         "act-2",
			Contractor: "FUNDACARIBE",
			Subtype:    "parkSnack",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, activities))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"act-1", "2025-03-10", "CUC", "nutrition", "workshops",
		"CDV Norte", "Centro de Vida", "42", "true", "nutrition",
	}, records[1])
	assert.Equal(t, []string{
		"act-2", "", "FUNDACARIBE", "", "parkSnack", "", "", "0", "false", "",
	}, records[2])
}

func TestWriteCSV_SinRegistrosSoloEncabezado(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}

func TestFilename(t *testing.T) {
	generatedAt := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.Local)
	assert.Equal(t, "actividades_2025-03-10.csv", Filename(generatedAt))
}
