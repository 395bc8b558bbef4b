// Package exporting serializa el subconjunto filtrado de actividades como CSV
// descargable, una fila por registro con los campos tal como se capturaron.
package exporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

var csvHeader = []string{
	"id",
	"fecha",
	"contratista",
	"tipo",
	"subtipo",
	"ubicacion",
	"tipo_ubicacion",
	"beneficiarios",
	"educativa",
	"tipo_educativa",
}

// WriteCSV escribe las actividades como CSV en el writer dado. Los registros
// sin fecha exportan la celda de fecha vacía en lugar de omitirse: el CSV es
// el espejo fiel de lo capturado, no una vista derivada.
func WriteCSV(w io.Writer, activities []*domain.Activity) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("error al escribir el encabezado CSV: %w", err)
	}

	for _, activity := range activities {
		if err := writer.Write(csvRow(activity)); err != nil {
			return fmt.Errorf("error al escribir fila CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename deriva el nombre del archivo de descarga con la fecha de generación
func Filename(generatedAt time.Time) string {
	return fmt.Sprintf("actividades_%s.csv", generatedAt.Format("2006-01-02"))
}

func csvRow(activity *domain.Activity) []string {
	date := ""
	if activity.Date != nil && !activity.Date.IsZero() {
		date = activity.Date.Format(time.DateOnly)
	}

	locationName := ""
	locationType := ""
	if activity.Location != nil {
		locationName = activity.Location.Name
		locationType = activity.Location.Type
	}

	educational := "false"
	educationalType := ""
	if activity.Educational != nil {
		educational = strconv.FormatBool(activity.Educational.Included)
		educationalType = activity.Educational.Type
	}

	return []string{
		activity.ID,
		date,
		activity.Contractor,
		activity.Type,
		activity.Subtype,
		locationName,
		locationType,
		strconv.Itoa(activity.Beneficiaries),
		educational,
		educationalType,
	}
}
