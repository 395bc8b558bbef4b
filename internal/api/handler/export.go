package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/exporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ExportActivities descarga como CSV el subconjunto filtrado de actividades,
// con los mismos filtros de query string que el resumen del dashboard
func ExportActivities(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseFilterCriteria(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		activities, err := service.GetActivities(criteria)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al consultar las actividades", nil)
			return
		}

		filename := exporting.Filename(time.Now())
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := exporting.WriteCSV(w, activities); err != nil {
			// Los encabezados ya salieron: solo queda registrar el error
			logrus.WithError(err).Error("Error al escribir el CSV de actividades")
		}
	}
}
