package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/apiErrors"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetDashboardSummary devuelve la vista agregada completa del dashboard para
// los filtros seleccionados en la query string
func GetDashboardSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseFilterCriteria(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.GetSummary(criteria)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al calcular el resumen del dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
		}
	}
}

// parseFilterCriteria arma el FilterCriteria desde la query string. Los campos
// ausentes quedan en el comodín; las fechas usan el formato YYYY-MM-DD.
func parseFilterCriteria(r *http.Request) (*domain.FilterCriteria, error) {
	query := r.URL.Query()

	criteria := &domain.FilterCriteria{
		Contractor:   query.Get("contractor"),
		Type:         query.Get("type"),
		LocationType: query.Get("location_type"),
	}

	if raw := query.Get("start_date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		criteria.StartDate = date
	}

	if raw := query.Get("end_date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		criteria.EndDate = date
	}

	return criteria, nil
}
