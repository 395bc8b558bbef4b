package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/alerting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListAlerts devuelve las alertas vigentes ordenadas por severidad
func ListAlerts(service alerting.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.ActiveAlerts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al consultar las alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logrus.Error(err)
		}
	}
}
