package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type SaveGoalRequest struct {
	Category string  `json:"category"`
	Strategy string  `json:"strategy"`
	Target   float64 `json:"target"`
}

// GetGoalProgress devuelve el avance de metas del contratista indicado
func GetGoalProgress(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractor := httprouter.ParamsFromContext(r.Context()).ByName("contractor")
		if contractor == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Contratista no especificado", nil)
			return
		}

		progress, err := service.GetGoalProgress(contractor)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al calcular el avance de metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress); err != nil {
			logrus.Error(err)
		}
	}
}

// SaveGoal guarda la meta de una estrategia y programa el recálculo amortiguado
func SaveGoal(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractor := httprouter.ParamsFromContext(r.Context()).ByName("contractor")
		if contractor == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Contratista no especificado", nil)
			return
		}

		var req SaveGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de solicitud inválido", nil)
			return
		}

		if err := service.SaveGoal(contractor, req.Category, req.Strategy, req.Target); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Meta guardada, el avance se recalculará en breve",
		})
	}
}

// RefreshGoals programa el recálculo del avance de metas. Con flush=true se
// salta la ventana de debounce y el recálculo corre de inmediato.
func RefreshGoals(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.RequestGoalsRefresh()

		message := "Recálculo del avance de metas programado"
		if r.URL.Query().Get("flush") == "true" {
			service.FlushGoalsRefresh()
			message = "Avance de metas recalculado"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": message,
		})
	}
}
