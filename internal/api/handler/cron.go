package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/scheduler"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/apiErrors"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job que pueden dispararse manualmente
const (
	CronJobTypeActivities = "activities"
	CronJobTypeAlerts     = "alerts"
	CronJobTypeAll        = "all"
)

// CronJobServices agrupa los agendadores que admiten ejecución manual
type CronJobServices struct {
	ActivitySyncService *scheduler.ActivitySyncService
	AlertSyncService    *scheduler.AlertSyncService
}

// RunCronJob dispara manualmente un cron job específico
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo los administradores pueden ejecutar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeActivities:
			if services.ActivitySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización de actividades no disponible", nil)
				return
			}
			services.ActivitySyncService.TriggerManualSync()

		case CronJobTypeAlerts:
			if services.AlertSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de reevaluación de alertas no disponible", nil)
				return
			}
			services.AlertSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ActivitySyncService != nil {
				services.ActivitySyncService.TriggerManualSync()
			}
			if services.AlertSyncService != nil {
				services.AlertSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: activities, alerts, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparado manualmente")

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciado con éxito",
			"type":    cronType,
		})
	}
}

// GetCronStatus devuelve el estado de los cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo los administradores pueden consultar el estado de los cron jobs", nil)
			return
		}

		status := map[string]any{
			"activities": services.ActivitySyncService.GetStatus(),
			"alerts":     services.AlertSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
