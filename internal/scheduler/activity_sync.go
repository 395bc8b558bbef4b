// Package scheduler agrupa las tareas periódicas del dashboard: la descarga de
// actividades desde la app de campo y la reevaluación de alertas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/integrator/fieldapp"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/observability"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ActivitySyncConfig es la configuración del agendador de sincronización de
// actividades reportadas
type ActivitySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ActivitySyncService descarga periódicamente las actividades reportadas en la
// app de campo y las guarda en la base de datos del dashboard
type ActivitySyncService struct {
	scheduler           *gocron.Scheduler
	config              ActivitySyncConfig
	activityRepo        repository.ActivityRepository
	fieldApp            fieldapp.FieldAppIntegrator
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewActivitySyncService(
	activityRepo repository.ActivityRepository,
	fieldApp fieldapp.FieldAppIntegrator,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *ActivitySyncService {
	syncConfig := ActivitySyncConfig{
		CronSchedule: appConfig.ActivitySync.CronSchedule,
		LookbackDays: appConfig.ActivitySync.LookbackDays,
		SyncEnabled:  appConfig.ActivitySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de sincronización de actividades cargada")

	return &ActivitySyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		activityRepo: activityRepo,
		fieldApp:     fieldApp,
		reporter:     reporter,
		syncRunning:  false,
	}
}

// Start inicia el agendador
func (s *ActivitySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de actividades deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronización de actividades")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReportedActivities()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de actividades: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de sincronización de actividades")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReportedActivities descarga la ventana reciente de actividades y hace
// upsert en lote. Al terminar programa el recálculo amortiguado de metas.
func (s *ActivitySyncService) syncReportedActivities() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de actividades ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando sincronización de actividades reportadas")

	activities, err := s.fieldApp.GetReportedActivities(startDate, endDate)
	if err != nil {
		observability.ActivitySyncRuns.WithLabelValues("error").Inc()
		logrus.WithError(err).Error("Error al descargar actividades de la app de campo")
		return
	}

	if len(activities) == 0 {
		observability.ActivitySyncRuns.WithLabelValues("empty").Inc()
		logrus.Info("Sin actividades reportadas en el período")
		return
	}

	if err := s.activityRepo.SaveOrUpdateActivities(activities); err != nil {
		observability.ActivitySyncRuns.WithLabelValues("error").Inc()
		logrus.WithError(err).Error("Error al guardar actividades sincronizadas")
		return
	}

	observability.ActivitySyncRuns.WithLabelValues("success").Inc()
	observability.ActivitiesSynced.Add(float64(len(activities)))

	// Los conteos cambiaron: el avance de metas debe recalcularse
	if s.reporter != nil {
		s.reporter.RequestGoalsRefresh()
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"activities": len(activities),
		"days":       s.config.LookbackDays,
	}).Info("Sincronización de actividades completada")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente una sincronización de actividades
func (s *ActivitySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de actividades ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de actividades")
	go s.syncReportedActivities()
}

// GetStatus devuelve el estado actual del agendador
func (s *ActivitySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
