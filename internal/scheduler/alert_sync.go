package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/observability"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/alerting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// AlertSyncConfig es la configuración de la reevaluación periódica de alertas
type AlertSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// AlertSyncService reevalúa las reglas de alerta en intervalos fijos sobre el
// estado vigente de los datos. Cada pasada reemplaza el conjunto anterior de
// alertas, nunca acumula.
type AlertSyncService struct {
	scheduler           *gocron.Scheduler
	config              AlertSyncConfig
	evaluator           alerting.Evaluator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAlertSyncService(
	evaluator alerting.Evaluator,
	appConfig *config.Config,
) *AlertSyncService {
	syncConfig := AlertSyncConfig{
		CronSchedule: appConfig.AlertSync.CronSchedule,
		LookbackDays: appConfig.AlertSync.LookbackDays,
		SyncEnabled:  appConfig.AlertSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración de la reevaluación periódica de alertas cargada")

	return &AlertSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		evaluator:   evaluator,
		syncRunning: false,
	}
}

// Start inicia el agendador
func (s *AlertSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reevaluación periódica de alertas deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reevaluación de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.evaluateAlerts()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la reevaluación de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo agendador de reevaluación de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AlertSyncService) evaluateAlerts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reevaluación de alertas ya en curso, ignorando")
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

	logrus.Info("Iniciando reevaluación de alertas")

	if err := s.evaluator.EvaluateAll(s.config.LookbackDays); err != nil {
		observability.AlertEvaluations.WithLabelValues("error").Inc()
		logrus.WithError(err).Error("Error al reevaluar alertas")
		return
	}

	observability.AlertEvaluations.WithLabelValues("success").Inc()

	logrus.WithField("duration", time.Since(startTime).String()).Info("Reevaluación de alertas completada")
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync dispara manualmente una reevaluación de alertas
func (s *AlertSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reevaluación de alertas ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reevaluación manual de alertas")
	go s.evaluateAlerts()
}

// GetStatus devuelve el estado actual del agendador
func (s *AlertSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
