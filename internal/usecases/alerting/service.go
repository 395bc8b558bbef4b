// Package alerting reevalúa periódicamente las reglas de alerta sobre los
// datos vigentes. La evaluación siempre parte del estado actual, nunca de
// deltas: la misma entrada produce el mismo conjunto de alertas y el conjunto
// anterior se reemplaza completo.
package alerting

import (
	"fmt"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/progressing"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/reporting"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/log"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
	"github.com/pkg/errors"
)

// criticalThreshold es el porcentaje de avance por debajo del cual una
// categoría dispara alerta crítica
const criticalThreshold = 25.0

type Evaluator interface {
	EvaluateAll(lookbackDays int) error
	Evaluate(contractor string, lookbackDays int) ([]*domain.Alert, error)
	ActiveAlerts() (*domain.AlertsResponse, error)
}

type Service struct {
	activityRepo repository.ActivityRepository
	goalsRepo    repository.GoalsRepository
	alertRepo    repository.AlertRepository
}

func NewService(
	activityRepo repository.ActivityRepository,
	goalsRepo repository.GoalsRepository,
	alertRepo repository.AlertRepository,
) Evaluator {
	return &Service{
		activityRepo: activityRepo,
		goalsRepo:    goalsRepo,
		alertRepo:    alertRepo,
	}
}

// EvaluateAll reevalúa las reglas para todos los contratistas y reemplaza las
// alertas vigentes de cada uno por el conjunto recién calculado
func (s *Service) EvaluateAll(lookbackDays int) error {
	for _, contractor := range domain.Contractors {
		alerts, err := s.Evaluate(contractor, lookbackDays)
		if err != nil {
			return errors.Wrapf(err, "error al evaluar alertas del contratista %s", contractor)
		}

		if err := s.alertRepo.ReplaceAlerts(contractor, alerts); err != nil {
			return errors.Wrapf(err, "error al guardar alertas del contratista %s", contractor)
		}

		log.L.WithFields(log.Fields{
			"contractor": contractor,
			"alerts":     len(alerts),
		}).Info("Alertas reevaluadas")
	}

	return nil
}

// Evaluate aplica las tres reglas sobre el estado actual del contratista:
// categorías con avance promedio crítico, inactividad en la ventana reciente y
// tipos de ubicación no reconocidos
func (s *Service) Evaluate(contractor string, lookbackDays int) ([]*domain.Alert, error) {
	activities, err := s.activityRepo.ListActivities()
	if err != nil {
		return nil, errors.Wrap(err, "error al listar actividades")
	}

	goals, err := s.goalsRepo.GetGoals(contractor)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar metas")
	}

	alerts := make([]*domain.Alert, 0)

	counts := reporting.CountsByStrategy(activities, contractor)
	snapshot := progressing.BuildSnapshot(contractor, goals, counts)

	alerts = append(alerts, s.criticalGoalAlerts(contractor, snapshot)...)

	inactivity, err := s.inactivityAlert(contractor, lookbackDays)
	if err != nil {
		return nil, errors.Wrap(err, "error al verificar inactividad")
	}
	if inactivity != nil {
		alerts = append(alerts, inactivity)
	}

	if alert := s.unrecognizedLocationAlert(contractor, activities); alert != nil {
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func (s *Service) ActiveAlerts() (*domain.AlertsResponse, error) {
	return s.alertRepo.ListActiveAlerts()
}

// criticalGoalAlerts genera una alerta crítica por cada categoría cuyo avance
// promedio cae por debajo del umbral
func (s *Service) criticalGoalAlerts(contractor string, snapshot *domain.GoalsSnapshot) []*domain.Alert {
	alerts := make([]*domain.Alert, 0)

	progress := progressing.FromSnapshot(snapshot)
	for _, category := range progress.Categories {
		if len(category.Strategies) == 0 || category.Average >= criticalThreshold {
			continue
		}

		alerts = append(alerts, newAlert(
			contractor,
			domain.AlertTypeGoalCritical,
			domain.AlertLevelCritical,
			category.Category,
			fmt.Sprintf("El avance promedio de %s es %.2f%%, por debajo del umbral crítico de %.0f%%",
				category.Category, category.Average, criticalThreshold),
		))
	}

	return alerts
}

// inactivityAlert advierte cuando el contratista no registra actividades con
// fecha dentro de la ventana reciente. Los registros sin fecha no cuentan como
// actividad reciente.
func (s *Service) inactivityAlert(contractor string, lookbackDays int) (*domain.Alert, error) {
	if lookbackDays <= 0 {
		return nil, nil
	}

	since := utils.StartOfDay(time.Now().AddDate(0, 0, -lookbackDays))

	count, err := s.activityRepo.CountByContractorSince(contractor, since)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	return newAlert(
		contractor,
		domain.AlertTypeInactivity,
		domain.AlertLevelWarning,
		"",
		fmt.Sprintf("Sin actividades registradas en los últimos %d días", lookbackDays),
	), nil
}

// unrecognizedLocationAlert expone como diagnóstico los tipos de ubicación que
// no coinciden con ninguna modalidad conocida
func (s *Service) unrecognizedLocationAlert(contractor string, activities []*domain.Activity) *domain.Alert {
	seen := make(map[string]bool)
	unrecognized := make([]string, 0)

	for _, activity := range activities {
		if !activity.IsWellFormed() || activity.Contractor != contractor || !activity.IsEducational() {
			continue
		}

		raw := activity.Location.Type
		if _, ok := domain.CanonicalModality(raw); ok || seen[raw] {
			continue
		}

		seen[raw] = true
		unrecognized = append(unrecognized, raw)
	}

	if len(unrecognized) == 0 {
		return nil
	}

	return newAlert(
		contractor,
		domain.AlertTypeUnrecognizedLocation,
		domain.AlertLevelInfo,
		"",
		fmt.Sprintf("Tipos de ubicación no reconocidos en %d registros distintos: revise la captura en terreno", len(unrecognized)),
	)
}

func newAlert(contractor, alertType, level, category, message string) *domain.Alert {
	now := time.Now()

	alert := &domain.Alert{
		Contractor: contractor,
		Type:       alertType,
		Level:      level,
		Category:   category,
		Message:    message,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if id, err := utils.GenerateID(); err == nil {
		alert.ID = id
	}

	return alert
}
