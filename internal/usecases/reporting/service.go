// Package reporting es la fachada del dashboard: filtra las actividades según
// los criterios del usuario, ensambla la vista agregada y calcula el avance de
// metas por contratista. El recálculo de metas se amortigua con una ventana de
// debounce para fundir ediciones rápidas consecutivas en una sola pasada.
package reporting

import (
	"sync"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/infrastructure/repository"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/aggregating"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/filtering"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/usecases/progressing"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/debounce"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/log"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
	"github.com/pkg/errors"
)

type Reporter interface {
	GetSummary(criteria *domain.FilterCriteria) (*domain.DashboardSummary, error)
	GetActivities(criteria *domain.FilterCriteria) ([]*domain.Activity, error)
	GetGoalProgress(contractor string) (*domain.ContractorProgress, error)
	SaveGoal(contractor, category, strategy string, target float64) error
	RequestGoalsRefresh()
	FlushGoalsRefresh()
	Close()
}

type Service struct {
	activityRepo repository.ActivityRepository
	goalsRepo    repository.GoalsRepository
	topN         int

	// snapshots cachea el último cálculo de metas por contratista; se invalida
	// vía el debouncer cuando cambian metas o llegan actividades nuevas
	mu        sync.RWMutex
	snapshots map[string]*domain.GoalsSnapshot

	debouncer *debounce.Debouncer
}

func NewService(
	activityRepo repository.ActivityRepository,
	goalsRepo repository.GoalsRepository,
	cfg *config.Config,
) Reporter {
	topN := cfg.Dashboard.TopN
	if topN <= 0 {
		topN = aggregating.DefaultTopN
	}

	delay := time.Duration(cfg.Dashboard.GoalsRefreshDebounceMs) * time.Millisecond
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	return &Service{
		activityRepo: activityRepo,
		goalsRepo:    goalsRepo,
		topN:         topN,
		snapshots:    make(map[string]*domain.GoalsSnapshot),
		debouncer:    debounce.New(delay),
	}
}

// GetSummary produce la vista agregada completa para los criterios dados
func (s *Service) GetSummary(criteria *domain.FilterCriteria) (*domain.DashboardSummary, error) {
	filtered, err := s.GetActivities(criteria)
	if err != nil {
		return nil, err
	}

	return aggregating.BuildSummary(filtered, criteria, s.topN), nil
}

// GetActivities devuelve el subconjunto filtrado de actividades. Un rango de
// fechas completo se resuelve en la base de datos; el resto de predicados se
// aplica en memoria sobre el resultado.
func (s *Service) GetActivities(criteria *domain.FilterCriteria) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	var err error

	if criteria != nil && criteria.StartDate != nil && criteria.EndDate != nil {
		activities, err = s.activityRepo.GetByDateRange(
			utils.StartOfDay(*criteria.StartDate),
			utils.EndOfDay(*criteria.EndDate),
		)
	} else {
		activities, err = s.activityRepo.ListActivities()
	}
	if err != nil {
		return nil, errors.Wrap(err, "error al listar actividades")
	}

	return filtering.Apply(activities, criteria), nil
}

// GetGoalProgress calcula el avance de metas del contratista, reutilizando el
// snapshot cacheado cuando existe
func (s *Service) GetGoalProgress(contractor string) (*domain.ContractorProgress, error) {
	s.mu.RLock()
	snapshot := s.snapshots[contractor]
	s.mu.RUnlock()

	if snapshot == nil {
		var err error
		snapshot, err = s.rebuildSnapshot(contractor)
		if err != nil {
			return nil, err
		}
	}

	return progressing.FromSnapshot(snapshot), nil
}

// SaveGoal guarda una meta y programa el recálculo amortiguado
func (s *Service) SaveGoal(contractor, category, strategy string, target float64) error {
	if _, ok := domain.StrategyDisplayName(category, strategy); !ok {
		return errors.Errorf("estrategia desconocida: %s/%s", category, strategy)
	}

	if target < 0 {
		return errors.New("la meta no puede ser negativa")
	}

	if err := s.goalsRepo.SaveGoal(contractor, category, strategy, target); err != nil {
		return err
	}

	s.RequestGoalsRefresh()
	return nil
}

// RequestGoalsRefresh programa el recálculo de todos los snapshots tras la
// ventana de debounce. Las solicitudes rápidas consecutivas se funden en una
// sola pasada; gana la última.
func (s *Service) RequestGoalsRefresh() {
	s.debouncer.Schedule(s.refreshAll)
}

// FlushGoalsRefresh fuerza la ejecución inmediata del recálculo pendiente
func (s *Service) FlushGoalsRefresh() {
	s.debouncer.Flush()
}

// Close cancela cualquier recálculo pendiente
func (s *Service) Close() {
	s.debouncer.Stop()
}

func (s *Service) refreshAll() {
	for _, contractor := range domain.Contractors {
		if _, err := s.rebuildSnapshot(contractor); err != nil {
			log.L.WithError(err).WithField("contractor", contractor).
				Error("Error al recalcular el avance de metas")
		}
	}
}

func (s *Service) rebuildSnapshot(contractor string) (*domain.GoalsSnapshot, error) {
	goals, err := s.goalsRepo.GetGoals(contractor)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar metas")
	}

	activities, err := s.activityRepo.ListActivities()
	if err != nil {
		return nil, errors.Wrap(err, "error al listar actividades")
	}

	counts := CountsByStrategy(activities, contractor)
	snapshot := progressing.BuildSnapshot(contractor, goals, counts)

	s.mu.Lock()
	s.snapshots[contractor] = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// CountsByStrategy acumula los conteos alcanzados por categoría y estrategia
// para un contratista. Las actividades educativas cuentan bajo su estrategia
// del catálogo; las entregas de alimentos se acumulan bajo nutrición con su
// subtipo de entrega, crudas y sin puntuar.
func CountsByStrategy(activities []*domain.Activity, contractor string) map[string]map[string]float64 {
	counts := make(map[string]map[string]float64)

	add := func(category, key string) {
		if counts[category] == nil {
			counts[category] = make(map[string]float64)
		}
		counts[category][key]++
	}

	for _, activity := range activities {
		if !activity.IsWellFormed() || activity.Contractor != contractor {
			continue
		}

		if domain.IsDeliverySubtype(activity.Subtype) {
			add(domain.ActivityTypeNutrition, activity.Subtype)
			continue
		}

		if !activity.IsEducational() {
			continue
		}

		if _, ok := domain.StrategyDisplayName(activity.Type, activity.Subtype); ok {
			add(activity.Type, activity.Subtype)
		}
	}

	return counts
}
