// Package progressing implementa el calculador de avance de metas: compara
// los conteos agregados por estrategia contra las metas configuradas y
// produce porcentajes de avance con su nivel cualitativo. Solo reporta sobre
// el catálogo fijo de estrategias, nunca inventa estrategias nuevas, y el
// recálculo con la misma entrada produce salida idéntica.
package progressing

import (
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// Orden fijo de categorías en los reportes
var categoryOrder = []string{
	domain.ActivityTypeNutrition,
	domain.ActivityTypePhysical,
	domain.ActivityTypePsychosocial,
}

// BuildSnapshot arma el GoalsSnapshot de un contratista a partir de metas y
// conteos. Progress solo se define donde la meta es estrictamente positiva;
// Averages es el promedio simple de los porcentajes definidos por categoría.
func BuildSnapshot(contractor string, goals, counts map[string]map[string]float64) *domain.GoalsSnapshot {
	snapshot := &domain.GoalsSnapshot{
		Contractor:  contractor,
		Goals:       goals,
		Counts:      counts,
		Progress:    make(map[string]map[string]float64),
		Averages:    make(map[string]float64),
		GeneratedAt: time.Now(),
	}

	for _, category := range categoryOrder {
		categoryGoals := goals[category]
		if len(categoryGoals) == 0 {
			continue
		}

		progress := make(map[string]float64)
		sum := 0.0
		defined := 0

		for key, target := range categoryGoals {
			if target <= 0 {
				continue
			}

			actual := counts[category][key]
			percentage := utils.RoundWithTwoDecimalPlace(actual / target * 100)
			progress[key] = percentage
			sum += percentage
			defined++
		}

		if defined > 0 {
			snapshot.Progress[category] = progress
			snapshot.Averages[category] = utils.RoundWithTwoDecimalPlace(sum / float64(defined))
		}
	}

	return snapshot
}

// FromSnapshot produce el reporte de avance de un contratista: por estrategia
// con meta positiva {actual, meta, porcentaje, nivel}, extremos por porcentaje
// y promedio de categoría. Las estrategias sin meta se listan aparte como
// conteo crudo informativo y las entregas de alimentos se reportan crudas,
// explícitamente fuera del puntaje.
func FromSnapshot(snapshot *domain.GoalsSnapshot) *domain.ContractorProgress {
	result := &domain.ContractorProgress{
		Contractor:  snapshot.Contractor,
		Categories:  make([]domain.CategoryProgress, 0, len(categoryOrder)),
		GeneratedAt: snapshot.GeneratedAt,
	}

	for _, category := range categoryOrder {
		categoryProgress := domain.CategoryProgress{Category: category}

		for _, strategy := range domain.StrategyCatalog[category] {
			target := snapshot.Goals[category][strategy.Key]
			actual := snapshot.Counts[category][strategy.Key]

			if target <= 0 {
				if actual > 0 {
					categoryProgress.Unscored = append(categoryProgress.Unscored, domain.StrategyProgress{
						Key:         strategy.Key,
						DisplayName: strategy.DisplayName,
						Actual:      actual,
						Tier:        domain.TierNoTarget,
					})
				}
				continue
			}

			percentage, defined := snapshot.Progress[category][strategy.Key]
			if !defined {
				percentage = utils.RoundWithTwoDecimalPlace(actual / target * 100)
			}

			categoryProgress.Strategies = append(categoryProgress.Strategies, domain.StrategyProgress{
				Key:         strategy.Key,
				DisplayName: strategy.DisplayName,
				Actual:      actual,
				Target:      target,
				Percentage:  percentage,
				Tier:        domain.TierForPercentage(percentage),
			})
		}

		if category == domain.ActivityTypeNutrition {
			categoryProgress.Deliveries = deliveryCounts(snapshot.Counts[category])
		}

		if len(categoryProgress.Strategies) > 0 {
			categoryProgress.Average = categoryAverage(categoryProgress.Strategies)
			categoryProgress.Best, categoryProgress.Worst = extremes(categoryProgress.Strategies)
		}

		result.Categories = append(result.Categories, categoryProgress)
	}

	return result
}

// deliveryCounts extrae los conteos crudos de entregas en el orden del catálogo
func deliveryCounts(counts map[string]float64) []domain.DeliveryCount {
	deliveries := make([]domain.DeliveryCount, 0, len(domain.DeliverySubtypeOrder))

	for _, key := range domain.DeliverySubtypeOrder {
		total, ok := counts[key]
		if !ok {
			continue
		}
		deliveries = append(deliveries, domain.DeliveryCount{
			Key:         key,
			DisplayName: domain.DeliverySubtypes[key],
			Total:       total,
		})
	}

	return deliveries
}

// categoryAverage es el promedio simple de los porcentajes por estrategia,
// no de los conteos absolutos
func categoryAverage(strategies []domain.StrategyProgress) float64 {
	sum := 0.0
	for _, strategy := range strategies {
		sum += strategy.Percentage
	}
	return utils.RoundWithTwoDecimalPlace(sum / float64(len(strategies)))
}

// extremes devuelve la mejor y la peor estrategia por porcentaje
func extremes(strategies []domain.StrategyProgress) (*domain.StrategyProgress, *domain.StrategyProgress) {
	best := strategies[0]
	worst := strategies[0]

	for _, strategy := range strategies[1:] {
		if strategy.Percentage > best.Percentage {
			best = strategy
		}
		if strategy.Percentage < worst.Percentage {
			worst = strategy
		}
	}

	return &best, &worst
}
