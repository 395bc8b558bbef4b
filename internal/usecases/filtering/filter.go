// Package filtering implementa el evaluador de filtros del dashboard: dado el
// conjunto completo de actividades y un FilterCriteria, devuelve el
// subconjunto donde cada criterio especificado (distinto del comodín)
// coincide. Función pura, sin efectos secundarios.
package filtering

import (
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// Apply evalúa los predicados del criterio sobre cada actividad. Los registros
// malformados se descartan antes de evaluar predicados; un registro con fecha
// ausente falla cualquier filtro de fecha activo, nunca coincide por defecto.
func Apply(activities []*domain.Activity, criteria *domain.FilterCriteria) []*domain.Activity {
	filtered := make([]*domain.Activity, 0, len(activities))
	if len(activities) == 0 {
		return filtered
	}

	var startBound, endBound *time.Time
	if criteria != nil {
		if criteria.StartDate != nil {
			bound := utils.StartOfDay(*criteria.StartDate)
			startBound = &bound
		}
		if criteria.EndDate != nil {
			bound := utils.EndOfDay(*criteria.EndDate)
			endBound = &bound
		}
	}

	for _, activity := range activities {
		if !activity.IsWellFormed() {
			continue
		}

		if criteria == nil {
			filtered = append(filtered, activity)
			continue
		}

		if !matchesValue(criteria.Contractor, activity.Contractor) {
			continue
		}

		if !matchesValue(criteria.Type, activity.Type) {
			continue
		}

		if !matchesValue(criteria.LocationType, activity.Location.Type) {
			continue
		}

		if !matchesDateRange(activity.Date, startBound, endBound) {
			continue
		}

		filtered = append(filtered, activity)
	}

	return filtered
}

// matchesValue compara por igualdad exacta; vacío y "all" actúan como comodín
func matchesValue(criterion, value string) bool {
	return criterion == "" || criterion == domain.FilterAll || criterion == value
}

// matchesDateRange compara la fecha del registro truncada a medianoche contra
// el límite inferior normalizado, y la fecha completa contra el fin del día
// del límite superior (ambos inclusivos).
func matchesDateRange(date *time.Time, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}

	if date == nil || date.IsZero() {
		return false
	}

	if start != nil && utils.StartOfDay(*date).Before(*start) {
		return false
	}

	if end != nil && date.After(*end) {
		return false
	}

	return true
}
