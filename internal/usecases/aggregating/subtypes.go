package aggregating

import (
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

// CountBySubtype agrupa por la etiqueta derivada de tipo+subtipo+contratista
// del catálogo de estrategias. Los registros a los que les falte cualquiera de
// las tres claves, o cuyo subtipo no esté catalogado, se omiten.
func CountBySubtype(activities []*domain.Activity) []domain.LabelCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, activity := range activities {
		if !activity.IsWellFormed() {
			continue
		}

		label, ok := domain.SubtypeLabel(activity.Type, activity.Subtype, activity.Contractor)
		if !ok {
			continue
		}

		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	result := make([]domain.LabelCount, 0, len(order))
	for _, label := range order {
		result = append(result, domain.LabelCount{Label: label, Value: counts[label]})
	}

	return result
}
