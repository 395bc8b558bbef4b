package aggregating

import (
	"sort"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// CountByDate agrupa actividades por día calendario (YYYY-MM-DD) en orden
// ascendente. Los subtipos de entrega de alimentos quedan excluidos de esta
// vista; los registros sin fecha se omiten.
func CountByDate(activities []*domain.Activity) []domain.DateCount {
	counts := make(map[string]int)

	for _, activity := range activities {
		if !activity.IsWellFormed() || activity.Date == nil || activity.Date.IsZero() {
			continue
		}

		if domain.IsDeliverySubtype(activity.Subtype) {
			continue
		}

		counts[utils.DayKey(*activity.Date)]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]domain.DateCount, 0, len(days))
	for _, day := range days {
		result = append(result, domain.DateCount{Date: day, Value: counts[day]})
	}

	return result
}
