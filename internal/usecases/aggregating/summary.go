package aggregating

import (
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

// BuildSummary ensambla la vista derivada completa del dashboard sobre una
// colección ya filtrada. Reejecutar con la misma entrada produce el mismo
// resultado: ninguna agregación guarda estado.
func BuildSummary(activities []*domain.Activity, criteria *domain.FilterCriteria, topN int) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		Locations:        CountByLocation(activities, topN),
		Timeline:         CountByDate(activities),
		Subtypes:         CountBySubtype(activities),
		Types:            CountByType(activities),
		Modality:         ModalityDistribution(activities),
		Nutrition:        NutritionStats(activities, topN),
		Temporal:         TemporalByModality(activities),
		UniqueAttendance: UniqueAttendance(activities),
		Filters:          criteria,
		GeneratedAt:      time.Now(),
	}

	for _, activity := range activities {
		if !activity.IsWellFormed() {
			continue
		}
		if activity.IsEducational() {
			summary.TotalActivities++
		}
		if domain.IsDeliverySubtype(activity.Subtype) {
			summary.TotalDeliveries++
		}
	}

	return summary
}
