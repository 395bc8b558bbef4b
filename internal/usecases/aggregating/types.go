package aggregating

import (
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

// UnknownType es el bucket para actividades educativas con tipo sin mapear
const UnknownType = "unknown"

var knownActivityTypes = map[string]bool{
	domain.ActivityTypeNutrition:    true,
	domain.ActivityTypePhysical:     true,
	domain.ActivityTypePsychosocial: true,
}

// CountByType considera únicamente registros marcados como actividad educativa
// y agrupa por el tipo de la actividad educativa. Si ese tipo está vacío se
// usa el tipo del registro; los valores sin mapear caen en el bucket
// "unknown". Los buckets en cero no aparecen en el resultado.
func CountByType(activities []*domain.Activity) map[string]int {
	counts := make(map[string]int)

	for _, activity := range activities {
		if !activity.IsWellFormed() || !activity.IsEducational() {
			continue
		}

		activityType := activity.Educational.Type
		if activityType == "" {
			activityType = activity.Type
		}

		if !knownActivityTypes[activityType] {
			activityType = UnknownType
		}

		counts[activityType]++
	}

	return counts
}
