package aggregating

import (
	"sort"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// NutritionStats acumula las entregas de alimentos separadas por modalidad
// (Centros de Vida vs parques), calcula el promedio de beneficiarios por
// entrega (0 cuando no hay eventos) y clasifica las ubicaciones por total de
// beneficiarios atendidos, descendente y truncado al top-N.
func NutritionStats(activities []*domain.Activity, topN int) *domain.NutritionStats {
	if topN <= 0 {
		topN = DefaultTopN
	}

	stats := &domain.NutritionStats{}
	locationTotals := make(map[string]int)
	locationOrder := make([]string, 0)

	for _, activity := range activities {
		if !activity.IsWellFormed() || !domain.IsDeliverySubtype(activity.Subtype) {
			continue
		}

		bucket, _ := domain.CanonicalModality(activity.Location.Type)
		switch bucket {
		case domain.ModalityCenter:
			stats.Centers.Deliveries++
			stats.Centers.Beneficiaries += activity.Beneficiaries
		case domain.ModalityPark:
			stats.Parks.Deliveries++
			stats.Parks.Beneficiaries += activity.Beneficiaries
		}

		name := activity.Location.Name
		if _, seen := locationTotals[name]; !seen {
			locationOrder = append(locationOrder, name)
		}
		locationTotals[name] += activity.Beneficiaries
	}

	if stats.Centers.Deliveries > 0 {
		stats.Centers.AveragePerDelivery = utils.RoundWithTwoDecimalPlace(
			float64(stats.Centers.Beneficiaries) / float64(stats.Centers.Deliveries))
	}
	if stats.Parks.Deliveries > 0 {
		stats.Parks.AveragePerDelivery = utils.RoundWithTwoDecimalPlace(
			float64(stats.Parks.Beneficiaries) / float64(stats.Parks.Deliveries))
	}

	top := make([]domain.NutritionLocation, 0, len(locationOrder))
	for _, name := range locationOrder {
		top = append(top, domain.NutritionLocation{Name: name, Beneficiaries: locationTotals[name]})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Beneficiaries > top[j].Beneficiaries
	})

	if len(top) > topN {
		top = top[:topN]
	}
	stats.TopLocations = top

	return stats
}
