package aggregating

import (
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

// ModalityDistribution normaliza el tipo de ubicación de cada actividad
// educativa a su bucket canónico y produce la distribución global y una por
// cada contratista presente. Los valores crudos que no coinciden con ningún
// sinónimo generan un bucket propio y quedan listados en Unrecognized para
// visibilidad del operador: es un fallback de diagnóstico, no pérdida
// silenciosa de datos.
func ModalityDistribution(activities []*domain.Activity) *domain.ModalityDistribution {
	dist := &domain.ModalityDistribution{
		Total:        make(map[string]int),
		ByContractor: make(map[string]map[string]int),
	}

	seenRaw := make(map[string]bool)

	for _, activity := range activities {
		if !activity.IsWellFormed() || !activity.IsEducational() {
			continue
		}

		bucket, recognized := domain.CanonicalModality(activity.Location.Type)
		dist.Total[bucket]++

		byContractor := dist.ByContractor[activity.Contractor]
		if byContractor == nil {
			byContractor = make(map[string]int)
			dist.ByContractor[activity.Contractor] = byContractor
		}
		byContractor[bucket]++

		if !recognized && !seenRaw[activity.Location.Type] {
			seenRaw[activity.Location.Type] = true
			dist.Unrecognized = append(dist.Unrecognized, activity.Location.Type)
		}
	}

	return dist
}
