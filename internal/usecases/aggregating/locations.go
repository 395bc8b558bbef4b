// Package aggregating implementa el motor de agregación del dashboard:
// funciones puras e idempotentes que transforman la colección filtrada de
// actividades en las vistas derivadas que consumen las gráficas y tarjetas.
// Política común: entrada vacía produce un resultado vacío (nunca error) y un
// registro al que le falte un campo requerido para una agregación se omite
// solo de esa agregación.
package aggregating

import (
	"sort"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
)

// DefaultTopN es el límite por defecto para los rankings de ubicaciones
const DefaultTopN = 10

// CountByLocation agrupa las actividades educativas por nombre de ubicación,
// ordena descendente por conteo (empates en orden de aparición, orden estable)
// y trunca al top-N solicitado.
func CountByLocation(activities []*domain.Activity, topN int) []domain.LocationCount {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, activity := range activities {
		if !activity.IsWellFormed() || !activity.IsEducational() {
			continue
		}

		name := activity.Location.Name
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	result := make([]domain.LocationCount, 0, len(order))
	for _, name := range order {
		result = append(result, domain.LocationCount{Name: name, Value: counts[name]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})

	if len(result) > topN {
		result = result[:topN]
	}

	return result
}
