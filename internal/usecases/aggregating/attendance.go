package aggregating

import (
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// UniqueAttendance calcula el total de beneficiarios evitando el doble conteo
// cuando varios registros representan la misma sesión de asistencia. La clave
// de deduplicación es contratista + ubicación + día calendario; por cada grupo
// se toma el máximo de beneficiarios reportado. El resultado nunca supera la
// suma ingenua de beneficiarios de la misma colección.
func UniqueAttendance(activities []*domain.Activity) int {
	maxPerSession := make(map[string]int)

	for _, activity := range activities {
		if !activity.IsWellFormed() {
			continue
		}

		day := ""
		if activity.Date != nil && !activity.Date.IsZero() {
			day = utils.DayKey(*activity.Date)
		}

		key := activity.Contractor + "|" + activity.Location.Name + "|" + day
		if activity.Beneficiaries > maxPerSession[key] {
			maxPerSession[key] = activity.Beneficiaries
		}
	}

	total := 0
	for _, beneficiaries := range maxPerSession {
		total += beneficiaries
	}

	return total
}
