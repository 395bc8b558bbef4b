package aggregating

import (
	"sort"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
)

// Etiquetas de los días ISO de la semana, de lunes a domingo
var weekdayLabels = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

// isoWeekdayIndex convierte el Weekday de Go (domingo=0) al índice ISO (lunes=0)
func isoWeekdayIndex(activity *domain.Activity) int {
	return (int(activity.Date.Weekday()) + 6) % 7
}

// TemporalByModality agrupa las actividades por día ISO de la semana y por
// semana ISO, separando centros y parques, con conteo de eventos y suma de
// beneficiarios por bucket. Identifica el día pico (mayor conteo combinado de
// ambas modalidades, desempate por primera aparición de lunes a domingo) y el
// día más activo de cada modalidad por separado.
func TemporalByModality(activities []*domain.Activity) *domain.TemporalAnalysis {
	analysis := &domain.TemporalAnalysis{
		ByWeekday: make([]domain.WeekdayBucket, len(weekdayLabels)),
	}
	for i, label := range weekdayLabels {
		analysis.ByWeekday[i].Day = label
	}

	weeks := make(map[string]*domain.WeekBucket)

	for _, activity := range activities {
		if !activity.IsWellFormed() || activity.Date == nil || activity.Date.IsZero() {
			continue
		}

		bucket, _ := domain.CanonicalModality(activity.Location.Type)
		if bucket != domain.ModalityCenter && bucket != domain.ModalityPark {
			continue
		}

		dayIndex := isoWeekdayIndex(activity)
		weekKey := utils.ISOWeekKey(*activity.Date)

		week := weeks[weekKey]
		if week == nil {
			week = &domain.WeekBucket{Week: weekKey}
			weeks[weekKey] = week
		}

		if bucket == domain.ModalityCenter {
			analysis.ByWeekday[dayIndex].Centers.Events++
			analysis.ByWeekday[dayIndex].Centers.Beneficiaries += activity.Beneficiaries
			week.Centers.Events++
			week.Centers.Beneficiaries += activity.Beneficiaries
		} else {
			analysis.ByWeekday[dayIndex].Parks.Events++
			analysis.ByWeekday[dayIndex].Parks.Beneficiaries += activity.Beneficiaries
			week.Parks.Events++
			week.Parks.Beneficiaries += activity.Beneficiaries
		}
	}

	weekKeys := make([]string, 0, len(weeks))
	for key := range weeks {
		weekKeys = append(weekKeys, key)
	}
	sort.Strings(weekKeys)

	analysis.ByWeek = make([]domain.WeekBucket, 0, len(weekKeys))
	for _, key := range weekKeys {
		analysis.ByWeek = append(analysis.ByWeek, *weeks[key])
	}

	analysis.PeakDay = peakDay(analysis.ByWeekday, func(b domain.WeekdayBucket) int {
		return b.Centers.Events + b.Parks.Events
	})
	analysis.MostActiveDayCenters = peakDay(analysis.ByWeekday, func(b domain.WeekdayBucket) int {
		return b.Centers.Events
	})
	analysis.MostActiveDayParks = peakDay(analysis.ByWeekday, func(b domain.WeekdayBucket) int {
		return b.Parks.Events
	})

	return analysis
}

// peakDay devuelve la etiqueta del día con mayor conteo según la función de
// medida; vacío cuando no hubo eventos. Empates resueltos por primera aparición.
func peakDay(buckets []domain.WeekdayBucket, measure func(domain.WeekdayBucket) int) string {
	best := ""
	bestCount := 0

	for _, bucket := range buckets {
		if count := measure(bucket); count > bestCount {
			bestCount = count
			best = bucket.Day
		}
	}

	return best
}
