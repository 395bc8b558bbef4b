package aggregating

import (
	"testing"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func educationalAt(contractor, locationName, locationType string, beneficiaries, day int) *domain.Activity {
	activity := educational(contractor, domain.ActivityTypePhysical, "walkingClub", locationName, day)
	activity.Location.Type = locationType
	activity.Beneficiaries = beneficiaries
	return activity
}

func TestModalityDistribution_SinonimosYNoReconocidos(t *testing.T) {
	activities := []*domain.Activity{
		educationalAt("CUC", "CDV Norte", "centro de vida", 10, 1),
		educationalAt("CUC", "CDV Sur", "CDV", 10, 2),
		educationalAt("FUNDACARIBE", "Parque Central", "Espacio Comunitario", 10, 3),
		educationalAt("FUNDACARIBE", "Salón La Paz", "Salon Comunal", 10, 4),
		educationalAt("CUC", "Bodega", "bodega municipal", 10, 5),
		educationalAt("CUC", "Bodega", "bodega municipal", 10, 6),
	}

	got := ModalityDistribution(activities)

	assert.Equal(t, map[string]int{
		domain.ModalityCenter: 2,
		domain.ModalityPark:   1,
		domain.ModalityHall:   1,
		"No reconocido: bodega municipal": 2,
	}, got.Total)

	assert.Equal(t, map[string]int{
		domain.ModalityCenter: 2,
		"No reconocido: bodega municipal": 2,
	}, got.ByContractor["CUC"])

	// Cada valor crudo no reconocido se lista una sola vez
	assert.Equal(t, []string{"bodega municipal"}, got.Unrecognized)
}

func TestUniqueAttendance_DeduplicaPorSesion(t *testing.T) {
	activities := []*domain.Activity{
		// Misma sesión reportada dos veces: gana el máximo
		educationalAt("CUC", "CDV Norte", "centro", 40, 1),
		educationalAt("CUC", "CDV Norte", "centro", 55, 1),
		// Otro día en la misma ubicación: sesión distinta
		educationalAt("CUC", "CDV Norte", "centro", 30, 2),
		// Otro contratista, misma ubicación y día: sesión distinta
		educationalAt("FUNDACARIBE", "CDV Norte", "centro", 20, 1),
	}

	got := UniqueAttendance(activities)

	assert.Equal(t, 55+30+20, got)

	// Nunca supera la suma ingenua
	naive := 0
	for _, activity := range activities {
		naive += activity.Beneficiaries
	}
	assert.LessOrEqual(t, got, naive)
}

func TestNutritionStats_SeparaCentrosYParques(t *testing.T) {
	activities := []*domain.Activity{
		delivery("CUC", "centerRation", "CDV Norte", "Centro de Vida", 100, 1),
		delivery("CUC", "centerRation", "CDV Norte", "Centro de Vida", 50, 2),
		delivery("FUNDACARIBE", "parkSnack", "Parque Central", "Parque", 30, 3),
		// Actividad educativa: no es entrega, queda fuera
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 4),
	}

	got := NutritionStats(activities, 10)

	assert.Equal(t, 2, got.Centers.Deliveries)
	assert.Equal(t, 150, got.Centers.Beneficiaries)
	assert.Equal(t, 75.0, got.Centers.AveragePerDelivery)

	assert.Equal(t, 1, got.Parks.Deliveries)
	assert.Equal(t, 30, got.Parks.Beneficiaries)
	assert.Equal(t, 30.0, got.Parks.AveragePerDelivery)

	assert.Equal(t, []domain.NutritionLocation{
		{Name: "CDV Norte", Beneficiaries: 150},
		{Name: "Parque Central", Beneficiaries: 30},
	}, got.TopLocations)
}

func TestNutritionStats_SinEventosPromedioCero(t *testing.T) {
	got := NutritionStats(nil, 10)

	assert.Equal(t, 0.0, got.Centers.AveragePerDelivery)
	assert.Equal(t, 0.0, got.Parks.AveragePerDelivery)
	assert.Empty(t, got.TopLocations)
}

func TestTemporalByModality_DiasPicoPorModalidad(t *testing.T) {
	// 3 de marzo de 2025 es lunes
	monday := func(contractor, locType string, beneficiaries int) *domain.Activity {
		return educationalAt(contractor, "Sitio", locType, beneficiaries, 3)
	}
	tuesday := func(contractor, locType string, beneficiaries int) *domain.Activity {
		return educationalAt(contractor, "Sitio", locType, beneficiaries, 4)
	}

	activities := []*domain.Activity{
		monday("CUC", "Centro de Vida", 10),
		monday("CUC", "Centro de Vida", 15),
		tuesday("CUC", "Centro de Vida", 5),
		tuesday("FUNDACARIBE", "Parque", 20),
		tuesday("FUNDACARIBE", "Parque", 25),
		// Modalidad no reconocida: fuera del análisis temporal
		educationalAt("CUC", "Bodega", "bodega", 99, 5),
	}

	got := TemporalByModality(activities)

	assert.Equal(t, "lunes", got.ByWeekday[0].Day)
	assert.Equal(t, 2, got.ByWeekday[0].Centers.Events)
	assert.Equal(t, 25, got.ByWeekday[0].Centers.Beneficiaries)
	assert.Equal(t, 1, got.ByWeekday[1].Centers.Events)
	assert.Equal(t, 2, got.ByWeekday[1].Parks.Events)

	// Martes combina 3 eventos contra 2 del lunes
	assert.Equal(t, "martes", got.PeakDay)
	assert.Equal(t, "lunes", got.MostActiveDayCenters)
	assert.Equal(t, "martes", got.MostActiveDayParks)

	// Todas las actividades caen en la misma semana ISO
	assert.Len(t, got.ByWeek, 1)
	assert.Equal(t, "2025-W10", got.ByWeek[0].Week)
	assert.Equal(t, 3, got.ByWeek[0].Centers.Events)
	assert.Equal(t, 2, got.ByWeek[0].Parks.Events)
}

func TestTemporalByModality_SinEventosSinPico(t *testing.T) {
	got := TemporalByModality(nil)

	assert.Empty(t, got.PeakDay)
	assert.Empty(t, got.MostActiveDayCenters)
	assert.Empty(t, got.MostActiveDayParks)
	assert.Len(t, got.ByWeekday, 7)
	assert.Empty(t, got.ByWeek)
}
