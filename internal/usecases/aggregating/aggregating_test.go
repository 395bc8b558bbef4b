package aggregating

import (
	"testing"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func educational(contractor, activityType, subtype, locationName string, day int) *domain.Activity {
	date := time.Date(2025, time.March, day, 10, 0, 0, 0, time.Local)
	return &domain.Activity{
		ID:         locationName + date.Format("02"),
		Date:       &date,
		Contractor: contractor,
		Type:       activityType,
		Subtype:    subtype,
		Location:   &domain.Location{Name: locationName, Type: "Centro de Vida"},
		Educational: &domain.EducationalActivity{
			Included: true,
			Type:     activityType,
		},
	}
}

func delivery(contractor, subtype, locationName, locationType string, beneficiaries, day int) *domain.Activity {
	date := time.Date(2025, time.March, day, 12, 0, 0, 0, time.Local)
	return &domain.Activity{
		ID:            "ent-" + locationName + date.Format("02"),
		Date:          &date,
		Contractor:    contractor,
		Type:          domain.ActivityTypeNutrition,
		Subtype:       subtype,
		Location:      &domain.Location{Name: locationName, Type: locationType},
		Beneficiaries: beneficiaries,
		Educational:   &domain.EducationalActivity{Included: false},
	}
}

func TestCountByLocation_OrdenaYTrunca(t *testing.T) {
	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 1),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Sur", 2),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Sur", 3),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "Parque Central", 4),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "Parque Central", 5),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "Parque Central", 6),
	}

	got := CountByLocation(activities, 2)

	assert.Equal(t, []domain.LocationCount{
		{Name: "Parque Central", Value: 3},
		{Name: "CDV Sur", Value: 2},
	}, got)
}

func TestCountByLocation_EmpatesEnOrdenDeAparicion(t *testing.T) {
	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "Primero", 1),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "Segundo", 2),
	}

	got := CountByLocation(activities, 10)

	// Mismo conteo: el orden estable preserva la primera aparición
	assert.Equal(t, []domain.LocationCount{
		{Name: "Primero", Value: 1},
		{Name: "Segundo", Value: 1},
	}, got)
}

func TestCountByLocation_SoloActividadesEducativas(t *testing.T) {
	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 1),
		delivery("CUC", "centerRation", "CDV Norte", "Centro de Vida", 50, 1),
	}

	got := CountByLocation(activities, 10)

	assert.Equal(t, []domain.LocationCount{{Name: "CDV Norte", Value: 1}}, got)
}

func TestCountByDate_ExcluyeEntregasYRegistrosSinFecha(t *testing.T) {
	noDate := educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 1)
	noDate.Date = nil

	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 12),
		educational("CUC", domain.ActivityTypePhysical, "walkingClub", "Parque Central", 10),
		educational("FUNDACARIBE", domain.ActivityTypePhysical, "rumbaTherapy", "Parque Sur", 10),
		delivery("CUC", "parkSnack", "Parque Central", "Parque", 30, 10),
		noDate,
	}

	got := CountByDate(activities)

	assert.Equal(t, []domain.DateCount{
		{Date: "2025-03-10", Value: 2},
		{Date: "2025-03-12", Value: 1},
	}, got)
}

func TestCountBySubtype_EtiquetaCombinada(t *testing.T) {
	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 1),
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Sur", 2),
		educational("FUNDACARIBE", domain.ActivityTypeNutrition, "workshops", "CDV Este", 3),
		delivery("CUC", "parkSnack", "Parque Central", "Parque", 30, 4),
		educational("CUC", domain.ActivityTypePhysical, "", "CDV Norte", 5), // sin subtipo: se omite
	}

	got := CountBySubtype(activities)

	assert.Equal(t, []domain.LabelCount{
		{Label: "Talleres educativos en nutrición (CUC)", Value: 2},
		{Label: "Talleres educativos en nutrición (FUNDACARIBE)", Value: 1},
		{Label: "Meriendas en parque (CUC)", Value: 1},
	}, got)
}

func TestCountByType_CadenaDeRespaldo(t *testing.T) {
	// Registro educativo sin tipo en educationalActivity: usa el tipo del registro
	fallback := educational("CUC", domain.ActivityTypePhysical, "walkingClub", "Parque Central", 1)
	fallback.Educational.Type = ""

	// Tipo sin mapear en ambos campos: cae en unknown
	unknown := educational("CUC", "recreación", "walkingClub", "Parque Sur", 2)

	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 3),
		fallback,
		unknown,
		delivery("CUC", "ration", "CDV Norte", "Centro de Vida", 20, 4), // no educativa: fuera
	}

	got := CountByType(activities)

	assert.Equal(t, map[string]int{
		domain.ActivityTypeNutrition: 1,
		domain.ActivityTypePhysical:  1,
		UnknownType:                  1,
	}, got)
}

func TestBuildSummary_TotalesEIdempotencia(t *testing.T) {
	activities := []*domain.Activity{
		educational("CUC", domain.ActivityTypeNutrition, "workshops", "CDV Norte", 1),
		educational("FUNDACARIBE", domain.ActivityTypePhysical, "walkingClub", "Parque Central", 2),
		delivery("CUC", "centerRation", "CDV Norte", "Centro de Vida", 80, 3),
	}
	criteria := &domain.FilterCriteria{Contractor: domain.FilterAll}

	first := BuildSummary(activities, criteria, 10)
	second := BuildSummary(activities, criteria, 10)

	assert.Equal(t, 2, first.TotalActivities)
	assert.Equal(t, 1, first.TotalDeliveries)
	assert.Equal(t, criteria, first.Filters)

	// La misma entrada produce la misma salida, campo por campo
	assert.Equal(t, first.Locations, second.Locations)
	assert.Equal(t, first.Timeline, second.Timeline)
	assert.Equal(t, first.Subtypes, second.Subtypes)
	assert.Equal(t, first.Types, second.Types)
	assert.Equal(t, first.Modality, second.Modality)
	assert.Equal(t, first.Nutrition, second.Nutrition)
	assert.Equal(t, first.Temporal, second.Temporal)
	assert.Equal(t, first.UniqueAttendance, second.UniqueAttendance)
}
