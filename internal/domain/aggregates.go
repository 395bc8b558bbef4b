package domain

import "time"

// LocationCount es una entrada del ranking de ubicaciones por actividades
type LocationCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DateCount es una entrada de la línea de tiempo diaria (clave YYYY-MM-DD)
type DateCount struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// LabelCount es un conteo por etiqueta derivada (tipo+subtipo+contratista)
type LabelCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ModalityDistribution es la distribución de actividades educativas por
// modalidad de ubicación, global y por contratista. Unrecognized lista los
// valores crudos que no coincidieron con ningún sinónimo conocido.
type ModalityDistribution struct {
	Total        map[string]int            `json:"total"`
	ByContractor map[string]map[string]int `json:"by_contractor"`
	Unrecognized []string                  `json:"unrecognized,omitempty"`
}

// NutritionBucket acumula entregas de alimentos para una modalidad
type NutritionBucket struct {
	Deliveries         int     `json:"deliveries"`
	Beneficiaries      int     `json:"beneficiaries"`
	AveragePerDelivery float64 `json:"average_per_delivery"`
}

type NutritionLocation struct {
	Name          string `json:"name"`
	Beneficiaries int    `json:"beneficiaries"`
}

// NutritionStats separa las entregas entre Centros de Vida y parques y
// clasifica las ubicaciones por beneficiarios atendidos
type NutritionStats struct {
	Centers      NutritionBucket     `json:"centers"`
	Parks        NutritionBucket     `json:"parks"`
	TopLocations []NutritionLocation `json:"top_locations"`
}

// ModalityCount registra eventos y beneficiarios de una modalidad en un bucket temporal
type ModalityCount struct {
	Events        int `json:"events"`
	Beneficiaries int `json:"beneficiaries"`
}

type WeekdayBucket struct {
	Day     string        `json:"day"`
	Centers ModalityCount `json:"centers"`
	Parks   ModalityCount `json:"parks"`
}

type WeekBucket struct {
	Week    string        `json:"week"`
	Centers ModalityCount `json:"centers"`
	Parks   ModalityCount `json:"parks"`
}

// TemporalAnalysis agrupa actividades por día ISO de la semana y por semana
// ISO, separando centros y parques
type TemporalAnalysis struct {
	ByWeekday            []WeekdayBucket `json:"by_weekday"`
	ByWeek               []WeekBucket    `json:"by_week"`
	PeakDay              string          `json:"peak_day,omitempty"`
	MostActiveDayCenters string          `json:"most_active_day_centers,omitempty"`
	MostActiveDayParks   string          `json:"most_active_day_parks,omitempty"`
}

// DashboardSummary es la vista derivada completa que consumen las tarjetas y
// gráficas del dashboard
type DashboardSummary struct {
	TotalActivities  int                   `json:"total_activities"`
	TotalDeliveries  int                   `json:"total_deliveries"`
	UniqueAttendance int                   `json:"unique_attendance"`
	Locations        []LocationCount       `json:"locations"`
	Timeline         []DateCount           `json:"timeline"`
	Subtypes         []LabelCount          `json:"subtypes"`
	Types            map[string]int        `json:"types"`
	Modality         *ModalityDistribution `json:"modality"`
	Nutrition        *NutritionStats       `json:"nutrition"`
	Temporal         *TemporalAnalysis     `json:"temporal"`
	Filters          *FilterCriteria       `json:"filters"`
	GeneratedAt      time.Time             `json:"generated_at"`
}
