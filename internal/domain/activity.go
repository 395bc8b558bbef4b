// Package domain contiene las estructuras de datos del dominio de la aplicación
package domain

import "time"

// Tipos de actividad del programa
const (
	ActivityTypeNutrition    = "nutrition"
	ActivityTypePhysical     = "physical"
	ActivityTypePsychosocial = "psychosocial"
)

// FilterAll es el comodín usado por los filtros del dashboard
const FilterAll = "all"

type Location struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EducationalActivity marca si el registro cuenta como actividad educativa real
// o si es únicamente una entrega de alimentos
type EducationalActivity struct {
	Included bool   `json:"included"`
	Type     string `json:"type"`
}

type Activity struct {
	ID            string               `json:"id"`
	Date          *time.Time           `json:"date"`
	Contractor    string               `json:"contractor"`
	Type          string               `json:"type,omitempty"`
	Subtype       string               `json:"subtype,omitempty"`
	Location      *Location            `json:"location"`
	Beneficiaries int                  `json:"beneficiaries"`
	Educational   *EducationalActivity `json:"educationalActivity,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// IsEducational indica si el registro cuenta para los conteos de actividades
// educativas. Los registros de solo entrega quedan fuera de esos conteos pero
// siguen aportando a las estadísticas de entregas de alimentos.
func (a *Activity) IsEducational() bool {
	return a != nil && a.Educational != nil && a.Educational.Included
}

// IsWellFormed valida los campos mínimos requeridos. Los registros malformados
// se descartan antes de evaluar cualquier predicado o agregación.
func (a *Activity) IsWellFormed() bool {
	return a != nil && a.Contractor != "" && a.Location != nil && a.Location.Name != ""
}

// FilterCriteria es el conjunto de predicados seleccionados por el usuario.
// Cada campo de texto acepta el comodín "all"; las fechas son inclusivas y se
// normalizan a inicio/fin del día local.
type FilterCriteria struct {
	Contractor   string     `json:"contractor"`
	Type         string     `json:"type"`
	LocationType string     `json:"location_type"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func (f *FilterCriteria) HasDateRange() bool {
	return f != nil && (f.StartDate != nil || f.EndDate != nil)
}
