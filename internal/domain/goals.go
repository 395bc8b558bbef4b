package domain

import "time"

// Niveles cualitativos de avance de metas
const (
	TierExcellent = "excellent" // >= 75%
	TierGood      = "good"      // 50% - 74%
	TierLow       = "low"       // 25% - 49%
	TierCritical  = "critical"  // < 25%
	TierNoTarget  = "no_target" // sin meta configurada, informativo
)

// TierForPercentage clasifica un porcentaje de avance en su nivel cualitativo
func TierForPercentage(percentage float64) string {
	switch {
	case percentage >= 75:
		return TierExcellent
	case percentage >= 50:
		return TierGood
	case percentage >= 25:
		return TierLow
	default:
		return TierCritical
	}
}

// GoalsSnapshot es la configuración de metas de un contratista junto con los
// conteos alcanzados. Progress solo se define donde la meta es estrictamente
// positiva; Averages es el promedio simple de los porcentajes definidos de
// cada categoría.
type GoalsSnapshot struct {
	Contractor  string                        `json:"contractor"`
	Goals       map[string]map[string]float64 `json:"goals"`
	Counts      map[string]map[string]float64 `json:"counts"`
	Progress    map[string]map[string]float64 `json:"progress"`
	Averages    map[string]float64            `json:"averages"`
	GeneratedAt time.Time                     `json:"generated_at"`
}

// StrategyProgress es el avance de una estrategia con meta positiva
type StrategyProgress struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Actual      float64 `json:"actual"`
	Target      float64 `json:"target"`
	Percentage  float64 `json:"percentage"`
	Tier        string  `json:"tier"`
}

// DeliveryCount es un conteo crudo de entregas, reportado junto a las
// estrategias educativas pero nunca puntuado contra metas
type DeliveryCount struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Total       float64 `json:"total"`
}

type CategoryProgress struct {
	Category   string             `json:"category"`
	Strategies []StrategyProgress `json:"strategies"`
	Average    float64            `json:"average"`
	Best       *StrategyProgress  `json:"best,omitempty"`
	Worst      *StrategyProgress  `json:"worst,omitempty"`
	// Unscored lista estrategias sin meta positiva: solo conteo crudo, nivel
	// informativo no_target, fuera de promedios y extremos
	Unscored   []StrategyProgress `json:"unscored,omitempty"`
	Deliveries []DeliveryCount    `json:"deliveries,omitempty"`
}

type ContractorProgress struct {
	Contractor  string             `json:"contractor"`
	Categories  []CategoryProgress `json:"categories"`
	GeneratedAt time.Time          `json:"generated_at"`
}
