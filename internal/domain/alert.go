package domain

import "time"

// Niveles de alerta
const (
	AlertLevelCritical = "critical"
	AlertLevelWarning  = "warning"
	AlertLevelInfo     = "info"
)

// Tipos de alerta generados por la evaluación periódica
const (
	AlertTypeGoalCritical         = "goal_critical"
	AlertTypeInactivity           = "inactivity"
	AlertTypeUnrecognizedLocation = "unrecognized_location"
)

// Alert es una alerta operativa generada al reevaluar las reglas sobre los
// datos vigentes. La reevaluación es idempotente: la misma entrada produce el
// mismo conjunto de alertas.
type Alert struct {
	ID         string    `json:"id"`
	Contractor string    `json:"contractor"`
	Type       string    `json:"type"`
	Level      string    `json:"level"`
	Category   string    `json:"category,omitempty"`
	Message    string    `json:"message"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AlertsResponse struct {
	Alerts     []Alert   `json:"alerts"`
	LastUpdate time.Time `json:"last_update"`
}
