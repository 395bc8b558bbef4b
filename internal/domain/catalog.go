package domain

import (
	"fmt"
	"strings"
)

// Contratistas del programa. Dimensión primaria de filtros y reportes.
var Contractors = []string{"CUC", "FUNDACARIBE"}

// Strategy es un subprograma con meta numérica propia dentro de una categoría
type Strategy struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// StrategyCatalog es la enumeración fija de estrategias por categoría. El
// calculador de avance de metas solo reporta sobre este conjunto, nunca
// inventa estrategias nuevas.
var StrategyCatalog = map[string][]Strategy{
	ActivityTypeNutrition: {
		{Key: "workshops", DisplayName: "Talleres educativos en nutrición"},
		{Key: "healthyHabits", DisplayName: "Jornadas de hábitos saludables"},
	},
	ActivityTypePhysical: {
		{Key: "walkingClub", DisplayName: "Club de caminata"},
		{Key: "rumbaTherapy", DisplayName: "Rumbaterapia"},
		{Key: "functionalGymnastics", DisplayName: "Gimnasia funcional"},
	},
	ActivityTypePsychosocial: {
		{Key: "mentalHealth", DisplayName: "Encuentros de salud mental"},
		{Key: "socialSupport", DisplayName: "Tejido social"},
		{Key: "familyBonds", DisplayName: "Fortalecimiento de vínculos familiares"},
	},
}

// DeliverySubtypes son las entregas de alimentos. Se reportan como conteos
// crudos y quedan excluidas de la línea de tiempo de actividades y del
// puntaje contra metas (son entregas por demanda, sin meta aplicable).
var DeliverySubtypes = map[string]string{
	"centerRation": "Raciones en Centro de Vida",
	"parkSnack":    "Meriendas en parque",
	"ration":       "Raciones",
}

// DeliverySubtypeOrder fija el orden de reporte de las entregas
var DeliverySubtypeOrder = []string{"centerRation", "parkSnack", "ration"}

func IsDeliverySubtype(subtype string) bool {
	_, ok := DeliverySubtypes[subtype]
	return ok
}

// StrategyDisplayName busca el nombre visible de una estrategia configurada
func StrategyDisplayName(category, key string) (string, bool) {
	for _, s := range StrategyCatalog[category] {
		if s.Key == key {
			return s.DisplayName, true
		}
	}
	return "", false
}

// SubtypeLabel deriva la etiqueta combinada tipo+subtipo+contratista usada por
// el conteo por subtipo. Devuelve false si falta alguna de las tres claves.
func SubtypeLabel(activityType, subtype, contractor string) (string, bool) {
	if activityType == "" || subtype == "" || contractor == "" {
		return "", false
	}

	if name, ok := StrategyDisplayName(activityType, subtype); ok {
		return fmt.Sprintf("%s (%s)", name, contractor), true
	}

	if name, ok := DeliverySubtypes[subtype]; ok {
		return fmt.Sprintf("%s (%s)", name, contractor), true
	}

	return "", false
}

// Modalidades canónicas de ubicación
const (
	ModalityCenter = "Centro de Vida"
	ModalityPark   = "Parque/Espacio Comunitario"
	ModalityHall   = "Salón Comunal"
)

// UnrecognizedModalityPrefix antecede el valor crudo cuando ningún sinónimo
// coincide. Se acumula un bucket por cada valor distinto no mapeado
// (comportamiento heredado del dashboard original, mantenido a propósito)
// y el caso se expone como diagnóstico para los operadores.
const UnrecognizedModalityPrefix = "No reconocido: "

var modalitySynonyms = []struct {
	bucket string
	terms  []string
}{
	{ModalityHall, []string{"salón comunal", "salon comunal", "salón", "salon"}},
	{ModalityCenter, []string{"centro de vida", "centro", "cdv", "center"}},
	{ModalityPark, []string{"parque", "park", "espacio comunitario", "espacio", "cancha"}},
}

// CanonicalModality normaliza el tipo de ubicación a uno de los tres buckets
// canónicos por coincidencia de subcadenas, sin distinguir mayúsculas. El
// segundo retorno indica si el valor fue reconocido.
func CanonicalModality(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value != "" {
		for _, group := range modalitySynonyms {
			for _, term := range group.terms {
				if strings.Contains(value, term) {
					return group.bucket, true
				}
			}
		}
	}

	return UnrecognizedModalityPrefix + raw, false
}
