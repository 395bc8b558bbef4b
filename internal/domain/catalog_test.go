package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalModality(t *testing.T) {
	tests := []struct {
		raw        string
		want       string
		recognized bool
	}{
		{"Centro de Vida", ModalityCenter, true},
		{"CDV La Paz", ModalityCenter, true},
		{"parque central", ModalityPark, true},
		{"Espacio Comunitario El Bosque", ModalityPark, true},
		{"cancha sintética", ModalityPark, true},
		{"Salón Comunal", ModalityHall, true},
		{"salon comunal barrio abajo", ModalityHall, true},
		{"bodega municipal", UnrecognizedModalityPrefix + "bodega municipal", false},
		{"", UnrecognizedModalityPrefix, false},
	}

	for _, tt := range tests {
		got, ok := CanonicalModality(tt.raw)
		assert.Equal(t, tt.want, got, "valor crudo %q", tt.raw)
		assert.Equal(t, tt.recognized, ok, "valor crudo %q", tt.raw)
	}
}

func TestCanonicalModality_SalonGanaSobreComunitario(t *testing.T) {
	// "salón comunal" contiene también "comunal"; el orden de los sinónimos
	// garantiza que el salón se evalúe antes que el parque
	got, ok := CanonicalModality("Salón comunal y espacio comunitario")
	assert.True(t, ok)
	assert.Equal(t, ModalityHall, got)
}

func TestSubtypeLabel(t *testing.T) {
	label, ok := SubtypeLabel(ActivityTypeNutrition, "workshops", "CUC")
	assert.True(t, ok)
	assert.Equal(t, "Talleres educativos en nutrición (CUC)", label)

	label, ok = SubtypeLabel(ActivityTypeNutrition, "parkSnack", "FUNDACARIBE")
	assert.True(t, ok)
	assert.Equal(t, "Meriendas en parque (FUNDACARIBE)", label)

	_, ok = SubtypeLabel(ActivityTypePhysical, "yoga", "CUC")
	assert.False(t, ok)

	_, ok = SubtypeLabel("", "workshops", "CUC")
	assert.False(t, ok)
}

func TestStrategyDisplayName(t *testing.T) {
	name, ok := StrategyDisplayName(ActivityTypePhysical, "rumbaTherapy")
	assert.True(t, ok)
	assert.Equal(t, "Rumbaterapia", name)

	_, ok = StrategyDisplayName(ActivityTypeNutrition, "rumbaTherapy")
	assert.False(t, ok)
}

func TestIsDeliverySubtype(t *testing.T) {
	assert.True(t, IsDeliverySubtype("centerRation"))
	assert.True(t, IsDeliverySubtype("ration"))
	assert.False(t, IsDeliverySubtype("workshops"))
}
