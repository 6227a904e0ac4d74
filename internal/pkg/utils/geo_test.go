package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Zero(t, HaversineDistance(62.085348, 6.873744, 62.085348, 6.873744))
	})

	t.Run("hellesylt to geiranger", func(t *testing.T) {
		// Ferry route endpoints, roughly 17 km apart as the crow flies.
		d := HaversineDistance(62.085348, 6.873744, 62.101332, 7.205710)
		assert.InDelta(t, 17300, d, 500)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineDistance(62.0853, 6.8737, 62.1013, 7.2057)
		b := HaversineDistance(62.1013, 7.2057, 62.0853, 6.8737)
		assert.InDelta(t, a, b, 0.0001)
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{"short walk", 850, "850 m"},
		{"rounds to whole meters", 120.4, "120 m"},
		{"just under a kilometer", 999.4, "999 m"},
		{"kilometers with one decimal", 1250, "1.2 km"},
		{"long ferry leg", 17300, "17.3 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.meters))
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(62.0853, 6.8737))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.1))
}
