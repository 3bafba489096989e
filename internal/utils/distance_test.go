package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, DegreesToRadians(180), 1e-12)
	assert.InDelta(t, math.Pi/2, DegreesToRadians(90), 1e-12)
	assert.Equal(t, 0.0, DegreesToRadians(0))
}

func TestHaversineMiles(t *testing.T) {
	// One degree of longitude along the equator is R*pi/180 miles.
	oneDegree := EarthRadiusMiles * math.Pi / 180
	assert.InDelta(t, oneDegree, HaversineMiles(0, 0, 0, 1), 0.001)

	// Symmetric and zero for identical points.
	assert.InDelta(t, HaversineMiles(35.05, -85.31, 33.75, -84.39), HaversineMiles(33.75, -84.39, 35.05, -85.31), 1e-9)
	assert.Equal(t, 0.0, HaversineMiles(35.05, -85.31, 35.05, -85.31))
}

func TestEstimateRoadMiles(t *testing.T) {
	straight := HaversineMiles(35.0, -85.0, 35.1, -85.1)
	assert.InDelta(t, straight*RoadCircuityFactor, EstimateRoadMiles(35.0, -85.0, 35.1, -85.1), 1e-9)
}

func TestEstimateDriveMinutes(t *testing.T) {
	assert.Equal(t, 5.0, EstimateDriveMinutes(0))
	assert.Equal(t, 35.0, EstimateDriveMinutes(10))
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 1.0, MetersToMiles(1609.34), 0.001)
	assert.Equal(t, 2.0, SecondsToMinutes(120))
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{12.346, 2, 12.35},
		{12.344, 2, 12.34},
		{7.25, 1, 7.3},
		{9.5, 0, 10},
		{3.0, 2, 3.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundTo(tt.value, tt.places))
	}
}
