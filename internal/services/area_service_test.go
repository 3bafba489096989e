package services

import (
	"testing"

	"ridelink/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAreaServiceContains(t *testing.T) {
	s := NewAreaService(nil)

	// Downtown Chattanooga is inside the default boundary.
	assert.True(t, s.Contains(models.Coordinate{Latitude: 35.0456, Longitude: -85.3097}))

	// Nashville and Atlanta are well outside it.
	assert.False(t, s.Contains(models.Coordinate{Latitude: 36.1627, Longitude: -86.7816}))
	assert.False(t, s.Contains(models.Coordinate{Latitude: 33.7490, Longitude: -84.3880}))
}

func TestAreaServiceCenterInsideBoundary(t *testing.T) {
	s := NewAreaService(nil)

	center := s.Center()
	assert.True(t, s.Contains(center), "boundary centroid should be inside the boundary")
}
