package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBoundary = Polygon{
	{Lat: 35.21, Lng: -85.44},
	{Lat: 35.23, Lng: -85.17},
	{Lat: 35.12, Lng: -85.05},
	{Lat: 34.99, Lng: -85.10},
	{Lat: 34.94, Lng: -85.29},
	{Lat: 35.01, Lng: -85.47},
	{Lat: 35.12, Lng: -85.51},
}

func TestIsPointInPolygon(t *testing.T) {
	center := CalculateCenter(testBoundary)
	assert.True(t, IsPointInPolygon(center, testBoundary), "centroid should be inside the boundary")

	assert.False(t, IsPointInPolygon(Point{Lat: 0, Lng: 0}, testBoundary), "null island is far outside")
	assert.False(t, IsPointInPolygon(Point{Lat: 40.71, Lng: -74.0}, testBoundary), "New York is outside")
}

func TestIsPointInPolygonDegenerate(t *testing.T) {
	assert.False(t, IsPointInPolygon(Point{Lat: 1, Lng: 1}, Polygon{}))
	assert.False(t, IsPointInPolygon(Point{Lat: 1, Lng: 1}, Polygon{{Lat: 0, Lng: 0}, {Lat: 2, Lng: 2}}))
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidCoordinates(35.0, -85.0))
	assert.True(t, IsValidCoordinates(-90, 180))
	assert.False(t, IsValidCoordinates(90.1, 0))
	assert.False(t, IsValidCoordinates(0, -180.5))
}

func TestCalculateCenter(t *testing.T) {
	center := CalculateCenter([]Point{{Lat: 0, Lng: 0}, {Lat: 2, Lng: 4}})
	assert.Equal(t, Point{Lat: 1, Lng: 2}, center)

	assert.Equal(t, Point{}, CalculateCenter(nil))
}
