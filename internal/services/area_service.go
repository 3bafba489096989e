package services

import (
	"ridelink/internal/models"
	"ridelink/internal/utils"
)

// DefaultServiceArea is the boundary polygon rides are offered within,
// covering greater Chattanooga.
var DefaultServiceArea = utils.Polygon{
	{Lat: 35.2110, Lng: -85.4420},
	{Lat: 35.2290, Lng: -85.1730},
	{Lat: 35.1160, Lng: -85.0510},
	{Lat: 34.9870, Lng: -85.1040},
	{Lat: 34.9430, Lng: -85.2880},
	{Lat: 35.0120, Lng: -85.4650},
	{Lat: 35.1230, Lng: -85.5080},
}

// AreaService answers service-area membership queries against a fixed
// boundary polygon.
type AreaService struct {
	boundary utils.Polygon
}

func NewAreaService(boundary utils.Polygon) *AreaService {
	if len(boundary) == 0 {
		boundary = DefaultServiceArea
	}
	return &AreaService{boundary: boundary}
}

func (s *AreaService) Contains(coord models.Coordinate) bool {
	return utils.IsPointInPolygon(utils.Point{Lat: coord.Latitude, Lng: coord.Longitude}, s.boundary)
}

// Center returns the centroid of the boundary, used as the default map pin.
func (s *AreaService) Center() models.Coordinate {
	center := utils.CalculateCenter(s.boundary)
	return models.Coordinate{Latitude: center.Lat, Longitude: center.Lng}
}
