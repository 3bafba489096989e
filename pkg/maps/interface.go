package maps

import (
	"context"
	"encoding/json"
)

// RouteProvider issues a driving-directions request to an external service.
type RouteProvider interface {
	Directions(ctx context.Context, origin, destination LatLng) (*Route, error)
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Route is a single driving route in provider-native units.
type Route struct {
	DistanceMeters  float64         `json:"distance_meters"`
	DurationSeconds float64         `json:"duration_seconds"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
}
