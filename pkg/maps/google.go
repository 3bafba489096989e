package maps

import (
	"context"
	"encoding/json"
	"fmt"

	gmaps "googlemaps.github.io/maps"
)

// GoogleProvider calls the Google Maps directions API.
type GoogleProvider struct {
	client *gmaps.Client
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleProvider{client: client}, nil
}

func (g *GoogleProvider) Directions(ctx context.Context, origin, destination LatLng) (*Route, error) {
	req := &gmaps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude),
		Destination: fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:        gmaps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("directions response contained no route")
	}

	leg := routes[0].Legs[0]

	geometry, err := json.Marshal(map[string]string{
		"polyline": routes[0].OverviewPolyline.Points,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode route geometry: %w", err)
	}

	return &Route{
		DistanceMeters:  float64(leg.Distance.Meters),
		DurationSeconds: leg.Duration.Seconds(),
		Geometry:        geometry,
	}, nil
}
