package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ridelink/internal/models"
	"ridelink/pkg/logger"
	"ridelink/pkg/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouteProvider struct {
	route *maps.Route
	err   error
	calls int
}

func (s *stubRouteProvider) Directions(ctx context.Context, origin, destination maps.LatLng) (*maps.Route, error) {
	s.calls++
	return s.route, s.err
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)
	return log
}

var (
	testOrigin      = models.Coordinate{Latitude: 35.0456, Longitude: -85.3097}
	testDestination = models.Coordinate{Latitude: 35.0867, Longitude: -85.2038}
)

func TestRouteServiceUsesProvider(t *testing.T) {
	provider := &stubRouteProvider{
		route: &maps.Route{
			DistanceMeters:  16093.4, // 10 miles
			DurationSeconds: 1200,    // 20 minutes
			Geometry:        json.RawMessage(`{"type":"LineString"}`),
		},
	}

	s := NewRouteService(provider, newTestLogger(t))
	estimate := s.Estimate(context.Background(), testOrigin, testDestination)

	assert.InDelta(t, 10.0, estimate.DistanceMiles, 0.01)
	assert.InDelta(t, 20.0, estimate.DurationMinutes, 0.001)
	assert.NotNil(t, estimate.Geometry)
	assert.Equal(t, 1, provider.calls)
}

func TestRouteServiceFallsBackOnProviderError(t *testing.T) {
	provider := &stubRouteProvider{err: errors.New("connection refused")}

	s := NewRouteService(provider, newTestLogger(t))
	estimate := s.Estimate(context.Background(), testOrigin, testDestination)

	assert.Greater(t, estimate.DistanceMiles, 0.0)
	assert.Greater(t, estimate.DurationMinutes, 0.0)
	assert.Nil(t, estimate.Geometry, "fallback estimates carry no geometry")

	// duration = distance*3 + 5 on the fallback path
	assert.InDelta(t, estimate.DistanceMiles*3+5, estimate.DurationMinutes, 1e-9)
}

func TestRouteServiceFallsBackWithoutProvider(t *testing.T) {
	s := NewRouteService(nil, newTestLogger(t))
	estimate := s.Estimate(context.Background(), testOrigin, testDestination)

	assert.GreaterOrEqual(t, estimate.DistanceMiles, 0.0)
	assert.GreaterOrEqual(t, estimate.DurationMinutes, 0.0)
}

func TestRouteServiceFallbackSamePoint(t *testing.T) {
	s := NewRouteService(&stubRouteProvider{err: errors.New("boom")}, newTestLogger(t))
	estimate := s.Estimate(context.Background(), testOrigin, testOrigin)

	assert.Equal(t, 0.0, estimate.DistanceMiles)
	assert.Equal(t, 5.0, estimate.DurationMinutes)
}
