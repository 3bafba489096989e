package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directionsFixture = `{
	"features": [
		{
			"geometry": {"type": "LineString", "coordinates": [[-85.3097, 35.0456], [-85.2038, 35.0867]]},
			"properties": {
				"segments": [
					{"distance": 16093.4, "duration": 1200.5}
				]
			}
		}
	]
}`

func TestOpenRouteDirections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/directions/driving-car", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "-85.309700,35.045600", r.URL.Query().Get("start"))
		assert.Equal(t, "-85.203800,35.086700", r.URL.Query().Get("end"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directionsFixture))
	}))
	defer server.Close()

	provider := NewOpenRouteProvider("test-key", time.Second).WithBaseURL(server.URL)

	route, err := provider.Directions(context.Background(),
		LatLng{Latitude: 35.0456, Longitude: -85.3097},
		LatLng{Latitude: 35.0867, Longitude: -85.2038})
	require.NoError(t, err)

	assert.Equal(t, 16093.4, route.DistanceMeters)
	assert.Equal(t, 1200.5, route.DurationSeconds)
	assert.Contains(t, string(route.Geometry), "LineString")
}

func TestOpenRouteDirectionsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewOpenRouteProvider("test-key", time.Second).WithBaseURL(server.URL)

	_, err := provider.Directions(context.Background(), LatLng{}, LatLng{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestOpenRouteDirectionsEmptyRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	provider := NewOpenRouteProvider("test-key", time.Second).WithBaseURL(server.URL)

	_, err := provider.Directions(context.Background(), LatLng{}, LatLng{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route")
}
