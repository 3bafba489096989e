package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultOpenRouteBaseURL = "https://api.openrouteservice.org"

// OpenRouteProvider calls the OpenRouteService directions API.
type OpenRouteProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenRouteProvider(apiKey string, timeout time.Duration) *OpenRouteProvider {
	return &OpenRouteProvider{
		apiKey:  apiKey,
		baseURL: defaultOpenRouteBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithBaseURL overrides the API host, used for testing against a local server.
func (o *OpenRouteProvider) WithBaseURL(baseURL string) *OpenRouteProvider {
	o.baseURL = baseURL
	return o
}

type openRouteResponse struct {
	Features []struct {
		Geometry   json.RawMessage `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (o *OpenRouteProvider) Directions(ctx context.Context, origin, destination LatLng) (*Route, error) {
	query := url.Values{}
	query.Set("api_key", o.apiKey)
	query.Set("start", fmt.Sprintf("%f,%f", origin.Longitude, origin.Latitude))
	query.Set("end", fmt.Sprintf("%f,%f", destination.Longitude, destination.Latitude))

	endpoint := fmt.Sprintf("%s/v2/directions/driving-car?%s", o.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions request returned status %d", resp.StatusCode)
	}

	var body openRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if len(body.Features) == 0 || len(body.Features[0].Properties.Segments) == 0 {
		return nil, fmt.Errorf("directions response contained no route")
	}

	feature := body.Features[0]
	segment := feature.Properties.Segments[0]

	return &Route{
		DistanceMeters:  segment.Distance,
		DurationSeconds: segment.Duration,
		Geometry:        feature.Geometry,
	}, nil
}
