package services

import (
	"context"
	"errors"
	"testing"

	"ridelink/internal/config"
	"ridelink/internal/models"
	"ridelink/pkg/maps"

	"github.com/stretchr/testify/assert"
)

func testPricingConfig() *config.PricingConfig {
	return &config.PricingConfig{
		BaseFare:        2.50,
		PerMile:         1.75,
		PerMinute:       0.35,
		DiscountPercent: 20,
		SurgeMultiplier: 1.0,
	}
}

func TestPriceFromRouteFormula(t *testing.T) {
	s := NewPricingService(nil, testPricingConfig())

	price := s.PriceFromRoute(&models.RouteEstimate{
		DistanceMiles:   4.0,
		DurationMinutes: 10.0,
	})

	// base = 2.50 + 1.75*4 + 0.35*10 = 13.00
	assert.Equal(t, 13.00, price.BasePrice)
	assert.Equal(t, 10.40, price.FinalPrice)
	assert.Equal(t, 2.60, price.Savings)
	assert.Equal(t, 4.0, price.DistanceMiles)
	assert.Equal(t, 10.0, price.EstimatedMinutes)
}

func TestPriceFromRouteRounding(t *testing.T) {
	s := NewPricingService(nil, testPricingConfig())

	price := s.PriceFromRoute(&models.RouteEstimate{
		DistanceMiles:   3.27,
		DurationMinutes: 12.6,
	})

	assert.Equal(t, 3.3, price.DistanceMiles, "distance is rounded to one decimal")
	assert.Equal(t, 13.0, price.EstimatedMinutes, "minutes are rounded to a whole number")

	// Final price is rounded to cents.
	base := 2.50 + 1.75*3.27 + 0.35*12.6
	assert.InDelta(t, base*0.8, price.FinalPrice, 0.005)
}

func TestPriceFromRouteSurge(t *testing.T) {
	cfg := testPricingConfig()
	cfg.SurgeMultiplier = 1.5
	cfg.DiscountPercent = 0
	s := NewPricingService(nil, cfg)

	price := s.PriceFromRoute(&models.RouteEstimate{
		DistanceMiles:   4.0,
		DurationMinutes: 10.0,
	})

	assert.Equal(t, 19.50, price.FinalPrice)
	assert.Equal(t, 0.0, price.Savings)
}

func TestEstimateSurvivesRoutingOutage(t *testing.T) {
	routes := NewRouteService(&stubRouteProvider{err: errors.New("unreachable")}, newTestLogger(t))
	s := NewPricingService(routes, testPricingConfig())

	price := s.Estimate(context.Background(), testOrigin, testDestination)

	assert.GreaterOrEqual(t, price.DistanceMiles, 0.0)
	assert.GreaterOrEqual(t, price.EstimatedMinutes, 0.0)
	assert.Greater(t, price.FinalPrice, 0.0)
}

func TestEstimateWithProvider(t *testing.T) {
	routes := NewRouteService(&stubRouteProvider{
		route: &maps.Route{DistanceMeters: 6437.36, DurationSeconds: 600}, // 4 miles, 10 min
	}, newTestLogger(t))
	s := NewPricingService(routes, testPricingConfig())

	price := s.Estimate(context.Background(), testOrigin, testDestination)

	assert.Equal(t, 4.0, price.DistanceMiles)
	assert.Equal(t, 10.40, price.FinalPrice)
}
