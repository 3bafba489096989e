package services

import (
	"context"

	"ridelink/internal/config"
	"ridelink/internal/models"
	"ridelink/internal/utils"
)

// PricingService composes the route estimator with the fare formula.
// Deterministic given a route estimate; never fails, because the route
// estimator absorbs upstream failures with its fallback.
type PricingService struct {
	routes  *RouteService
	pricing *config.PricingConfig
}

func NewPricingService(routes *RouteService, pricing *config.PricingConfig) *PricingService {
	return &PricingService{
		routes:  routes,
		pricing: pricing,
	}
}

func (s *PricingService) Estimate(ctx context.Context, origin, destination models.Coordinate) *models.PriceEstimate {
	route := s.routes.Estimate(ctx, origin, destination)
	return s.PriceFromRoute(route)
}

// PriceFromRoute applies the fare formula to an already-computed route.
func (s *PricingService) PriceFromRoute(route *models.RouteEstimate) *models.PriceEstimate {
	basePrice := s.pricing.BaseFare +
		s.pricing.PerMile*route.DistanceMiles +
		s.pricing.PerMinute*route.DurationMinutes

	surged := basePrice * s.pricing.SurgeMultiplier
	finalPrice := utils.RoundTo(surged*(1-s.pricing.DiscountPercent/100), 2)

	return &models.PriceEstimate{
		DistanceMiles:    utils.RoundTo(route.DistanceMiles, 1),
		EstimatedMinutes: utils.RoundTo(route.DurationMinutes, 0),
		BasePrice:        utils.RoundTo(basePrice, 2),
		FinalPrice:       finalPrice,
		Savings:          utils.RoundTo(surged-finalPrice, 2),
	}
}
