package services

import (
	"context"

	"ridelink/internal/models"
	"ridelink/internal/utils"
	"ridelink/pkg/logger"
	"ridelink/pkg/maps"
)

// RouteService produces route estimates for a pickup/dropoff pair. It never
// fails: when the routing provider is unreachable or returns no route, it
// falls back to a straight-line estimate so callers always get a usable value.
type RouteService struct {
	provider maps.RouteProvider
	logger   *logger.Logger
}

func NewRouteService(provider maps.RouteProvider, log *logger.Logger) *RouteService {
	return &RouteService{
		provider: provider,
		logger:   log,
	}
}

func (s *RouteService) Estimate(ctx context.Context, origin, destination models.Coordinate) *models.RouteEstimate {
	if s.provider != nil {
		route, err := s.provider.Directions(ctx,
			maps.LatLng{Latitude: origin.Latitude, Longitude: origin.Longitude},
			maps.LatLng{Latitude: destination.Latitude, Longitude: destination.Longitude},
		)
		if err == nil && route != nil {
			return &models.RouteEstimate{
				DistanceMiles:   utils.MetersToMiles(route.DistanceMeters),
				DurationMinutes: utils.SecondsToMinutes(route.DurationSeconds),
				Geometry:        route.Geometry,
			}
		}

		if err != nil {
			s.logger.WithError(err).Warn("Routing provider failed, using straight-line fallback")
		}
	}

	return s.fallbackEstimate(origin, destination)
}

func (s *RouteService) fallbackEstimate(origin, destination models.Coordinate) *models.RouteEstimate {
	distance := utils.EstimateRoadMiles(
		origin.Latitude, origin.Longitude,
		destination.Latitude, destination.Longitude,
	)

	return &models.RouteEstimate{
		DistanceMiles:   distance,
		DurationMinutes: utils.EstimateDriveMinutes(distance),
		Geometry:        nil,
	}
}
