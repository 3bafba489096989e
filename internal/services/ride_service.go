package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ridelink/internal/models"
	"ridelink/internal/repositories/interfaces"
	"ridelink/internal/utils"
	"ridelink/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookRideRequest is the validated input for creating a ride.
type BookRideRequest struct {
	Pickup        models.Address
	Dropoff       models.Address
	Customer      models.CustomerDetails
	IsScheduled   bool
	ScheduledTime *time.Time
	Currency      string
}

// RideService books rides: it validates the service area, prices the trip
// server-side, persists the ride document and fires confirmation
// notifications without letting them block the booking.
type RideService struct {
	rides         interfaces.RideRepository
	pricing       *PricingService
	area          *AreaService
	notifications *NotificationService
	logger        *logger.Logger
}

func NewRideService(rides interfaces.RideRepository, pricing *PricingService, area *AreaService, notifications *NotificationService, log *logger.Logger) *RideService {
	return &RideService{
		rides:         rides,
		pricing:       pricing,
		area:          area,
		notifications: notifications,
		logger:        log,
	}
}

func (s *RideService) BookRide(ctx context.Context, customerID primitive.ObjectID, req *BookRideRequest) (*models.Ride, error) {
	if err := s.validateBooking(req); err != nil {
		return nil, err
	}

	estimate := s.pricing.Estimate(ctx, req.Pickup.Coordinate, req.Dropoff.Coordinate)

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	ride := &models.Ride{
		RideNumber:        newRideNumber(),
		CustomerID:        customerID,
		Status:            models.RideStatusRequested,
		PickupAddress:     req.Pickup,
		DropoffAddress:    req.Dropoff,
		EstimatedPrice:    estimate.FinalPrice,
		EstimatedDistance: estimate.DistanceMiles,
		EstimatedDuration: estimate.EstimatedMinutes,
		IsScheduled:       req.IsScheduled,
		ScheduledTime:     req.ScheduledTime,
		Currency:          currency,
	}

	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.logger.LogRideEvent(ride.ID, "ride_booked", map[string]interface{}{
		"ride_number":     ride.RideNumber,
		"estimated_price": ride.EstimatedPrice,
	})

	// Confirmation failures degrade to logged follow-ups, never booking errors.
	smsResult, emailResult := s.notifications.SendRideConfirmation(ctx, ride, &req.Customer)
	if !smsResult.Success && !smsResult.Skipped {
		s.logger.WithRideID(ride.ID).Warn("Confirmation SMS was not delivered")
	}
	if !emailResult.Success && !emailResult.Skipped {
		s.logger.WithRideID(ride.ID).Warn("Confirmation email was not delivered")
	}

	return ride, nil
}

// GetRide returns a ride after verifying the caller is a party to it.
func (s *RideService) GetRide(ctx context.Context, callerID primitive.ObjectID, rideID string) (*models.Ride, error) {
	ride, err := s.lookupRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsParty(callerID) {
		return nil, ErrPermissionDenied
	}

	return ride, nil
}

// GetRideByNumber resolves a ride by its RL- reference number, with the same
// party check as GetRide.
func (s *RideService) GetRideByNumber(ctx context.Context, callerID primitive.ObjectID, rideNumber string) (*models.Ride, error) {
	if rideNumber == "" {
		return nil, ErrInvalidArgument
	}

	ride, err := s.rides.GetByRideNumber(ctx, rideNumber)
	if err != nil {
		return nil, err
	}

	if !ride.IsParty(callerID) {
		return nil, ErrPermissionDenied
	}

	return ride, nil
}

const defaultRideHistoryLimit = 20

// ListRides returns the caller's most recent rides, newest first.
func (s *RideService) ListRides(ctx context.Context, callerID primitive.ObjectID, limit int64) ([]*models.Ride, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultRideHistoryLimit
	}

	return s.rides.GetByCustomer(ctx, callerID, limit)
}

// AcceptRide assigns the calling driver to a ride that is still awaiting one.
func (s *RideService) AcceptRide(ctx context.Context, driverID primitive.ObjectID, rideID string) (*models.Ride, error) {
	ride, err := s.lookupRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.CustomerID == driverID {
		return nil, fmt.Errorf("%w: a customer cannot accept their own ride", ErrInvalidArgument)
	}

	if ride.Status != models.RideStatusRequested {
		return nil, fmt.Errorf("%w: ride is not awaiting a driver", ErrInvalidArgument)
	}

	if err := s.rides.AssignDriver(ctx, ride.ID, driverID); err != nil {
		return nil, err
	}

	ride.DriverID = &driverID
	ride.Status = models.RideStatusAccepted

	s.logger.LogRideEvent(ride.ID, "ride_accepted", map[string]interface{}{
		"driver_id": driverID.Hex(),
	})

	return ride, nil
}

// CancelRide cancels a ride that has not yet finished. Either party may cancel.
func (s *RideService) CancelRide(ctx context.Context, callerID primitive.ObjectID, rideID string) (*models.Ride, error) {
	ride, err := s.lookupRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !ride.IsParty(callerID) {
		return nil, ErrPermissionDenied
	}

	if ride.Status != models.RideStatusRequested && ride.Status != models.RideStatusAccepted {
		return nil, fmt.Errorf("%w: ride can no longer be cancelled", ErrInvalidArgument)
	}

	if err := s.rides.UpdateStatus(ctx, ride.ID, models.RideStatusCancelled); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusCancelled
	s.logger.LogRideEvent(ride.ID, "ride_cancelled", nil)

	return ride, nil
}

// CompleteRide marks an accepted ride as completed. Only the assigned driver
// may complete it.
func (s *RideService) CompleteRide(ctx context.Context, callerID primitive.ObjectID, rideID string) (*models.Ride, error) {
	ride, err := s.lookupRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.DriverID == nil || *ride.DriverID != callerID {
		return nil, ErrPermissionDenied
	}

	if ride.Status != models.RideStatusAccepted {
		return nil, fmt.Errorf("%w: only an accepted ride can be completed", ErrInvalidArgument)
	}

	if err := s.rides.UpdateStatus(ctx, ride.ID, models.RideStatusCompleted); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusCompleted
	s.logger.LogRideEvent(ride.ID, "ride_completed", nil)

	return ride, nil
}

func (s *RideService) lookupRide(ctx context.Context, rideID string) (*models.Ride, error) {
	objectID, err := primitive.ObjectIDFromHex(rideID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	return s.rides.GetByID(ctx, objectID)
}

func (s *RideService) validateBooking(req *BookRideRequest) error {
	if req.Pickup.Text == "" || req.Dropoff.Text == "" {
		return fmt.Errorf("%w: pickup and dropoff addresses are required", ErrInvalidArgument)
	}

	for _, coord := range []models.Coordinate{req.Pickup.Coordinate, req.Dropoff.Coordinate} {
		if !utils.IsValidCoordinates(coord.Latitude, coord.Longitude) {
			return fmt.Errorf("%w: coordinates out of range", ErrInvalidArgument)
		}
	}

	if !s.area.Contains(req.Pickup.Coordinate) {
		return fmt.Errorf("%w: pickup is outside the service area", ErrInvalidArgument)
	}

	if req.IsScheduled && req.ScheduledTime == nil {
		return fmt.Errorf("%w: scheduled rides require a scheduled time", ErrInvalidArgument)
	}

	return nil
}

func newRideNumber() string {
	id := uuid.New().String()
	return "RL-" + strings.ToUpper(id[:8])
}
