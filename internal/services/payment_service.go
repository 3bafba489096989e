package services

import (
	"context"
	"errors"

	"ridelink/internal/config"
	"ridelink/internal/repositories/interfaces"
	"ridelink/internal/repositories/mongodb"
	"ridelink/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RidePaymentInfo is the payment instruction payload for a booked ride: a
// single configured recipient handle plus the ride's stored estimate.
type RidePaymentInfo struct {
	VenmoUsername string  `json:"venmo_username"`
	Amount        float64 `json:"amount"`
	RideID        string  `json:"ride_id"`
}

// PaymentService authorizes callers against ride records and produces payment
// instructions and deep links.
type PaymentService struct {
	rides   interfaces.RideRepository
	links   *payment.LinkGenerator
	payment *config.PaymentConfig
}

func NewPaymentService(rides interfaces.RideRepository, paymentConfig *config.PaymentConfig) *PaymentService {
	return &PaymentService{
		rides: rides,
		links: &payment.LinkGenerator{
			VenmoHandle:  paymentConfig.VenmoHandle,
			CashTag:      paymentConfig.CashTag,
			PayPalHandle: paymentConfig.PayPalHandle,
		},
		payment: paymentConfig,
	}
}

// GetRidePaymentInfo checks preconditions in order: authenticated caller,
// valid ride id, existing ride, caller is a party to the ride. The
// authentication check happens before any document read.
func (s *PaymentService) GetRidePaymentInfo(ctx context.Context, callerID *primitive.ObjectID, rideID string) (*RidePaymentInfo, error) {
	if callerID == nil {
		return nil, ErrUnauthenticated
	}

	if rideID == "" {
		return nil, ErrInvalidArgument
	}

	objectID, err := primitive.ObjectIDFromHex(rideID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	ride, err := s.rides.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongodb.ErrRideNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !ride.IsParty(*callerID) {
		return nil, ErrPermissionDenied
	}

	return &RidePaymentInfo{
		VenmoUsername: s.payment.VenmoHandle,
		Amount:        ride.EstimatedPrice,
		RideID:        ride.ID.Hex(),
	}, nil
}

// GeneratePaymentLink authorizes like GetRidePaymentInfo, then builds a deep
// link for the requested method against the ride's stored estimate.
func (s *PaymentService) GeneratePaymentLink(ctx context.Context, callerID *primitive.ObjectID, rideID, methodID string) (string, error) {
	info, err := s.GetRidePaymentInfo(ctx, callerID, rideID)
	if err != nil {
		return "", err
	}

	method := payment.ParseMethod(methodID)
	link, err := s.links.Generate(method, info.Amount, info.RideID)
	if err != nil {
		return "", ErrInvalidArgument
	}

	return link, nil
}
