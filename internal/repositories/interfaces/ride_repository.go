package interfaces

import (
	"context"

	"ridelink/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	GetByRideNumber(ctx context.Context, rideNumber string) (*models.Ride, error)
	GetByCustomer(ctx context.Context, customerID primitive.ObjectID, limit int64) ([]*models.Ride, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus) error
	AssignDriver(ctx context.Context, id primitive.ObjectID, driverID primitive.ObjectID) error
}
