package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

type Ride struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	RideNumber        string              `json:"ride_number" bson:"ride_number" validate:"required"`
	CustomerID        primitive.ObjectID  `json:"customer_id" bson:"customer_id" validate:"required"`
	DriverID          *primitive.ObjectID `json:"driver_id" bson:"driver_id"`
	Status            RideStatus          `json:"status" bson:"status" default:"requested"`
	PickupAddress     Address             `json:"pickup_address" bson:"pickup_address" validate:"required"`
	DropoffAddress    Address             `json:"dropoff_address" bson:"dropoff_address" validate:"required"`
	EstimatedPrice    float64             `json:"estimated_price" bson:"estimated_price"`
	EstimatedDistance float64             `json:"estimated_distance" bson:"estimated_distance"` // miles
	EstimatedDuration float64             `json:"estimated_duration" bson:"estimated_duration"` // minutes
	IsScheduled       bool                `json:"is_scheduled" bson:"is_scheduled" default:"false"`
	ScheduledTime     *time.Time          `json:"scheduled_time" bson:"scheduled_time"`
	Currency          string              `json:"currency" bson:"currency" default:"USD"`
	RequestedAt       time.Time           `json:"requested_at" bson:"requested_at"`
	CompletedAt       *time.Time          `json:"completed_at" bson:"completed_at"`
	CancelledAt       *time.Time          `json:"cancelled_at" bson:"cancelled_at"`
	CreatedAt         time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsParty reports whether userID is the ride's customer or assigned driver.
func (r *Ride) IsParty(userID primitive.ObjectID) bool {
	if r.CustomerID == userID {
		return true
	}
	return r.DriverID != nil && *r.DriverID == userID
}
