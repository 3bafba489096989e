package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ridelink/internal/models"
	"ridelink/internal/repositories/interfaces"
	"ridelink/pkg/cache"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRideNotFound is returned when no ride document matches the query.
var ErrRideNotFound = errors.New("ride not found")

const rideCacheTTL = 30 * time.Minute

type rideRepository struct {
	collection *mongo.Collection
	cache      *cache.RedisCache
}

func NewRideRepository(db *mongo.Database, redisCache *cache.RedisCache) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection("rides"),
		cache:      redisCache,
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	now := time.Now()
	ride.ID = primitive.NewObjectID()
	ride.RequestedAt = now
	ride.CreatedAt = now
	ride.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, ride); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	// Cache active rides for quick payment-info lookups
	if ride.Status == models.RideStatusRequested || ride.Status == models.RideStatusAccepted {
		r.cacheRide(ctx, ride)
	}

	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	if ride := r.getRideFromCache(ctx, id.Hex()); ride != nil {
		return ride, nil
	}

	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	if ride.Status == models.RideStatusRequested || ride.Status == models.RideStatusAccepted {
		r.cacheRide(ctx, &ride)
	}

	return &ride, nil
}

func (r *rideRepository) GetByRideNumber(ctx context.Context, rideNumber string) (*models.Ride, error) {
	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"ride_number": rideNumber}).Decode(&ride)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride by number: %w", err)
	}

	return &ride, nil
}

func (r *rideRepository) GetByCustomer(ctx context.Context, customerID primitive.ObjectID, limit int64) ([]*models.Ride, error) {
	opts := options.Find().
		SetSort(bson.M{"requested_at": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.Ride
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, fmt.Errorf("failed to decode rides: %w", err)
	}

	return rides, nil
}

func (r *rideRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus) error {
	updates := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}

	switch status {
	case models.RideStatusCompleted:
		updates["completed_at"] = time.Now()
	case models.RideStatusCancelled:
		updates["cancelled_at"] = time.Now()
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update ride status: %w", err)
	}

	r.invalidateRideCache(ctx, id.Hex())
	return nil
}

func (r *rideRepository) AssignDriver(ctx context.Context, id primitive.ObjectID, driverID primitive.ObjectID) error {
	updates := bson.M{
		"driver_id":  driverID,
		"status":     models.RideStatusAccepted,
		"updated_at": time.Now(),
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	r.invalidateRideCache(ctx, id.Hex())
	return nil
}

func (r *rideRepository) cacheRide(ctx context.Context, ride *models.Ride) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Set(ctx, rideCacheKey(ride.ID.Hex()), ride, rideCacheTTL)
}

func (r *rideRepository) getRideFromCache(ctx context.Context, id string) *models.Ride {
	if r.cache == nil {
		return nil
	}

	var ride models.Ride
	if err := r.cache.Get(ctx, rideCacheKey(id), &ride); err != nil {
		return nil
	}
	return &ride
}

func (r *rideRepository) invalidateRideCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, rideCacheKey(id))
}

func rideCacheKey(id string) string {
	return "ride:" + id
}
