package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"swiftride/internal/domain"
)

// RideCacheTTL keeps cached ride rows short-lived; status can change at any
// moment through a cancel or a status update.
const RideCacheTTL = 10 * time.Second

const rideCachePrefix = "cache:ride:"

// CachedRide is the cache representation of a ride row.
type CachedRide struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	PickupLocation       string   `json:"pickup_location"`
	DropoffLocation      string   `json:"dropoff_location"`
	Date                 string   `json:"date"`
	Time                 string   `json:"time"`
	Status               string   `json:"status"`
	VehicleType          string   `json:"vehicle_type"`
	Price                float64  `json:"price"`
	PaymentStatus        string   `json:"payment_status"`
	PaymentID            string   `json:"payment_id,omitempty"`
	CurrentLocationLat   *float64 `json:"current_location_lat,omitempty"`
	CurrentLocationLng   *float64 `json:"current_location_lng,omitempty"`
	EstimatedArrivalTime *string  `json:"estimated_arrival_time,omitempty"`
	CreatedAt            int64    `json:"created_at"` // unix seconds
}

func toCachedRide(ride *domain.Ride) *CachedRide {
	return &CachedRide{
		ID:                   ride.ID,
		UserID:               ride.UserID,
		PickupLocation:       ride.PickupLocation,
		DropoffLocation:      ride.DropoffLocation,
		Date:                 ride.Date,
		Time:                 ride.Time,
		Status:               string(ride.Status),
		VehicleType:          string(ride.VehicleType),
		Price:                ride.Price,
		PaymentStatus:        string(ride.PaymentStatus),
		PaymentID:            ride.PaymentID,
		CurrentLocationLat:   ride.CurrentLocationLat,
		CurrentLocationLng:   ride.CurrentLocationLng,
		EstimatedArrivalTime: ride.EstimatedArrivalTime,
		CreatedAt:            ride.CreatedAt.Unix(),
	}
}

func (c *CachedRide) toDomain() *domain.Ride {
	return &domain.Ride{
		ID:                   c.ID,
		UserID:               c.UserID,
		PickupLocation:       c.PickupLocation,
		DropoffLocation:      c.DropoffLocation,
		Date:                 c.Date,
		Time:                 c.Time,
		Status:               domain.RideStatus(c.Status),
		VehicleType:          domain.VehicleType(c.VehicleType),
		Price:                c.Price,
		PaymentStatus:        domain.PaymentStatus(c.PaymentStatus),
		PaymentID:            c.PaymentID,
		CurrentLocationLat:   c.CurrentLocationLat,
		CurrentLocationLng:   c.CurrentLocationLng,
		EstimatedArrivalTime: c.EstimatedArrivalTime,
		CreatedAt:            time.Unix(c.CreatedAt, 0).UTC(),
	}
}

// CacheStore handles ride-row caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// GetRide retrieves a ride from cache. A miss returns (nil, nil).
func (s *CacheStore) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	data, err := s.client.Get(ctx, rideCachePrefix+rideID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cached CachedRide
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return cached.toDomain(), nil
}

// SetRide stores a ride in cache.
func (s *CacheStore) SetRide(ctx context.Context, ride *domain.Ride) error {
	data, err := json.Marshal(toCachedRide(ride))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rideCachePrefix+ride.ID, data, RideCacheTTL).Err()
}

// InvalidateRide removes a ride from cache.
func (s *CacheStore) InvalidateRide(ctx context.Context, rideID string) error {
	return s.client.Del(ctx, rideCachePrefix+rideID).Err()
}
