package redis

import (
	"context"

	"swiftride/internal/domain"
)

// HighlightStoreInterface defines the interface for new-booking highlighting.
type HighlightStoreInterface interface {
	MarkNew(ctx context.Context, userID, rideID string) error
	IsNew(ctx context.Context, userID, rideID string) (bool, error)
	ListNew(ctx context.Context, userID string) ([]string, error)
}

// CacheStoreInterface defines the interface for ride-row caching.
type CacheStoreInterface interface {
	GetRide(ctx context.Context, rideID string) (*domain.Ride, error)
	SetRide(ctx context.Context, ride *domain.Ride) error
	InvalidateRide(ctx context.Context, rideID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ HighlightStoreInterface = (*HighlightStore)(nil)
	_ CacheStoreInterface     = (*CacheStore)(nil)
)
