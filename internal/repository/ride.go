package repository

import (
	"context"

	"swiftride/internal/domain"
)

// RideRepository defines the persistence operations for rides.
type RideRepository interface {
	// Create persists a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// ListByUser retrieves a user's rides ordered by creation time, most
	// recent first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Ride, error)

	// UpdateStatus sets the status of an existing ride.
	UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error
}
