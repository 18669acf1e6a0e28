package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"swiftride/internal/domain"
	"swiftride/internal/feed"
	"swiftride/internal/pricing"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// RideService handles the ride lifecycle: booking, listing, status updates.
type RideService struct {
	rideRepo repository.RideRepository
	feed     *feed.Feed
	cache    redis.CacheStoreInterface
	newRides redis.HighlightStoreInterface
}

// NewRideService creates a new RideService. The cache and highlight stores
// are optional; a nil store disables that concern.
func NewRideService(
	rideRepo repository.RideRepository,
	rideFeed *feed.Feed,
	cache redis.CacheStoreInterface,
	newRides redis.HighlightStoreInterface,
) *RideService {
	return &RideService{
		rideRepo: rideRepo,
		feed:     rideFeed,
		cache:    cache,
		newRides: newRides,
	}
}

// newRideID generates a short opaque ride identifier.
func newRideID() string {
	return uuid.New().String()[:8]
}

// BookRideRequest contains the parameters for a direct (free) booking.
type BookRideRequest struct {
	UserID          string
	PickupLocation  string
	DropoffLocation string
	Date            string
	Time            string
	VehicleType     string  // optional, defaults to standard
	Price           float64 // optional, estimated from the rate table when zero
}

// BookRide creates a ride directly, without a payment step. The ride starts
// scheduled and unpaid, with no payment reference.
func (s *RideService) BookRide(ctx context.Context, req BookRideRequest) (*domain.Ride, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.PickupLocation == "" || req.DropoffLocation == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingBookingFields
	}

	vehicleType := domain.VehicleStandard
	if req.VehicleType != "" {
		parsed, ok := domain.ParseVehicleType(req.VehicleType)
		if !ok {
			return nil, ErrInvalidVehicleType
		}
		vehicleType = parsed
	}

	price := req.Price
	if price <= 0 {
		fare, err := pricing.Estimate(vehicleType)
		if err != nil {
			return nil, err
		}
		price = fare.Total
	}

	ride := &domain.Ride{
		ID:              newRideID(),
		UserID:          req.UserID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Date:            req.Date,
		Time:            req.Time,
		Status:          domain.RideStatusScheduled,
		VehicleType:     vehicleType,
		Price:           price,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.announceInsert(ctx, ride)
	return ride, nil
}

// ListRides returns a user's rides, most recent first.
func (s *RideService) ListRides(ctx context.Context, userID string) ([]*domain.Ride, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.rideRepo.ListByUser(ctx, userID)
}

// GetRide retrieves a single ride, consulting the cache first.
func (s *RideService) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if s.cache != nil {
		cached, err := s.cache.GetRide(ctx, rideID)
		if err != nil {
			log.Printf("ride cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRide(ctx, ride); err != nil {
			log.Printf("ride cache write failed: %v", err)
		}
	}
	return ride, nil
}

// CancelRide cancels a scheduled ride on behalf of its owner.
func (s *RideService) CancelRide(ctx context.Context, rideID, userID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.UserID != userID {
		return nil, ErrNotRideOwner
	}
	if ride.Status == domain.RideStatusCancelled {
		return nil, ErrRideAlreadyCancelled
	}
	// Only scheduled rides expose a cancel action.
	if ride.Status != domain.RideStatusScheduled {
		return nil, ErrRideCannotBeCancelled
	}

	if err := s.rideRepo.UpdateStatus(ctx, rideID, domain.RideStatusCancelled); err != nil {
		return nil, err
	}
	ride.Status = domain.RideStatusCancelled

	s.invalidate(ctx, rideID)
	return ride, nil
}

// UpdateStatus moves a ride to the next status, rejecting non-monotonic
// transitions.
func (s *RideService) UpdateStatus(ctx context.Context, rideID string, status string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	next, ok := domain.ParseRideStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(ride.Status, next) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.rideRepo.UpdateStatus(ctx, rideID, next); err != nil {
		return nil, err
	}
	ride.Status = next

	s.invalidate(ctx, rideID)
	return ride, nil
}

// announceInsert publishes a freshly created ride to the live feed and flags
// it for dashboard highlighting. Neither failure blocks the booking.
func (s *RideService) announceInsert(ctx context.Context, ride *domain.Ride) {
	if s.feed != nil {
		s.feed.PublishInsert(ride)
	}
	if s.newRides != nil {
		if err := s.newRides.MarkNew(ctx, ride.UserID, ride.ID); err != nil {
			log.Printf("failed to mark ride %s as new: %v", ride.ID, err)
		}
	}
}

func (s *RideService) invalidate(ctx context.Context, rideID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRide(ctx, rideID); err != nil {
		log.Printf("ride cache invalidation failed: %v", err)
	}
}
