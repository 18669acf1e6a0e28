package service

import (
	"context"
	"log"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// DashboardService prepares a user's rides for the dashboard: the full list,
// per-status counts, and the freshly-booked highlight set.
type DashboardService struct {
	rideRepo repository.RideRepository
	newRides redis.HighlightStoreInterface
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(rideRepo repository.RideRepository, newRides redis.HighlightStoreInterface) *DashboardService {
	return &DashboardService{
		rideRepo: rideRepo,
		newRides: newRides,
	}
}

// Summary is the dashboard view of a user's rides.
type Summary struct {
	Rides      []*domain.Ride
	Counts     map[domain.RideStatus]int
	Total      int
	NewRideIDs []string
}

// Summarize fetches a user's rides and derives the per-status counts. Counts
// are predicate counts over the returned list, recomputed on every call.
func (s *DashboardService) Summarize(ctx context.Context, userID string) (*Summary, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	rides, err := s.rideRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Rides:  rides,
		Counts: make(map[domain.RideStatus]int),
		Total:  len(rides),
	}
	for _, ride := range rides {
		summary.Counts[ride.Status]++
	}

	if s.newRides != nil {
		ids, err := s.newRides.ListNew(ctx, userID)
		if err != nil {
			// Highlighting is cosmetic; the summary stands without it.
			log.Printf("failed to list new bookings for user %s: %v", userID, err)
		} else {
			summary.NewRideIDs = ids
		}
	}

	return summary, nil
}

// FilterByStatus returns the rides matching a status exactly. An empty status
// is the unfiltered identity view.
func FilterByStatus(rides []*domain.Ride, status domain.RideStatus) []*domain.Ride {
	if status == "" {
		return rides
	}
	var filtered []*domain.Ride
	for _, ride := range rides {
		if ride.Status == status {
			filtered = append(filtered, ride)
		}
	}
	return filtered
}

// MergeInsert prepends a ride delivered by the live feed onto a fetched list,
// deduplicating by ride ID. An insert event racing a full refetch must not
// surface the same ride twice.
func MergeInsert(rides []*domain.Ride, ride *domain.Ride) []*domain.Ride {
	for _, existing := range rides {
		if existing.ID == ride.ID {
			return rides
		}
	}
	merged := make([]*domain.Ride, 0, len(rides)+1)
	merged = append(merged, ride)
	return append(merged, rides...)
}
