package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusScheduled  RideStatus = "scheduled"
	RideStatusInProgress RideStatus = "in-progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// ParseRideStatus validates a raw status string.
func ParseRideStatus(s string) (RideStatus, bool) {
	switch RideStatus(s) {
	case RideStatusScheduled, RideStatusInProgress, RideStatusCompleted, RideStatusCancelled:
		return RideStatus(s), true
	default:
		return "", false
	}
}

// CanTransition reports whether a ride may move from one status to the next.
// Transitions are monotonic: scheduled -> in-progress -> completed, or
// scheduled -> cancelled. Completed and cancelled are terminal.
func CanTransition(from, to RideStatus) bool {
	switch from {
	case RideStatusScheduled:
		return to == RideStatusInProgress || to == RideStatusCancelled
	case RideStatusInProgress:
		return to == RideStatusCompleted
	default:
		return false
	}
}

// PaymentStatus represents the payment state of a ride.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Ride represents a single booking: route, schedule, vehicle, price, status.
type Ride struct {
	ID              string
	UserID          string
	PickupLocation  string
	DropoffLocation string
	Date            string // formatted, e.g. "Jan 1, 2025"
	Time            string // "HH:MM"
	Status          RideStatus
	VehicleType     VehicleType
	Price           float64
	PaymentStatus   PaymentStatus
	PaymentID       string // checkout session reference; empty for free bookings

	// Live-tracking columns exist in the schema but have no updater yet.
	// They are written as NULL at creation.
	CurrentLocationLat   *float64
	CurrentLocationLng   *float64
	EstimatedArrivalTime *string

	CreatedAt time.Time
}
