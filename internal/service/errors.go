package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUserID is returned when the user ID is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidRideID is returned when the ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrMissingBookingFields is returned when a booking draft lacks any of
	// the required fields.
	ErrMissingBookingFields = errors.New("missing required booking information")

	// ErrInvalidVehicleType is returned for vehicle types outside the known set.
	ErrInvalidVehicleType = errors.New("invalid vehicle type")

	// ErrInvalidStatus is returned for status strings outside the known set.
	ErrInvalidStatus = errors.New("invalid ride status")

	// ErrInvalidStatusTransition is returned when a status update would move
	// a ride backwards or out of a terminal state.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrRideAlreadyCancelled is returned when cancelling a cancelled ride.
	ErrRideAlreadyCancelled = errors.New("ride already cancelled")

	// ErrRideCannotBeCancelled is returned when a ride is past the point of
	// cancellation; only scheduled rides can be cancelled.
	ErrRideCannotBeCancelled = errors.New("ride cannot be cancelled in current state")

	// ErrNotRideOwner is returned when a caller acts on another user's ride.
	ErrNotRideOwner = errors.New("ride belongs to another user")

	// ErrMissingVerificationData is returned when a verification request lacks
	// the session ID, user ID, or booking details.
	ErrMissingVerificationData = errors.New("missing required verification data")

	// ErrMissingSuggestionInput is returned when a suggestion request has no
	// input text.
	ErrMissingSuggestionInput = errors.New("missing suggestion input")
)

// PaymentIncompleteError is returned when a checkout session presented for
// verification has not been paid. Status carries the provider's actual
// payment status.
type PaymentIncompleteError struct {
	Status string
}

func (e *PaymentIncompleteError) Error() string {
	return fmt.Sprintf("payment not completed: %s", e.Status)
}
