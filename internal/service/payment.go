package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/feed"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// CheckoutProvider is the interface to a hosted-checkout payment provider.
type CheckoutProvider interface {
	// CreateSession creates a hosted checkout session and returns its ID and
	// redirect URL.
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)

	// GetSession retrieves an existing session, including its live payment
	// status.
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// CheckoutRequest describes the single line item and redirects for a session.
type CheckoutRequest struct {
	Name          string
	Description   string
	AmountCents   int64
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// CheckoutSession is the provider's view of one payment attempt.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string // provider vocabulary; "paid" marks completion
}

// PaymentStatusPaid is the provider payment status accepted by verification.
const PaymentStatusPaid = "paid"

// PaymentService creates checkout sessions for pending bookings and turns
// verified sessions into paid rides. It is the only writer that creates rides
// with payment status "paid".
type PaymentService struct {
	provider CheckoutProvider
	rideRepo repository.RideRepository
	feed     *feed.Feed
	newRides redis.HighlightStoreInterface
	baseURL  string
}

// NewPaymentService creates a new PaymentService. baseURL is the application
// origin the checkout redirects back into.
func NewPaymentService(
	provider CheckoutProvider,
	rideRepo repository.RideRepository,
	rideFeed *feed.Feed,
	newRides redis.HighlightStoreInterface,
	baseURL string,
) *PaymentService {
	return &PaymentService{
		provider: provider,
		rideRepo: rideRepo,
		feed:     rideFeed,
		newRides: newRides,
		baseURL:  baseURL,
	}
}

// CreateSessionRequest contains a booking draft awaiting payment.
type CreateSessionRequest struct {
	Booking domain.BookingDetails
	UserID  string
	Email   string // optional; pre-fills the checkout form
}

// CreateCheckoutSession validates the booking draft and opens a hosted
// checkout session for it. No ride record exists until the payment is
// verified; a provider failure leaves no partial state.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (*CheckoutSession, error) {
	// Validate before touching the provider.
	if !req.Booking.Complete() {
		return nil, ErrMissingBookingFields
	}
	if _, ok := domain.ParseVehicleType(string(req.Booking.VehicleType)); !ok {
		return nil, ErrInvalidVehicleType
	}

	booking := req.Booking
	session, err := s.provider.CreateSession(ctx, CheckoutRequest{
		Name: booking.VehicleType.DisplayName() + " Ride",
		Description: fmt.Sprintf("From %s to %s on %s at %s",
			booking.PickupLocation, booking.DropoffLocation, booking.Date, booking.Time),
		AmountCents:   int64(math.Round(booking.Price * 100)),
		SuccessURL:    s.baseURL + "/payment?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.baseURL + "/payment?canceled=true",
		CustomerEmail: req.Email,
		Metadata: map[string]string{
			"userId":          req.UserID,
			"pickupLocation":  booking.PickupLocation,
			"dropoffLocation": booking.DropoffLocation,
			"date":            booking.Date,
			"time":            booking.Time,
			"vehicleType":     string(booking.VehicleType),
			"price":           strconv.FormatFloat(booking.Price, 'f', -1, 64),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("checkout session created: %s", session.ID)
	return session, nil
}

// VerifyRequest contains the inputs for payment verification.
type VerifyRequest struct {
	SessionID string
	UserID    string
	Booking   domain.BookingDetails
}

// VerifyPayment checks a checkout session against the provider and, if the
// session is paid, persists the ride it paid for. The paid-status check is
// the sole gate preventing unpaid bookings from being recorded.
func (s *PaymentService) VerifyPayment(ctx context.Context, req VerifyRequest) (*domain.Ride, error) {
	if req.SessionID == "" || req.UserID == "" || req.Booking == (domain.BookingDetails{}) {
		return nil, ErrMissingVerificationData
	}

	session, err := s.provider.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if session.PaymentStatus != PaymentStatusPaid {
		return nil, &PaymentIncompleteError{Status: session.PaymentStatus}
	}

	ride := &domain.Ride{
		ID:              newRideID(),
		UserID:          req.UserID,
		PickupLocation:  req.Booking.PickupLocation,
		DropoffLocation: req.Booking.DropoffLocation,
		Date:            req.Booking.Date,
		Time:            req.Booking.Time,
		Status:          domain.RideStatusScheduled,
		VehicleType:     req.Booking.VehicleType,
		Price:           req.Booking.Price,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentID:       req.SessionID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("failed to create ride record: %w", err)
	}

	if s.feed != nil {
		s.feed.PublishInsert(ride)
	}
	if s.newRides != nil {
		if err := s.newRides.MarkNew(ctx, ride.UserID, ride.ID); err != nil {
			log.Printf("failed to mark ride %s as new: %v", ride.ID, err)
		}
	}

	return ride, nil
}
