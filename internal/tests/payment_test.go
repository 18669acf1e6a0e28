package tests

import (
	"context"
	"errors"
	"testing"

	"swiftride/internal/domain"
	"swiftride/internal/feed"
	"swiftride/internal/service"
)

func completeBooking() domain.BookingDetails {
	return domain.BookingDetails{
		PickupLocation:  "Central Station",
		DropoffLocation: "Harbor View Hotel",
		Date:            "Mar 3, 2026",
		Time:            "18:45",
		VehicleType:     domain.VehicleStandard,
		Price:           46,
	}
}

// ──────────────────────────────────────────────
// 4. CHECKOUT SESSION CREATION
// ──────────────────────────────────────────────

func TestCreateCheckoutSession_BuildsLineItemAndRedirects(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	paymentService := service.NewPaymentService(
		provider, NewMockRideRepository(), nil, nil, "https://rides.example.com")

	session, err := paymentService.CreateCheckoutSession(context.Background(), service.CreateSessionRequest{
		Booking: completeBooking(),
		UserID:  "user-1",
		Email:   "rider@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.ID == "" || session.URL == "" {
		t.Errorf("expected session ID and URL, got %q / %q", session.ID, session.URL)
	}

	req := provider.LastCreateRequest
	if req == nil {
		t.Fatal("provider was not called")
	}

	if req.Name != "Standard Ride" {
		t.Errorf("expected line item name %q, got %q", "Standard Ride", req.Name)
	}
	wantDesc := "From Central Station to Harbor View Hotel on Mar 3, 2026 at 18:45"
	if req.Description != wantDesc {
		t.Errorf("expected description %q, got %q", wantDesc, req.Description)
	}
	if req.AmountCents != 4600 {
		t.Errorf("expected amount 4600 cents, got %d", req.AmountCents)
	}
	if req.CustomerEmail != "rider@example.com" {
		t.Errorf("expected customer email to be forwarded, got %q", req.CustomerEmail)
	}

	wantSuccess := "https://rides.example.com/payment?success=true&session_id={CHECKOUT_SESSION_ID}"
	if req.SuccessURL != wantSuccess {
		t.Errorf("expected success URL %q, got %q", wantSuccess, req.SuccessURL)
	}
	wantCancel := "https://rides.example.com/payment?canceled=true"
	if req.CancelURL != wantCancel {
		t.Errorf("expected cancel URL %q, got %q", wantCancel, req.CancelURL)
	}

	if req.Metadata["userId"] != "user-1" {
		t.Errorf("expected userId metadata, got %q", req.Metadata["userId"])
	}
	if req.Metadata["vehicleType"] != "standard" {
		t.Errorf("expected vehicleType metadata, got %q", req.Metadata["vehicleType"])
	}
	if req.Metadata["price"] != "46" {
		t.Errorf("expected price metadata %q, got %q", "46", req.Metadata["price"])
	}
}

func TestCreateCheckoutSession_IncompleteBooking_NeverCallsProvider(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(*domain.BookingDetails)
	}{
		{"missing pickup", func(b *domain.BookingDetails) { b.PickupLocation = "" }},
		{"missing dropoff", func(b *domain.BookingDetails) { b.DropoffLocation = "" }},
		{"missing date", func(b *domain.BookingDetails) { b.Date = "" }},
		{"missing time", func(b *domain.BookingDetails) { b.Time = "" }},
		{"missing vehicle", func(b *domain.BookingDetails) { b.VehicleType = "" }},
		{"zero price", func(b *domain.BookingDetails) { b.Price = 0 }},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := NewMockCheckoutProvider()
			paymentService := service.NewPaymentService(
				provider, NewMockRideRepository(), nil, nil, "https://rides.example.com")

			booking := completeBooking()
			tc.mutate(&booking)

			_, err := paymentService.CreateCheckoutSession(context.Background(), service.CreateSessionRequest{
				Booking: booking,
				UserID:  "user-1",
			})
			if !errors.Is(err, service.ErrMissingBookingFields) {
				t.Errorf("expected ErrMissingBookingFields, got %v", err)
			}

			// Validation failure must not reach the provider.
			if provider.CreateCallCount != 0 {
				t.Errorf("provider called %d times for invalid booking", provider.CreateCallCount)
			}
		})
	}
}

func TestCreateCheckoutSession_ProviderFailure_LeavesNoState(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	provider.CreateError = errors.New("provider unavailable")
	rideRepo := NewMockRideRepository()
	paymentService := service.NewPaymentService(provider, rideRepo, nil, nil, "https://rides.example.com")

	_, err := paymentService.CreateCheckoutSession(context.Background(), service.CreateSessionRequest{
		Booking: completeBooking(),
		UserID:  "user-1",
	})
	if err == nil {
		t.Fatal("expected error from provider")
	}

	if rideRepo.CreateCallCount != 0 {
		t.Errorf("expected no ride created, got %d create calls", rideRepo.CreateCallCount)
	}
}

// ──────────────────────────────────────────────
// 5. PAYMENT VERIFICATION
// ──────────────────────────────────────────────

func TestVerifyPayment_PaidSession_CreatesPaidRide(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	provider.AddSession(&service.CheckoutSession{
		ID:            "sess_123",
		PaymentStatus: "paid",
	})
	rideRepo := NewMockRideRepository()
	highlights := NewMockHighlightStore()
	paymentService := service.NewPaymentService(provider, rideRepo, feed.New(), highlights, "https://rides.example.com")

	booking := domain.BookingDetails{
		PickupLocation:  "A",
		DropoffLocation: "B",
		Date:            "Jan 1, 2025",
		Time:            "10:00",
		VehicleType:     domain.VehicleStandard,
		Price:           30,
	}
	ride, err := paymentService.VerifyPayment(context.Background(), service.VerifyRequest{
		SessionID: "sess_123",
		UserID:    "u1",
		Booking:   booking,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ride.UserID != "u1" {
		t.Errorf("expected user u1, got %s", ride.UserID)
	}
	if ride.Status != domain.RideStatusScheduled {
		t.Errorf("expected status %s, got %s", domain.RideStatusScheduled, ride.Status)
	}
	if ride.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected payment status %s, got %s", domain.PaymentStatusPaid, ride.PaymentStatus)
	}
	if ride.PaymentID != "sess_123" {
		t.Errorf("expected payment reference sess_123, got %s", ride.PaymentID)
	}
	if len(ride.ID) != 8 {
		t.Errorf("expected 8-character ride ID, got %q", ride.ID)
	}
	if ride.PickupLocation != booking.PickupLocation ||
		ride.DropoffLocation != booking.DropoffLocation ||
		ride.Date != booking.Date ||
		ride.Time != booking.Time ||
		ride.VehicleType != booking.VehicleType ||
		ride.Price != booking.Price {
		t.Errorf("ride does not match verified booking: %+v", ride)
	}

	stored := rideRepo.GetRide(ride.ID)
	if stored == nil {
		t.Fatal("ride not persisted")
	}
	if stored.PaymentStatus != domain.PaymentStatusPaid {
		t.Errorf("expected stored payment status %s, got %s", domain.PaymentStatusPaid, stored.PaymentStatus)
	}

	isNew, err := highlights.IsNew(context.Background(), "u1", ride.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isNew {
		t.Error("expected verified ride to be marked as new")
	}
}

func TestVerifyPayment_UnpaidSession_Rejected(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"unpaid", "no_payment_required", ""} {
		status := status
		t.Run("status "+status, func(t *testing.T) {
			t.Parallel()

			provider := NewMockCheckoutProvider()
			provider.AddSession(&service.CheckoutSession{
				ID:            "sess_unpaid",
				PaymentStatus: status,
			})
			rideRepo := NewMockRideRepository()
			paymentService := service.NewPaymentService(provider, rideRepo, nil, nil, "https://rides.example.com")

			_, err := paymentService.VerifyPayment(context.Background(), service.VerifyRequest{
				SessionID: "sess_unpaid",
				UserID:    "user-1",
				Booking:   completeBooking(),
			})

			var incomplete *service.PaymentIncompleteError
			if !errors.As(err, &incomplete) {
				t.Fatalf("expected PaymentIncompleteError, got %v", err)
			}
			if incomplete.Status != status {
				t.Errorf("expected reported status %q, got %q", status, incomplete.Status)
			}

			// No ride may exist for an unverified payment.
			if rideRepo.CreateCallCount != 0 {
				t.Errorf("expected no ride created, got %d create calls", rideRepo.CreateCallCount)
			}
		})
	}
}

func TestVerifyPayment_MissingInputs_Rejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  service.VerifyRequest
	}{
		{"missing session ID", service.VerifyRequest{UserID: "user-1", Booking: completeBooking()}},
		{"missing user ID", service.VerifyRequest{SessionID: "sess_1", Booking: completeBooking()}},
		{"missing booking", service.VerifyRequest{SessionID: "sess_1", UserID: "user-1"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := NewMockCheckoutProvider()
			paymentService := service.NewPaymentService(
				provider, NewMockRideRepository(), nil, nil, "https://rides.example.com")

			_, err := paymentService.VerifyPayment(context.Background(), tc.req)
			if !errors.Is(err, service.ErrMissingVerificationData) {
				t.Errorf("expected ErrMissingVerificationData, got %v", err)
			}
			if provider.GetCallCount != 0 {
				t.Errorf("provider consulted for invalid request")
			}
		})
	}
}

func TestVerifyPayment_InsertFailure_Propagated(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	provider.AddSession(&service.CheckoutSession{ID: "sess_1", PaymentStatus: "paid"})
	rideRepo := NewMockRideRepository()
	rideRepo.CreateError = errors.New("connection reset")

	paymentService := service.NewPaymentService(provider, rideRepo, nil, nil, "https://rides.example.com")

	_, err := paymentService.VerifyPayment(context.Background(), service.VerifyRequest{
		SessionID: "sess_1",
		UserID:    "user-1",
		Booking:   completeBooking(),
	})
	if err == nil {
		t.Fatal("expected insert failure to surface")
	}
}

func TestVerifyPayment_SessionLookupFailure_Propagated(t *testing.T) {
	t.Parallel()

	provider := NewMockCheckoutProvider()
	provider.GetError = errors.New("provider timeout")
	rideRepo := NewMockRideRepository()

	paymentService := service.NewPaymentService(provider, rideRepo, nil, nil, "https://rides.example.com")

	_, err := paymentService.VerifyPayment(context.Background(), service.VerifyRequest{
		SessionID: "sess_1",
		UserID:    "user-1",
		Booking:   completeBooking(),
	})
	if err == nil {
		t.Fatal("expected lookup failure to surface")
	}
	if rideRepo.CreateCallCount != 0 {
		t.Errorf("expected no ride created, got %d create calls", rideRepo.CreateCallCount)
	}
}
