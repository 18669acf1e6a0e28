package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// PaymentHandler handles the checkout-session and verification endpoints.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePaymentRequest is the HTTP request body for creating a checkout
// session from a booking draft.
type CreatePaymentRequest struct {
	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	VehicleType     string  `json:"vehicleType"`
	Price           float64 `json:"price"`
	UserID          string  `json:"userId"`
	Email           string  `json:"email,omitempty"`
}

// CreatePaymentResponse points the caller at the hosted checkout page.
type CreatePaymentResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// BookingDetailsPayload mirrors the client-held pending booking.
type BookingDetailsPayload struct {
	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	VehicleType     string  `json:"vehicleType"`
	Price           float64 `json:"price"`
}

// VerifyPaymentRequest is the HTTP request body for payment verification.
type VerifyPaymentRequest struct {
	SessionID      string                 `json:"sessionId"`
	UserID         string                 `json:"userId"`
	BookingDetails *BookingDetailsPayload `json:"bookingDetails"`
}

// VerifyPaymentResponse reports the verified payment and the created ride.
type VerifyPaymentResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Ride    RideResponse `json:"ride"`
}

func (p BookingDetailsPayload) toDomain() domain.BookingDetails {
	return domain.BookingDetails{
		PickupLocation:  p.PickupLocation,
		DropoffLocation: p.DropoffLocation,
		Date:            p.Date,
		Time:            p.Time,
		VehicleType:     domain.VehicleType(p.VehicleType),
		Price:           p.Price,
	}
}

// CreatePayment handles POST /v1/payments/create-payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), service.CreateSessionRequest{
		Booking: domain.BookingDetails{
			PickupLocation:  req.PickupLocation,
			DropoffLocation: req.DropoffLocation,
			Date:            req.Date,
			Time:            req.Time,
			VehicleType:     domain.VehicleType(req.VehicleType),
			Price:           req.Price,
		},
		UserID: req.UserID,
		Email:  req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CreatePaymentResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// VerifyPayment handles POST /v1/payments/verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.BookingDetails == nil {
		respondError(c, service.ErrMissingVerificationData)
		return
	}

	ride, err := h.paymentService.VerifyPayment(c.Request.Context(), service.VerifyRequest{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Booking:   req.BookingDetails.toDomain(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified and ride created",
		Ride:    toRideResponse(ride),
	})
}
