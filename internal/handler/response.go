package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/pricing"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	// PaymentStatus carries the provider's actual status when verification
	// rejects an unpaid session.
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	var incomplete *service.PaymentIncompleteError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:         "Payment not completed",
			PaymentStatus: incomplete.Status,
		})
		return
	}

	c.JSON(mapErrorToHTTPStatus(err), ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrMissingBookingFields),
		errors.Is(err, service.ErrInvalidVehicleType),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrMissingVerificationData),
		errors.Is(err, service.ErrMissingSuggestionInput),
		errors.Is(err, pricing.ErrUnknownVehicleType),
		errors.Is(err, pricing.ErrInvalidDistance):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrRideAlreadyCancelled),
		errors.Is(err, service.ErrRideCannotBeCancelled),
		errors.Is(err, service.ErrInvalidStatusTransition):
		return http.StatusConflict

	// Forbidden/Business rule errors
	case errors.Is(err, service.ErrNotRideOwner):
		return http.StatusForbidden

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
