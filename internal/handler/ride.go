package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// BookRideRequest is the HTTP request body for a direct booking.
type BookRideRequest struct {
	UserID          string  `json:"user_id"`
	PickupLocation  string  `json:"pickup_location"`
	DropoffLocation string  `json:"dropoff_location"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	VehicleType     string  `json:"vehicle_type,omitempty"`
	Price           float64 `json:"price,omitempty"`
}

// CancelRideRequest is the HTTP request body for cancelling a ride.
type CancelRideRequest struct {
	UserID string `json:"user_id"`
}

// UpdateStatusRequest is the HTTP request body for a status update.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RideResponse is the HTTP representation of a ride row.
type RideResponse struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	PickupLocation       string   `json:"pickup_location"`
	DropoffLocation      string   `json:"dropoff_location"`
	Date                 string   `json:"date"`
	Time                 string   `json:"time"`
	Status               string   `json:"status"`
	VehicleType          string   `json:"vehicle_type"`
	Price                float64  `json:"price"`
	PaymentStatus        string   `json:"payment_status"`
	PaymentID            string   `json:"payment_id,omitempty"`
	CurrentLocationLat   *float64 `json:"current_location_lat,omitempty"`
	CurrentLocationLng   *float64 `json:"current_location_lng,omitempty"`
	EstimatedArrivalTime *string  `json:"estimated_arrival_time,omitempty"`
	CreatedAt            string   `json:"created_at"`
}

func toRideResponse(ride *domain.Ride) RideResponse {
	return RideResponse{
		ID:                   ride.ID,
		UserID:               ride.UserID,
		PickupLocation:       ride.PickupLocation,
		DropoffLocation:      ride.DropoffLocation,
		Date:                 ride.Date,
		Time:                 ride.Time,
		Status:               string(ride.Status),
		VehicleType:          string(ride.VehicleType),
		Price:                ride.Price,
		PaymentStatus:        string(ride.PaymentStatus),
		PaymentID:            ride.PaymentID,
		CurrentLocationLat:   ride.CurrentLocationLat,
		CurrentLocationLng:   ride.CurrentLocationLng,
		EstimatedArrivalTime: ride.EstimatedArrivalTime,
		CreatedAt:            ride.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toRideResponses(rides []*domain.Ride) []RideResponse {
	responses := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		responses = append(responses, toRideResponse(ride))
	}
	return responses
}

// BookRide handles POST /v1/rides
func (h *RideHandler) BookRide(c *gin.Context) {
	var req BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.BookRide(c.Request.Context(), service.BookRideRequest{
		UserID:          req.UserID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Date:            req.Date,
		Time:            req.Time,
		VehicleType:     req.VehicleType,
		Price:           req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(ride))
}

// ListRides handles GET /v1/rides?user_id=
func (h *RideHandler) ListRides(c *gin.Context) {
	userID := c.Query("user_id")

	rides, err := h.rideService.ListRides(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponses(rides))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// CancelRide handles POST /v1/rides/:id/cancel
func (h *RideHandler) CancelRide(c *gin.Context) {
	var req CancelRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.CancelRide(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}

// UpdateStatus handles POST /v1/rides/:id/status
func (h *RideHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride))
}
