package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/pricing"
	"swiftride/internal/service"
)

// DashboardHandler serves the dashboard summary and fare quotes.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse is the HTTP representation of a dashboard summary.
type DashboardResponse struct {
	Rides      []RideResponse `json:"rides"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
	NewRideIDs []string       `json:"new_ride_ids"`
}

// QuoteResponse is the HTTP representation of a fare breakdown.
type QuoteResponse struct {
	VehicleType  string  `json:"vehicle_type"`
	DistanceKm   float64 `json:"distance_km"`
	BaseFare     float64 `json:"base_fare"`
	DistanceFare float64 `json:"distance_fare"`
	ServiceFee   float64 `json:"service_fee"`
	Total        float64 `json:"total"`
}

// Summary handles GET /v1/dashboard?user_id=&status=
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summarize(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	rides := summary.Rides
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseRideStatus(raw)
		if !ok {
			respondError(c, service.ErrInvalidStatus)
			return
		}
		rides = service.FilterByStatus(rides, status)
	}

	counts := make(map[string]int, len(summary.Counts))
	for status, n := range summary.Counts {
		counts[string(status)] = n
	}

	newIDs := summary.NewRideIDs
	if newIDs == nil {
		newIDs = []string{}
	}

	respondJSON(c, http.StatusOK, DashboardResponse{
		Rides:      toRideResponses(rides),
		Counts:     counts,
		Total:      summary.Total,
		NewRideIDs: newIDs,
	})
}

// Quote handles GET /v1/pricing/quote?vehicle_type=&distance_km=
func (h *DashboardHandler) Quote(c *gin.Context) {
	vehicleType, ok := domain.ParseVehicleType(c.Query("vehicle_type"))
	if !ok {
		respondError(c, pricing.ErrUnknownVehicleType)
		return
	}

	distance := pricing.DefaultDistanceKm
	if raw := c.Query("distance_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, pricing.ErrInvalidDistance)
			return
		}
		distance = parsed
	}

	fare, err := pricing.Calculate(vehicleType, distance)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		VehicleType:  string(vehicleType),
		DistanceKm:   distance,
		BaseFare:     fare.BaseFare,
		DistanceFare: fare.DistanceFare,
		ServiceFee:   fare.ServiceFee,
		Total:        fare.Total,
	})
}
