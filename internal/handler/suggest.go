package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/service"
)

// SuggestHandler handles the location suggestion endpoint.
type SuggestHandler struct {
	suggestService *service.SuggestService
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(suggestService *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggestService: suggestService}
}

// SuggestRequest is the HTTP request body for a suggestion.
type SuggestRequest struct {
	Input string `json:"input"`
	Type  string `json:"type"` // pickup | dropoff
}

// SuggestResponse carries the suggested location text.
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// Suggest handles POST /v1/suggest-locations
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	suggestion, err := h.suggestService.Suggest(c.Request.Context(), req.Input, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, SuggestResponse{Suggestion: suggestion})
}
