package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"swiftride/internal/feed"
	"swiftride/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the app origin; CORS policy is already
	// permissive for the JSON endpoints.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedHandler streams ride insert events over a websocket.
type FeedHandler struct {
	feed *feed.Feed
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(rideFeed *feed.Feed) *FeedHandler {
	return &FeedHandler{feed: rideFeed}
}

// FeedEventPayload is the wire form of one feed event.
type FeedEventPayload struct {
	Type string       `json:"type"`
	Ride RideResponse `json:"ride"`
}

// Subscribe handles GET /v1/rides/subscribe?user_id=
//
// The connection receives one JSON message per ride inserted for the user,
// until either side closes. Closing the socket releases the subscription.
func (h *FeedHandler) Subscribe(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, service.ErrInvalidUserID)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := h.feed.Subscribe(userID)
	defer sub.Close()

	// Drain reads so we notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event := <-sub.C:
			payload := FeedEventPayload{
				Type: event.Type,
				Ride: toRideResponse(event.Ride),
			}
			if err := conn.WriteJSON(payload); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
