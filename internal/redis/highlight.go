package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewBookingTTL is the window during which a freshly booked ride is flagged
// for dashboard highlighting. Expiry is handled by Redis key TTL, not by an
// application timer.
const NewBookingTTL = 5 * time.Second

const highlightPrefix = "highlight:"

// HighlightStore tracks freshly booked ride IDs per user.
type HighlightStore struct {
	client *redis.Client
}

// NewHighlightStore creates a new HighlightStore.
func NewHighlightStore(client *redis.Client) *HighlightStore {
	return &HighlightStore{client: client}
}

// MarkNew flags a ride as freshly booked for the highlight window.
func (s *HighlightStore) MarkNew(ctx context.Context, userID, rideID string) error {
	key := highlightPrefix + userID + ":" + rideID
	return s.client.Set(ctx, key, "1", NewBookingTTL).Err()
}

// IsNew reports whether a ride is still inside its highlight window.
func (s *HighlightStore) IsNew(ctx context.Context, userID, rideID string) (bool, error) {
	key := highlightPrefix + userID + ":" + rideID
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListNew returns the ride IDs currently flagged for a user.
func (s *HighlightStore) ListNew(ctx context.Context, userID string) ([]string, error) {
	prefix := highlightPrefix + userID + ":"

	var ids []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
