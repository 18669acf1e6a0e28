// Package feed delivers ride insert events to per-user subscribers. It backs
// the websocket subscription endpoint: the store-side writers publish, the
// transport layer subscribes.
package feed

import (
	"sync"

	"swiftride/internal/domain"
)

// EventTypeRideInsert is the type discriminator for insert events.
const EventTypeRideInsert = "ride_insert"

// subscriberBuffer is the per-subscription channel depth. A subscriber that
// falls further behind than this drops events rather than blocking writers.
const subscriberBuffer = 16

// RideEvent is one entry in a user's live feed. The transport layer owns the
// wire representation.
type RideEvent struct {
	Type string
	Ride *domain.Ride
}

// Subscription is a cancellable handle to a user's feed. Events arrive on C
// until Close is called; Close is idempotent and safe to call concurrently
// with Publish.
type Subscription struct {
	C chan RideEvent

	userID string
	feed   *Feed
	once   sync.Once
}

// Close detaches the subscription from the feed.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.feed.unsubscribe(s)
	})
}

// Feed fans ride insert events out to subscribers, keyed by user ID.
type Feed struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{
		subscribers: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registers a new subscription for the given user's insert events.
func (f *Feed) Subscribe(userID string) *Subscription {
	sub := &Subscription{
		C:      make(chan RideEvent, subscriberBuffer),
		userID: userID,
		feed:   f,
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subscribers[userID]; !ok {
		f.subscribers[userID] = make(map[*Subscription]struct{})
	}
	f.subscribers[userID][sub] = struct{}{}
	return sub
}

// PublishInsert delivers a newly created ride to the owner's subscribers.
// Delivery never blocks: a full subscriber channel drops the event.
func (f *Feed) PublishInsert(ride *domain.Ride) {
	event := RideEvent{Type: EventTypeRideInsert, Ride: ride}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for sub := range f.subscribers[ride.UserID] {
		select {
		case sub.C <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscriptions for a user.
func (f *Feed) SubscriberCount(userID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers[userID])
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	subs, ok := f.subscribers[sub.userID]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(f.subscribers, sub.userID)
	}
}
