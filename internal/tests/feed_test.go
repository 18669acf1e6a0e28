package tests

import (
	"testing"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/feed"
)

// ──────────────────────────────────────────────
// 8. LIVE FEED
// ──────────────────────────────────────────────

func TestFeed_SubscriberReceivesOwnInserts(t *testing.T) {
	t.Parallel()

	f := feed.New()
	sub := f.Subscribe("user-1")
	defer sub.Close()

	ride := &domain.Ride{ID: "ride-1", UserID: "user-1"}
	f.PublishInsert(ride)

	select {
	case event := <-sub.C:
		if event.Type != feed.EventTypeRideInsert {
			t.Errorf("expected event type %s, got %s", feed.EventTypeRideInsert, event.Type)
		}
		if event.Ride.ID != "ride-1" {
			t.Errorf("expected ride-1, got %s", event.Ride.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestFeed_EventsScopedToOwner(t *testing.T) {
	t.Parallel()

	f := feed.New()
	mine := f.Subscribe("user-1")
	defer mine.Close()
	theirs := f.Subscribe("user-2")
	defer theirs.Close()

	f.PublishInsert(&domain.Ride{ID: "ride-1", UserID: "user-1"})

	select {
	case <-mine.C:
	case <-time.After(time.Second):
		t.Fatal("owner did not receive the event")
	}

	select {
	case event := <-theirs.C:
		t.Errorf("foreign subscriber received event for ride %s", event.Ride.ID)
	default:
	}
}

func TestFeed_CloseDetachesSubscription(t *testing.T) {
	t.Parallel()

	f := feed.New()
	sub := f.Subscribe("user-1")

	if f.SubscriberCount("user-1") != 1 {
		t.Fatalf("expected 1 subscriber, got %d", f.SubscriberCount("user-1"))
	}

	sub.Close()
	if f.SubscriberCount("user-1") != 0 {
		t.Errorf("expected 0 subscribers after close, got %d", f.SubscriberCount("user-1"))
	}

	// Publishing after close must not panic or deliver.
	f.PublishInsert(&domain.Ride{ID: "ride-1", UserID: "user-1"})

	select {
	case event := <-sub.C:
		t.Errorf("closed subscription received event for ride %s", event.Ride.ID)
	default:
	}
}

func TestFeed_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	f := feed.New()
	sub := f.Subscribe("user-1")

	sub.Close()
	sub.Close()

	if f.SubscriberCount("user-1") != 0 {
		t.Errorf("expected 0 subscribers, got %d", f.SubscriberCount("user-1"))
	}
}

func TestFeed_SlowSubscriberNeverBlocksPublisher(t *testing.T) {
	t.Parallel()

	f := feed.New()
	sub := f.Subscribe("user-1")
	defer sub.Close()

	// Nobody drains the channel; publishing far past the buffer depth must
	// still return promptly, dropping the overflow.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			f.PublishInsert(&domain.Ride{ID: "ride-1", UserID: "user-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestFeed_MultipleSubscribersPerUser(t *testing.T) {
	t.Parallel()

	f := feed.New()
	first := f.Subscribe("user-1")
	defer first.Close()
	second := f.Subscribe("user-1")
	defer second.Close()

	f.PublishInsert(&domain.Ride{ID: "ride-1", UserID: "user-1"})

	for _, sub := range []*feed.Subscription{first, second} {
		select {
		case event := <-sub.C:
			if event.Ride.ID != "ride-1" {
				t.Errorf("expected ride-1, got %s", event.Ride.ID)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}
