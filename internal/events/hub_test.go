package events

import (
	"testing"
	"time"

	"auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishRoutesByAuction(t *testing.T) {
	t.Parallel()

	hub := NewHub(4)
	a := hub.Subscribe("item1")
	b := hub.Subscribe("item2")
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	hub.Publish(models.Event{Type: models.EventBidAccepted, AuctionID: "item1", At: time.Now()})

	select {
	case ev := <-a.C:
		require.Equal(t, models.EventBidAccepted, ev.Type)
		require.Equal(t, "item1", ev.AuctionID)
	case <-time.After(time.Second):
		t.Fatal("expected event for item1 subscriber")
	}

	require.Len(t, b.C, 0)
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	hub := NewHub(1)
	s := hub.Subscribe("item1")
	defer hub.Unsubscribe(s)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			hub.Publish(models.Event{Type: models.EventBidAccepted, AuctionID: "item1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	require.Len(t, s.C, 1)
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	hub := NewHub(0)
	s := hub.Subscribe("item1")
	require.Equal(t, 1, hub.Subscribers("item1"))

	hub.Unsubscribe(s)
	hub.Unsubscribe(s)
	require.Equal(t, 0, hub.Subscribers("item1"))

	_, open := <-s.C
	require.False(t, open)

	// publishing with no subscribers is a no-op
	hub.Publish(models.Event{AuctionID: "item1"})
}
