package events

import (
	"sync"

	"auction-engine/internal/models"
	"auction-engine/utils"
)

// Subscriber receives events for one auction on C until unsubscribed
type Subscriber struct {
	AuctionID string
	C         chan models.Event
}

// Hub fans out auction events to in-process subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	buffer int
	subs   map[string]map[*Subscriber]struct{} // key: auctionID
}

// NewHub creates a hub whose subscribers buffer up to buffer events
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		buffer: buffer,
		subs:   make(map[string]map[*Subscriber]struct{}),
	}
}

// Subscribe registers interest in one auction's events
func (h *Hub) Subscribe(auctionID string) *Subscriber {
	s := &Subscriber{AuctionID: auctionID, C: make(chan models.Event, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[auctionID] == nil {
		h.subs[auctionID] = make(map[*Subscriber]struct{})
	}
	h.subs[auctionID][s] = struct{}{}
	return s
}

// Unsubscribe removes the subscriber and closes its channel. Safe to call twice.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[s.AuctionID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.AuctionID)
	}
	close(s.C)
}

// Publish delivers the event to every subscriber of its auction
func (h *Hub) Publish(event models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs[event.AuctionID] {
		select {
		case s.C <- event:
		default:
			utils.Warn("events: subscriber buffer full, dropping event", map[string]any{
				"auction_id": event.AuctionID,
				"type":       event.Type,
			})
		}
	}
}

// Subscribers returns the number of live subscribers for an auction
func (h *Hub) Subscribers(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[auctionID])
}
