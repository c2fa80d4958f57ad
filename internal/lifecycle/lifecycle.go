package lifecycle

import (
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
)

// Lifecycle tracks an auction through open, closed and settled.
//
// Expiry is evaluated lazily: once now reaches the end time the auction is
// treated as closed for bidding even if Close was never called.
// Lifecycle is not safe for concurrent use; the owning auction serializes access.
type Lifecycle struct {
	state     models.AuctionState
	startTime time.Time
	endTime   time.Time
	closedAt  time.Time
	settledAt time.Time
}

// New returns an open lifecycle valid for [start, start+duration)
func New(start time.Time, duration time.Duration) *Lifecycle {
	return &Lifecycle{
		state:     models.AuctionOpen,
		startTime: start,
		endTime:   start.Add(duration),
	}
}

// State returns the stored state, ignoring expiry
func (l *Lifecycle) State() models.AuctionState {
	return l.state
}

// EffectiveState returns the state as observed at now
func (l *Lifecycle) EffectiveState(now time.Time) models.AuctionState {
	if l.state == models.AuctionOpen && l.expired(now) {
		return models.AuctionClosed
	}
	return l.state
}

// IsAcceptingBids reports whether bids may be recorded at now
func (l *Lifecycle) IsAcceptingBids(now time.Time) bool {
	return l.state == models.AuctionOpen && !l.expired(now)
}

// Close explicitly ends bidding. Closing an auction that has merely expired
// is allowed; closing one already closed or settled is not.
func (l *Lifecycle) Close(now time.Time) error {
	if l.state != models.AuctionOpen {
		return fmt.Errorf("lifecycle: %w - state is %s", biddingerrors.ErrAlreadyEnded, l.state)
	}
	l.state = models.AuctionClosed
	l.closedAt = now
	if l.expired(now) {
		l.closedAt = l.endTime
	}
	return nil
}

// Settle moves a closed (or expired) auction to its terminal state
func (l *Lifecycle) Settle(now time.Time) error {
	switch {
	case l.state == models.AuctionSettled:
		return fmt.Errorf("lifecycle: %w", biddingerrors.ErrAlreadySettled)
	case l.IsAcceptingBids(now):
		return fmt.Errorf("lifecycle: %w - ends at %s", biddingerrors.ErrNotYetClosed, l.endTime.Format(time.RFC3339))
	}

	if l.state == models.AuctionOpen {
		l.closedAt = l.endTime
	}
	l.state = models.AuctionSettled
	l.settledAt = now
	return nil
}

// Remaining returns the bidding time left at now, zero once bidding stopped
func (l *Lifecycle) Remaining(now time.Time) time.Duration {
	if !l.IsAcceptingBids(now) {
		return 0
	}
	return l.endTime.Sub(now)
}

func (l *Lifecycle) StartTime() time.Time { return l.startTime }
func (l *Lifecycle) EndTime() time.Time   { return l.endTime }
func (l *Lifecycle) ClosedAt() time.Time  { return l.closedAt }
func (l *Lifecycle) SettledAt() time.Time { return l.settledAt }

func (l *Lifecycle) expired(now time.Time) bool {
	return !now.Before(l.endTime)
}
