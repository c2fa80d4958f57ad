package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/ledger"
	"auction-engine/internal/lifecycle"
	"auction-engine/internal/models"
)

// Resolver turns a closed auction's best bid into a settlement outcome,
// applying any balance and ownership effects.
type Resolver interface {
	Resolve(item models.Item, best *models.Bid, now time.Time) (models.SettlementOutcome, error)
}

// Auction aggregates an item with its bid ledger and lifecycle.
// Every read and write goes through mu, so bids on one auction are applied
// one at a time in lock acquisition order while other auctions proceed freely.
type Auction struct {
	mu        sync.Mutex
	item      models.Item
	ledger    *ledger.Ledger
	lifecycle *lifecycle.Lifecycle
	outcome   *models.SettlementOutcome
}

// New opens an auction for item starting at item.CreatedAt
func New(item models.Item) *Auction {
	return &Auction{
		item:      item,
		ledger:    ledger.New(item),
		lifecycle: lifecycle.New(item.CreatedAt, item.Duration),
	}
}

// ID returns the auction identifier, shared with its item
func (a *Auction) ID() string {
	return a.item.ItemID
}

// Item returns the auctioned item
func (a *Auction) Item() models.Item {
	return a.item
}

// PlaceBid records a bid if the auction is still accepting bids at now
func (a *Auction) PlaceBid(bidderID string, amount float64, now time.Time) (models.Bid, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.lifecycle.IsAcceptingBids(now) {
		return models.Bid{}, fmt.Errorf("auction %s: %w - state is %s",
			a.item.ItemID, biddingerrors.ErrAuctionClosed, a.lifecycle.EffectiveState(now))
	}

	bid, err := a.ledger.Submit(bidderID, amount, now)
	if err != nil {
		return models.Bid{}, fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}
	return bid, nil
}

// Close stops bidding without settling
func (a *Auction) Close(now time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.lifecycle.Close(now); err != nil {
		return fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}
	return nil
}

// End closes the auction and settles it in one step.
// If settlement fails the auction stays closed and Settle may be retried.
func (a *Auction) End(resolver Resolver, now time.Time) (models.SettlementOutcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.lifecycle.Close(now); err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}
	return a.settleLocked(resolver, now)
}

// Settle resolves a closed or expired auction exactly once.
// Later calls return the cached outcome without touching any account.
func (a *Auction) Settle(resolver Resolver, now time.Time) (models.SettlementOutcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.settleLocked(resolver, now)
}

func (a *Auction) settleLocked(resolver Resolver, now time.Time) (models.SettlementOutcome, error) {
	if a.outcome != nil {
		return *a.outcome, nil
	}
	if a.lifecycle.IsAcceptingBids(now) {
		return models.SettlementOutcome{}, fmt.Errorf("auction %s: %w", a.item.ItemID, biddingerrors.ErrNotYetClosed)
	}

	var best *models.Bid
	if bid, ok := a.ledger.BestBid(); ok {
		best = &bid
	}

	outcome, err := resolver.Resolve(a.item, best, now)
	if err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}

	if err := a.lifecycle.Settle(now); err != nil {
		return models.SettlementOutcome{}, fmt.Errorf("auction %s: %w", a.item.ItemID, err)
	}
	a.outcome = &outcome
	return outcome, nil
}

// IsAcceptingBids reports whether a bid submitted at now could be recorded
func (a *Auction) IsAcceptingBids(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lifecycle.IsAcceptingBids(now)
}

// NeedsEnding reports whether the auction expired but was never ended
func (a *Auction) NeedsEnding(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lifecycle.State() == models.AuctionOpen && !a.lifecycle.IsAcceptingBids(now)
}

// NeedsSettling reports whether the auction was closed but its settlement
// failed and has not been retried successfully
func (a *Auction) NeedsSettling() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lifecycle.State() == models.AuctionClosed && a.outcome == nil
}

// Outcome returns the cached settlement outcome, if settled
func (a *Auction) Outcome() (models.SettlementOutcome, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.outcome == nil {
		return models.SettlementOutcome{}, false
	}
	return *a.outcome, true
}

// View returns a snapshot for presentation
func (a *Auction) View(now time.Time) models.AuctionView {
	a.mu.Lock()
	defer a.mu.Unlock()

	view := models.AuctionView{
		Item:         a.item,
		State:        a.lifecycle.EffectiveState(now),
		Accepting:    a.lifecycle.IsAcceptingBids(now),
		CurrentPrice: a.item.StartingPrice,
		BidCount:     a.ledger.Len(),
		StartTime:    a.lifecycle.StartTime(),
		EndTime:      a.lifecycle.EndTime(),
		Remaining:    a.lifecycle.Remaining(now),
	}
	if best, ok := a.ledger.BestBid(); ok {
		view.HighestBid = &best
		view.CurrentPrice = best.Amount
	}
	if a.outcome != nil {
		outcome := *a.outcome
		view.Outcome = &outcome
	}
	return view
}

// History returns accepted bids in submission order
func (a *Auction) History() []models.Bid {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ledger.History()
}

// RankedBids returns accepted bids best first
func (a *Auction) RankedBids() []models.Bid {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ledger.Ranked()
}

// BestBid returns the current best bid
func (a *Auction) BestBid() (models.Bid, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ledger.BestBid()
}

// BestBidFor returns the bidder's personal best on this auction
func (a *Auction) BestBidFor(bidderID string) (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ledger.BestBidFor(bidderID)
}

// Leaderboard returns the top bidders by personal best
func (a *Auction) Leaderboard(limit int) []models.BidderStanding {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ledger.Leaderboard(limit)
}
