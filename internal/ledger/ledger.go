package ledger

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
)

// Ledger is the ranked bid store of a single auction.
//
// It keeps three views of the same accepted bids: a max-heap ordered by
// (amount desc, submission time asc, arrival asc) for the best bid, an
// append-only chronological log, and each bidder's personal best.
//
// Ledger is not safe for concurrent use; the owning auction serializes access.
type Ledger struct {
	auctionID     string
	sellerID      string
	startingPrice float64

	ranked       bidHeap
	history      []models.Bid
	personalBest map[string]float64
}

// New creates an empty ledger for the given auction item
func New(item models.Item) *Ledger {
	return &Ledger{
		auctionID:     item.ItemID,
		sellerID:      item.SellerID,
		startingPrice: item.StartingPrice,
		personalBest:  make(map[string]float64),
	}
}

// Submit validates and records a bid. A rejected bid leaves the ledger untouched.
func (l *Ledger) Submit(bidderID string, amount float64, now time.Time) (models.Bid, error) {
	if err := l.validate(bidderID, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: l.auctionID,
		UserID:    bidderID,
		Amount:    amount,
		CreatedAt: now,
		Seq:       uint64(len(l.history)) + 1,
	}

	heap.Push(&l.ranked, bid)
	l.history = append(l.history, bid)
	if best, ok := l.personalBest[bidderID]; !ok || amount > best {
		l.personalBest[bidderID] = amount
	}

	return bid, nil
}

func (l *Ledger) validate(bidderID string, amount float64) error {
	if bidderID == "" {
		return fmt.Errorf("ledger: %w - missing bidder", biddingerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("ledger: %w - amount is not a finite number", biddingerrors.ErrInvalidBid)
	}
	if bidderID == l.sellerID {
		return fmt.Errorf("ledger: %w", biddingerrors.ErrSelfBid)
	}
	if amount <= l.startingPrice {
		return fmt.Errorf("ledger: %w - starting price is %.2f", biddingerrors.ErrBelowStartingPrice, l.startingPrice)
	}
	if best, ok := l.BestBid(); ok && amount <= best.Amount {
		return fmt.Errorf("ledger: %w - current best bid is %.2f", biddingerrors.ErrNotHigherThanCurrentBest, best.Amount)
	}
	return nil
}

// BestBid returns the top-ranked bid, if any
func (l *Ledger) BestBid() (models.Bid, bool) {
	if len(l.ranked) == 0 {
		return models.Bid{}, false
	}
	return l.ranked[0], true
}

// BestBidFor returns the highest amount the bidder has submitted
func (l *Ledger) BestBidFor(bidderID string) (float64, bool) {
	amount, ok := l.personalBest[bidderID]
	return amount, ok
}

// History returns a chronological copy of every accepted bid
func (l *Ledger) History() []models.Bid {
	return append([]models.Bid(nil), l.history...)
}

// Ranked returns a copy of every accepted bid ordered best first
func (l *Ledger) Ranked() []models.Bid {
	bids := l.History()
	sort.SliceStable(bids, func(i, j int) bool { return outranks(bids[i], bids[j]) })
	return bids
}

// Leaderboard returns bidders by personal best, highest first.
// A non-positive limit returns every bidder.
func (l *Ledger) Leaderboard(limit int) []models.BidderStanding {
	standings := make([]models.BidderStanding, 0, len(l.personalBest))
	for userID, amount := range l.personalBest {
		standings = append(standings, models.BidderStanding{UserID: userID, Amount: amount})
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Amount != standings[j].Amount {
			return standings[i].Amount > standings[j].Amount
		}
		return standings[i].UserID < standings[j].UserID
	})

	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}

// Len returns the number of accepted bids
func (l *Ledger) Len() int {
	return len(l.history)
}

// outranks reports whether a should be ranked ahead of b
func outranks(a, b models.Bid) bool {
	if a.Amount != b.Amount {
		return a.Amount > b.Amount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

// bidHeap implements heap.Interface with the best bid at index 0
type bidHeap []models.Bid

func (h bidHeap) Len() int           { return len(h) }
func (h bidHeap) Less(i, j int) bool { return outranks(h[i], h[j]) }
func (h bidHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *bidHeap) Push(x any) {
	*h = append(*h, x.(models.Bid))
}

func (h *bidHeap) Pop() any {
	old := *h
	n := len(old)
	bid := old[n-1]
	*h = old[:n-1]
	return bid
}
