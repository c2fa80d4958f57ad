package models

import "time"

// User represents a marketplace participant
type User struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Balance    float64   `json:"balance"`
	BidIDs     []string  `json:"bid_ids"`
	OwnedItems []string  `json:"owned_items"`
	SoldItems  []string  `json:"sold_items"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile is the read model of a user together with marketplace activity
type Profile struct {
	User
	BidsPlaced      int `json:"bids_placed"`
	AuctionsCreated int `json:"auctions_created"`
}

// Item represents the lot being auctioned. It is fixed once its auction exists.
type Item struct {
	ItemID        string        `json:"item_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	StartingPrice float64       `json:"starting_price"`
	ReservePrice  float64       `json:"reserve_price"`
	SellerID      string        `json:"seller_id"`
	CreatedAt     time.Time     `json:"created_at"`
	Duration      time.Duration `json:"duration"`
}

// NewAuction holds the caller-supplied fields for creating an auction
type NewAuction struct {
	Name          string
	Description   string
	StartingPrice float64
	ReservePrice  float64
	Duration      time.Duration
}

// Bid represents a user's accepted bid on an auction.
// Seq is the arrival order within the auction and breaks timestamp ties.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	Seq       uint64    `json:"seq"`
}

// BidderStanding is one row of an auction leaderboard
type BidderStanding struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// AuctionState is the lifecycle state of an auction
type AuctionState string

const (
	AuctionOpen    AuctionState = "open"
	AuctionClosed  AuctionState = "closed"
	AuctionSettled AuctionState = "settled"
)

type OutcomeStatus string

const (
	OutcomeSold   OutcomeStatus = "sold"
	OutcomeUnsold OutcomeStatus = "unsold"
)

type UnsoldReason string

const (
	ReasonNoBids        UnsoldReason = "no_bids"
	ReasonReserveNotMet UnsoldReason = "reserve_not_met"
)

// SettlementOutcome is the final, cached result of an auction.
// WinningBid is set only when Status is sold; HighestBid is set whenever bids exist.
type SettlementOutcome struct {
	AuctionID  string        `json:"auction_id"`
	Status     OutcomeStatus `json:"status"`
	Reason     UnsoldReason  `json:"reason,omitempty"`
	WinningBid *Bid          `json:"winning_bid,omitempty"`
	HighestBid *Bid          `json:"highest_bid,omitempty"`
	SettledAt  time.Time     `json:"settled_at"`
}

// Sold reports whether the outcome transferred the item
func (o SettlementOutcome) Sold() bool {
	return o.Status == OutcomeSold
}

// AuctionView is a point-in-time snapshot of an auction for presentation
type AuctionView struct {
	Item         Item               `json:"item"`
	State        AuctionState       `json:"state"`
	Accepting    bool               `json:"accepting_bids"`
	CurrentPrice float64            `json:"current_price"`
	HighestBid   *Bid               `json:"highest_bid,omitempty"`
	BidCount     int                `json:"bid_count"`
	StartTime    time.Time          `json:"start_time"`
	EndTime      time.Time          `json:"end_time"`
	Remaining    time.Duration      `json:"remaining"`
	Outcome      *SettlementOutcome `json:"outcome,omitempty"`
}

// Event types published to live subscribers
const (
	EventBidAccepted    = "bid.accepted"
	EventAuctionSettled = "auction.settled"
)

// Event is a notification about an auction, fanned out to live subscribers
type Event struct {
	Type      string             `json:"type"`
	AuctionID string             `json:"auction_id"`
	Bid       *Bid               `json:"bid,omitempty"`
	Outcome   *SettlementOutcome `json:"outcome,omitempty"`
	At        time.Time          `json:"at"`
}
