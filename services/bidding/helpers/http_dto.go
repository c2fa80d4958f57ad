package helpers

import (
	"time"

	model "auction-engine/internal/models"
)

// Request/Response DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type AddBalanceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	StartingPrice   float64 `json:"starting_price" binding:"gte=0"`
	ReservePrice    float64 `json:"reserve_price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	Seq       uint64  `json:"seq"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID        string                   `json:"auction_id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	SellerID         string                   `json:"seller_id"`
	StartingPrice    float64                  `json:"starting_price"`
	ReservePrice     float64                  `json:"reserve_price"`
	State            model.AuctionState       `json:"state"`
	AcceptingBids    bool                     `json:"accepting_bids"`
	CurrentPrice     float64                  `json:"current_price"`
	HighestBid       *BidResponse             `json:"highest_bid,omitempty"`
	BidCount         int                      `json:"bid_count"`
	StartTime        string                   `json:"start_time"`
	EndTime          string                   `json:"end_time"`
	RemainingSeconds int64                    `json:"remaining_seconds"`
	Outcome          *model.SettlementOutcome `json:"outcome,omitempty"`
}

type MyBidResponse struct {
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
}

func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		Seq:       bid.Seq,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

func ToAuctionResponse(view model.AuctionView) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:        view.Item.ItemID,
		Name:             view.Item.Name,
		Description:      view.Item.Description,
		SellerID:         view.Item.SellerID,
		StartingPrice:    view.Item.StartingPrice,
		ReservePrice:     view.Item.ReservePrice,
		State:            view.State,
		AcceptingBids:    view.Accepting,
		CurrentPrice:     view.CurrentPrice,
		BidCount:         view.BidCount,
		StartTime:        view.StartTime.UTC().Format(time.RFC3339),
		EndTime:          view.EndTime.UTC().Format(time.RFC3339),
		RemainingSeconds: int64(view.Remaining / time.Second),
		Outcome:          view.Outcome,
	}
	if view.HighestBid != nil {
		bid := ToBidResponse(*view.HighestBid)
		resp.HighestBid = &bid
	}
	return resp
}

func ToAuctionResponses(views []model.AuctionView) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToAuctionResponse(v))
	}
	return out
}
