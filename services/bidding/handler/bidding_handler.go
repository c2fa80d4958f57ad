package handler

//go:generate mockgen -destination=mock_bidding_handler.go -package=handler auction-engine/services/bidding/handler MarketplaceService

import (
	"errors"
	"net/http"
	"strconv"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type MarketplaceService interface {
	CreateAuction(userID string, req model.NewAuction) (model.AuctionView, error)
	GetAuction(auctionID string) (model.AuctionView, error)
	ActiveAuctions() []model.AuctionView
	Search(keyword string) []model.AuctionView
	AuctionsByUser(userID string) ([]model.AuctionView, error)
	PlaceBid(userID, auctionID string, amount float64) (model.Bid, error)
	BidHistory(auctionID string, ranked bool) ([]model.Bid, error)
	WinningBid(auctionID string) (model.Bid, error)
	TopBidders(auctionID string, limit int) ([]model.BidderStanding, error)
	MyBestBid(userID, auctionID string) (float64, error)
	EndAuction(auctionID string) (model.SettlementOutcome, error)
	SettleAuction(auctionID string) (model.SettlementOutcome, error)
}

type BiddingHandler struct {
	service         MarketplaceService
	topBiddersLimit int
}

func NewBiddingHandler(service MarketplaceService, topBiddersLimit int) *BiddingHandler {
	return &BiddingHandler{service: service, topBiddersLimit: topBiddersLimit}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	userID := helpers.CurrentUserID(c)

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(userID, auctionID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    userID,
		"amount":     bid.Amount,
	})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids[?order=amount]
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	ranked := c.Query("order") == "amount"

	bids, err := h.service.BidHistory(auctionID, ranked)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bid, err := h.service.WinningBid(auctionID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}

// GetLeaderboardHandler handles GET /auctions/:auction_id/leaderboard[?limit=n]
func (h *BiddingHandler) GetLeaderboardHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	limit := h.topBiddersLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, errors.New("limit must be a positive integer"), "invalid limit")
			return
		}
		limit = n
	}

	standings, err := h.service.TopBidders(auctionID, limit)
	if err != nil {
		helpers.RespondError(c, "GetLeaderboardHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, standings, "leaderboard retrieved successfully")
}

// GetMyBidHandler handles GET /auctions/:auction_id/bids/me
func (h *BiddingHandler) GetMyBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	userID := helpers.CurrentUserID(c)

	amount, err := h.service.MyBestBid(userID, auctionID)
	if err != nil {
		helpers.RespondError(c, "GetMyBidHandler", err, map[string]any{"auction_id": auctionID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.MyBidResponse{
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
	}, "best bid retrieved successfully")
}
