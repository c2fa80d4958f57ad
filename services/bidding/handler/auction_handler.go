package handler

import (
	"net/http"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// CreateAuctionHandler handles POST /auctions
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	view, err := h.service.CreateAuction(userID, model.NewAuction{
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		ReservePrice:  req.ReservePrice,
		Duration:      time.Duration(req.DurationMinutes) * time.Minute,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(view), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": view.Item.ItemID,
		"user_id":    userID,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	view, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(view), "auction retrieved successfully")
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *BiddingHandler) ListActiveAuctionsHandler(c *gin.Context) {
	views := h.service.ActiveAuctions()
	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(views), "active auctions retrieved successfully")
}

// SearchAuctionsHandler handles GET /auctions/search?q=keyword
func (h *BiddingHandler) SearchAuctionsHandler(c *gin.Context) {
	keyword := c.Query("q")
	views := h.service.Search(keyword)

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(views), "search completed successfully")
	helpers.LogSuccess("SearchAuctionsHandler", "search completed successfully", map[string]any{
		"keyword": keyword,
		"count":   len(views),
	})
}

// GetUserAuctionsHandler handles GET /users/:user_id/auctions
func (h *BiddingHandler) GetUserAuctionsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	views, err := h.service.AuctionsByUser(userID)
	if err != nil {
		helpers.RespondError(c, "GetUserAuctionsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(views), "auctions retrieved successfully")
}

// EndAuctionHandler handles POST /auctions/:auction_id/end
func (h *BiddingHandler) EndAuctionHandler(c *gin.Context) {
	h.respondOutcome(c, "EndAuctionHandler", h.service.EndAuction)
}

// SettleAuctionHandler handles POST /auctions/:auction_id/settle
func (h *BiddingHandler) SettleAuctionHandler(c *gin.Context) {
	h.respondOutcome(c, "SettleAuctionHandler", h.service.SettleAuction)
}

func (h *BiddingHandler) respondOutcome(c *gin.Context, handlerName string, op func(string) (model.SettlementOutcome, error)) {
	auctionID := c.Param("auction_id")

	outcome, err := op(auctionID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, outcome, "auction settled")
	helpers.LogSuccess(handlerName, "auction settled", map[string]any{
		"auction_id": auctionID,
		"status":     outcome.Status,
		"reason":     outcome.Reason,
	})
}
