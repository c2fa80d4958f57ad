package server

import (
	"auction-engine/internal/events"
	"auction-engine/internal/marketplace"
	handler "auction-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(directory *marketplace.Directory, hub *events.Hub, topBiddersLimit int) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CurrentUserMiddleware)

	biddingHandler := handler.NewBiddingHandler(directory, topBiddersLimit)
	userHandler := handler.NewUserHandler(directory)
	streamHandler := handler.NewStreamHandler(directory, hub)

	router.POST("/sessions", userHandler.LoginHandler)

	users := router.Group("/users")
	{
		users.POST("", userHandler.RegisterHandler)
		users.GET("/me", userHandler.ProfileHandler)
		users.POST("/me/balance", userHandler.AddBalanceHandler)
		users.GET("/:user_id/auctions", biddingHandler.GetUserAuctionsHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", biddingHandler.CreateAuctionHandler)
		auctions.GET("", biddingHandler.ListActiveAuctionsHandler)
		auctions.GET("/search", biddingHandler.SearchAuctionsHandler)
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", biddingHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsHandler)
		auctions.GET("/:auction_id/bids/me", biddingHandler.GetMyBidHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
		auctions.GET("/:auction_id/leaderboard", biddingHandler.GetLeaderboardHandler)
		auctions.POST("/:auction_id/end", biddingHandler.EndAuctionHandler)
		auctions.POST("/:auction_id/settle", biddingHandler.SettleAuctionHandler)
		auctions.GET("/:auction_id/stream", streamHandler.Stream)
	}

	return router
}
