package server

import (
	"auction-exchange/internal/authservice"
	handler "auction-exchange/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	authHandler *handler.AuthHandler,
	auctionHandler *handler.AuctionHandler,
	bidHandler *handler.BidHandler,
	verifier authservice.TokenVerifier,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authRequired := AuthMiddleware(verifier)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.RegisterHandler)
		auth.POST("/login", authHandler.LoginHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", bidHandler.ListBidsByAuctionHandler)

		auctions.POST("", authRequired, auctionHandler.CreateAuctionHandler)
		auctions.PATCH("/:auction_id", authRequired, auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:auction_id", authRequired, auctionHandler.DeleteAuctionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("/:bid_id", bidHandler.GetBidHandler)

		bids.POST("", authRequired, bidHandler.CreateBidHandler)
		bids.PATCH("/:bid_id", authRequired, bidHandler.UpdateBidHandler)
		bids.DELETE("/:bid_id", authRequired, bidHandler.DeleteBidHandler)
	}

	me := router.Group("/me", authRequired)
	{
		me.GET("/auctions", auctionHandler.ListOwnAuctionsHandler)
		me.GET("/bids", bidHandler.ListOwnBidsHandler)
	}

	return router
}
