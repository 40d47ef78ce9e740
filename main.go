package main

import (
	"auction-exchange/internal/auctionservice"
	"auction-exchange/internal/authservice"
	"auction-exchange/internal/bidservice"
	"auction-exchange/internal/config"
	"auction-exchange/internal/repository"
	"auction-exchange/internal/server"
	handler "auction-exchange/services/marketplace/handler"
	"auction-exchange/utils"
)

func main() {
	cfg := config.Load()

	repo, err := repository.Open(cfg.DSN)
	if err != nil {
		utils.Fatal("Failed to open database", map[string]any{"dsn": cfg.DSN, "error": err.Error()})
	}

	tokens := authservice.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := authservice.NewAuthService(repo, tokens)
	auctionSvc := auctionservice.NewAuctionService(repo)
	bidSvc := bidservice.NewBidService(repo)

	router := server.SetupRouter(
		handler.NewAuthHandler(authSvc),
		handler.NewAuctionHandler(auctionSvc),
		handler.NewBidHandler(bidSvc),
		tokens,
	)

	utils.Info("Starting exchange server", map[string]any{"port": cfg.Port})
	if err := router.Run(cfg.Port); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
