package auctionservice

import (
	"fmt"
	"time"

	"auction-exchange/internal/authservice"
	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
	"auction-exchange/internal/repository"
	"auction-exchange/utils"

	"gorm.io/datatypes"
)

// CreateAuctionInput carries the fields a client supplies for a new auction.
type CreateAuctionInput struct {
	AuctionType model.AuctionType
	Title       string
	Description string
	Details     map[string]any
	Budget      *float64
	Deadline    *time.Time
}

// UpdateAuctionInput is a partial patch; nil fields are left untouched.
type UpdateAuctionInput struct {
	AuctionType *model.AuctionType
	Title       *string
	Description *string
	Details     map[string]any
	Budget      *float64
	Deadline    *time.Time
	Status      *model.AuctionStatus
}

// AuctionService defines the business logic for client work requests.
type AuctionService struct {
	repo repository.ExchangeDB
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.ExchangeDB) *AuctionService {
	return &AuctionService{repo: repo}
}

// Create persists a new open auction owned by the caller. Only clients may
// create auctions, and the caller must still resolve to a stored user.
func (s *AuctionService) Create(input CreateAuctionInput, caller authservice.Identity) (model.Auction, error) {
	if err := authservice.RequireRole(caller, model.UserTypeClient, exchangeerrors.ErrNotClient); err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}

	client, err := s.repo.GetUserByID(caller.UserID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction: resolve caller: %w", err)
	}

	auction := model.Auction{
		AuctionID:    utils.GenerateID(),
		ClientUserID: client.UserID,
		AuctionType:  input.AuctionType,
		Title:        input.Title,
		Description:  input.Description,
		Details:      datatypes.JSONMap(input.Details),
		Budget:       input.Budget,
		Deadline:     input.Deadline,
		Status:       model.AuctionStatusOpen,
	}

	if err := s.repo.CreateAuction(&auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction for client %s: %w", client.UserID, err)
	}

	auction.Client = &client
	return auction, nil
}

// List returns all auctions newest-first with their owners. Public.
func (s *AuctionService) List() ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: list auctions: %w", err)
	}
	return auctions, nil
}

// ListByClient returns the caller's own auctions newest-first.
func (s *AuctionService) ListByClient(caller authservice.Identity) ([]model.Auction, error) {
	auctions, err := s.repo.ListAuctionsByClient(caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: list auctions for client %s: %w", caller.UserID, err)
	}
	return auctions, nil
}

// Get returns one auction with owner, bids and bid suppliers. Public.
func (s *AuctionService) Get(id string) (model.Auction, error) {
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: get auction: %w", err)
	}
	return auction, nil
}

// Update merges the patch into the auction and persists it. Owner only.
func (s *AuctionService) Update(id string, patch UpdateAuctionInput, caller authservice.Identity) (model.Auction, error) {
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: update auction: %w", err)
	}

	if err := authservice.RequireOwner(auction.ClientUserID, caller); err != nil {
		return model.Auction{}, fmt.Errorf("service: update auction %s: %w", id, err)
	}

	if patch.AuctionType != nil {
		auction.AuctionType = *patch.AuctionType
	}
	if patch.Title != nil {
		auction.Title = *patch.Title
	}
	if patch.Description != nil {
		auction.Description = *patch.Description
	}
	if patch.Details != nil {
		auction.Details = datatypes.JSONMap(patch.Details)
	}
	if patch.Budget != nil {
		auction.Budget = patch.Budget
	}
	if patch.Deadline != nil {
		auction.Deadline = patch.Deadline
	}
	if patch.Status != nil {
		auction.Status = *patch.Status
	}

	if err := s.repo.SaveAuction(&auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: update auction %s: %w", id, err)
	}
	return auction, nil
}

// Delete removes the auction together with its bids. Owner only.
func (s *AuctionService) Delete(id string, caller authservice.Identity) error {
	auction, err := s.repo.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: delete auction: %w", err)
	}

	if err := authservice.RequireOwner(auction.ClientUserID, caller); err != nil {
		return fmt.Errorf("service: delete auction %s: %w", id, err)
	}

	if err := s.repo.DeleteAuction(id); err != nil {
		return fmt.Errorf("service: delete auction %s: %w", id, err)
	}
	return nil
}
