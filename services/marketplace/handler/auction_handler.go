package handler

import (
	"fmt"
	"net/http"

	"auction-exchange/internal/auctionservice"
	"auction-exchange/internal/authservice"
	model "auction-exchange/internal/models"
	"auction-exchange/services/marketplace/helpers"
	"auction-exchange/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Create(input auctionservice.CreateAuctionInput, caller authservice.Identity) (model.Auction, error)
	List() ([]model.Auction, error)
	ListByClient(caller authservice.Identity) ([]model.Auction, error)
	Get(id string) (model.Auction, error)
	Update(id string, patch auctionservice.UpdateAuctionInput, caller authservice.Identity) (model.Auction, error)
	Delete(id string, caller authservice.Identity) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.Create(auctionservice.CreateAuctionInput{
		AuctionType: model.AuctionType(req.AuctionType),
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"caller": caller.UserID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"client_id":  auction.ClientUserID,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.List()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// ListOwnAuctionsHandler handles GET /me/auctions
func (h *AuctionHandler) ListOwnAuctionsHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	auctions, err := h.service.ListByClient(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOwnAuctionsHandler: error listing auctions", map[string]any{
			"caller": caller.UserID,
			"error":  err.Error(),
		})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.UUIDParam(c, "auction_id")
	if !ok {
		return
	}

	auction, err := h.service.Get(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// UpdateAuctionHandler handles PATCH /auctions/:auction_id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	auctionID, ok := helpers.UUIDParam(c, "auction_id")
	if !ok {
		return
	}

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	patch := auctionservice.UpdateAuctionInput{
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}
	if req.AuctionType != nil {
		auctionType := model.AuctionType(*req.AuctionType)
		patch.AuctionType = &auctionType
	}
	if req.Status != nil {
		status := model.AuctionStatus(*req.Status)
		patch.Status = &status
	}

	auction, err := h.service.Update(auctionID, patch, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: failed to update auction", map[string]any{
			"auction_id": auctionID,
			"caller":     caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"caller":     caller.UserID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	auctionID, ok := helpers.UUIDParam(c, "auction_id")
	if !ok {
		return
	}

	if err := h.service.Delete(auctionID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: failed to delete auction", map[string]any{
			"auction_id": auctionID,
			"caller":     caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.NoContent(c)
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
		"caller":     caller.UserID,
	})
}
