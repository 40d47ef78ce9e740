package handler

import (
	"fmt"
	"net/http"

	"auction-exchange/internal/authservice"
	"auction-exchange/internal/bidservice"
	model "auction-exchange/internal/models"
	"auction-exchange/services/marketplace/helpers"
	"auction-exchange/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	Create(input bidservice.CreateBidInput, caller authservice.Identity) (model.Bid, error)
	Get(id string) (model.Bid, error)
	ListByAuction(auctionID string) ([]model.Bid, error)
	ListBySupplier(caller authservice.Identity) ([]model.Bid, error)
	Update(id string, patch bidservice.UpdateBidInput, caller authservice.Identity) (model.Bid, error)
	Delete(id string, caller authservice.Identity) error
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// CreateBidHandler handles POST /bids
func (h *BidHandler) CreateBidHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	bid, err := h.service.Create(bidservice.CreateBidInput{
		AuctionID:       req.AuctionID,
		BidAmount:       req.BidAmount,
		ProposalDetails: req.ProposalDetails,
	}, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateBidHandler: failed to record bid", map[string]any{
			"auction_id": req.AuctionID,
			"caller":     caller.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid recorded successfully")
	helpers.LogSuccess("CreateBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"caller":     caller.UserID,
		"amount":     bid.BidAmount,
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *BidHandler) GetBidHandler(c *gin.Context) {
	bidID, ok := helpers.UUIDParam(c, "bid_id")
	if !ok {
		return
	}

	bid, err := h.service.Get(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{
			"bid_id": bidID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid retrieved successfully")
}

// ListBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *BidHandler) ListBidsByAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.UUIDParam(c, "auction_id")
	if !ok {
		return
	}

	bids, err := h.service.ListByAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListBidsByAuctionHandler: error retrieving bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// ListOwnBidsHandler handles GET /me/bids
func (h *BidHandler) ListOwnBidsHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	bids, err := h.service.ListBySupplier(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOwnBidsHandler: error retrieving bids", map[string]any{
			"caller": caller.UserID,
			"error":  err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// UpdateBidHandler handles PATCH /bids/:bid_id
func (h *BidHandler) UpdateBidHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	bidID, ok := helpers.UUIDParam(c, "bid_id")
	if !ok {
		return
	}

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	patch := bidservice.UpdateBidInput{
		BidAmount:       req.BidAmount,
		ProposalDetails: req.ProposalDetails,
	}
	if req.Status != nil {
		status := model.BidStatus(*req.Status)
		patch.Status = &status
	}

	bid, err := h.service.Update(bidID, patch, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id": bidID,
			"caller": caller.UserID,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.BidID,
		"status": bid.Status,
		"caller": caller.UserID,
	})
}

// DeleteBidHandler handles DELETE /bids/:bid_id
func (h *BidHandler) DeleteBidHandler(c *gin.Context) {
	caller, ok := helpers.CallerFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("no verified caller"), "authentication required")
		return
	}

	bidID, ok := helpers.UUIDParam(c, "bid_id")
	if !ok {
		return
	}

	if err := h.service.Delete(bidID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteBidHandler: failed to delete bid", map[string]any{
			"bid_id": bidID,
			"caller": caller.UserID,
			"error":  err.Error(),
		})
		return
	}

	utils.NoContent(c)
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id": bidID,
		"caller": caller.UserID,
	})
}
