package helpers

import "time"

// Request/Response DTOs
type RegisterRequest struct {
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required,min=8"`
	UserType    string         `json:"user_type" binding:"required,oneof=client supplier"`
	ProfileInfo map[string]any `json:"profile_info"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateAuctionRequest struct {
	Title       string         `json:"title" binding:"required,min=5"`
	Description string         `json:"description" binding:"required,min=10"`
	AuctionType string         `json:"auction_type" binding:"required,oneof=professional quick"`
	Details     map[string]any `json:"details"`
	Budget      *float64       `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *time.Time     `json:"deadline"`
}

type UpdateAuctionRequest struct {
	Title       *string        `json:"title" binding:"omitempty,min=5"`
	Description *string        `json:"description" binding:"omitempty,min=10"`
	AuctionType *string        `json:"auction_type" binding:"omitempty,oneof=professional quick"`
	Details     map[string]any `json:"details"`
	Budget      *float64       `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *time.Time     `json:"deadline"`
	Status      *string        `json:"status" binding:"omitempty,oneof=open closed awarded cancelled"`
}

type CreateBidRequest struct {
	AuctionID       string  `json:"auction_id" binding:"required,uuid"`
	BidAmount       float64 `json:"bid_amount" binding:"required,gt=0"`
	ProposalDetails *string `json:"proposal_details"`
}

type UpdateBidRequest struct {
	BidAmount       *float64 `json:"bid_amount" binding:"omitempty,gt=0"`
	ProposalDetails *string  `json:"proposal_details"`
	Status          *string  `json:"status" binding:"omitempty,oneof=submitted accepted rejected withdrawn"`
}
