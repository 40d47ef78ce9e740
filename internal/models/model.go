package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserType distinguishes clients (who post auctions) from suppliers (who bid).
type UserType string

const (
	UserTypeClient   UserType = "client"
	UserTypeSupplier UserType = "supplier"
)

// AuctionType classifies a work request.
type AuctionType string

const (
	AuctionTypeProfessional AuctionType = "professional"
	AuctionTypeQuick        AuctionType = "quick"
)

// AuctionStatus is the lifecycle state of a work request.
type AuctionStatus string

const (
	AuctionStatusOpen      AuctionStatus = "open"
	AuctionStatusClosed    AuctionStatus = "closed"
	AuctionStatusAwarded   AuctionStatus = "awarded"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// BidStatus is the lifecycle state of a supplier's bid.
type BidStatus string

const (
	BidStatusSubmitted BidStatus = "submitted"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

// User represents a registered account. The password hash is never serialized.
type User struct {
	UserID       string            `gorm:"primaryKey;size:36" json:"user_id"`
	Email        string            `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string            `gorm:"not null" json:"-"`
	UserType     UserType          `gorm:"size:16;not null" json:"user_type"`
	ProfileInfo  datatypes.JSONMap `json:"profile_info,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	AuctionsCreated []Auction `gorm:"foreignKey:ClientUserID" json:"-"`
	BidsSubmitted   []Bid     `gorm:"foreignKey:SupplierUserID" json:"-"`
}

// Auction represents a client-authored work request open for supplier bids.
type Auction struct {
	AuctionID    string            `gorm:"primaryKey;size:36" json:"auction_id"`
	ClientUserID string            `gorm:"size:36;not null;index" json:"client_user_id"`
	Client       *User             `gorm:"foreignKey:ClientUserID" json:"client,omitempty"`
	AuctionType  AuctionType       `gorm:"size:16;not null" json:"auction_type"`
	Title        string            `gorm:"not null" json:"title"`
	Description  string            `gorm:"type:text;not null" json:"description"`
	Details      datatypes.JSONMap `json:"details,omitempty"`
	Budget       *float64          `json:"budget,omitempty"`
	Deadline     *time.Time        `json:"deadline,omitempty"`
	Status       AuctionStatus     `gorm:"size:16;not null;default:open" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Bids []Bid `gorm:"foreignKey:AuctionID" json:"bids,omitempty"`
}

// Bid represents a supplier's priced proposal against a specific auction.
type Bid struct {
	BidID           string    `gorm:"primaryKey;size:36" json:"bid_id"`
	AuctionID       string    `gorm:"size:36;not null;index" json:"auction_id"`
	Auction         *Auction  `gorm:"foreignKey:AuctionID" json:"auction,omitempty"`
	SupplierUserID  string    `gorm:"size:36;not null;index" json:"supplier_user_id"`
	Supplier        *User     `gorm:"foreignKey:SupplierUserID" json:"supplier,omitempty"`
	BidAmount       float64   `gorm:"not null" json:"bid_amount"`
	ProposalDetails *string   `gorm:"type:text" json:"proposal_details,omitempty"`
	Status          BidStatus `gorm:"size:16;not null;default:submitted" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
