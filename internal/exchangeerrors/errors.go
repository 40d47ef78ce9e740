package exchangeerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Authorization and business rule errors
var (
	ErrNotClient      = errors.New("only clients can create auctions")
	ErrNotSupplier    = errors.New("only suppliers can place bids")
	ErrNotOwner       = errors.New("caller does not own this resource")
	ErrAuctionNotOpen = errors.New("auction is not open for bidding")
	ErrBidNotEditable = errors.New("bid can no longer be modified")
	ErrInvalidInput   = errors.New("invalid input")
)
