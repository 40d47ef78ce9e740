package repository

import (
	"errors"
	"fmt"

	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ExchangeDB defines the persistence interface for users, auctions and bids.
type ExchangeDB interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (model.User, error)
	GetUserByID(id string) (model.User, error)

	CreateAuction(auction *model.Auction) error
	ListAuctions() ([]model.Auction, error)
	ListAuctionsByClient(clientID string) ([]model.Auction, error)
	GetAuction(id string) (model.Auction, error)
	SaveAuction(auction *model.Auction) error
	DeleteAuction(id string) error

	CreateBid(bid *model.Bid) error
	GetBid(id string) (model.Bid, error)
	ListBidsByAuction(auctionID string) ([]model.Bid, error)
	ListBidsBySupplier(supplierID string) ([]model.Bid, error)
	SaveBid(bid *model.Bid) error
	AcceptBid(bid *model.Bid, auction *model.Auction) error
	DeleteBid(id string) error
}

// GormRepo is a GORM/SQLite implementation of ExchangeDB.
type GormRepo struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn and migrates the schema.
// TranslateError lets duplicate-key violations surface as gorm.ErrDuplicatedKey,
// making the unique index on users.email the authoritative guard.
func Open(dsn string) (*GormRepo, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: open %s: %w", dsn, err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Auction{}, &model.Bid{}); err != nil {
		return nil, fmt.Errorf("repository: migrate: %w", err)
	}

	return &GormRepo{db: db}, nil
}

// NewGormRepo wraps an already-open gorm connection. Used by tests.
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// CreateUser inserts a user record. Duplicate emails map to ErrEmailTaken.
func (r *GormRepo) CreateUser(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user %s: %w", user.Email, exchangeerrors.ErrEmailTaken)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// GetUserByEmail returns the user with the given email.
func (r *GormRepo) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user by email: %w", exchangeerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID returns the user with the given id.
func (r *GormRepo) GetUserByID(id string) (model.User, error) {
	var user model.User
	if err := r.db.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", id, exchangeerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

// CreateAuction inserts an auction record.
func (r *GormRepo) CreateAuction(auction *model.Auction) error {
	if err := r.db.Omit(clause.Associations).Create(auction).Error; err != nil {
		return fmt.Errorf("create auction: %w", err)
	}
	return nil
}

// ListAuctions returns all auctions newest-first with their owning clients.
func (r *GormRepo) ListAuctions() ([]model.Auction, error) {
	var auctions []model.Auction
	if err := r.db.Preload("Client").Order("created_at DESC").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

// ListAuctionsByClient returns one client's auctions newest-first.
func (r *GormRepo) ListAuctionsByClient(clientID string) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.Where("client_user_id = ?", clientID).Order("created_at DESC").Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("list auctions for client %s: %w", clientID, err)
	}
	return auctions, nil
}

// GetAuction returns one auction with its client, bids and bid suppliers.
func (r *GormRepo) GetAuction(id string) (model.Auction, error) {
	var auction model.Auction
	err := r.db.Preload("Client").Preload("Bids").Preload("Bids.Supplier").
		Where("auction_id = ?", id).First(&auction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Auction{}, fmt.Errorf("get auction %s: %w", id, exchangeerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	return auction, nil
}

// SaveAuction persists all fields of an existing auction. Associations are
// omitted so preloaded relations are never written back.
func (r *GormRepo) SaveAuction(auction *model.Auction) error {
	if err := r.db.Omit(clause.Associations).Save(auction).Error; err != nil {
		return fmt.Errorf("save auction %s: %w", auction.AuctionID, err)
	}
	return nil
}

// DeleteAuction removes an auction and its bids in one transaction, so no
// orphaned bids survive. Zero affected rows maps to ErrAuctionNotFound.
func (r *GormRepo) DeleteAuction(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("auction_id = ?", id).Delete(&model.Bid{}).Error; err != nil {
			return fmt.Errorf("delete bids for auction %s: %w", id, err)
		}
		res := tx.Where("auction_id = ?", id).Delete(&model.Auction{})
		if res.Error != nil {
			return fmt.Errorf("delete auction %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete auction %s: %w", id, exchangeerrors.ErrAuctionNotFound)
		}
		return nil
	})
}

// CreateBid inserts a bid record.
func (r *GormRepo) CreateBid(bid *model.Bid) error {
	if err := r.db.Omit(clause.Associations).Create(bid).Error; err != nil {
		return fmt.Errorf("create bid: %w", err)
	}
	return nil
}

// GetBid returns one bid with its auction and supplier.
func (r *GormRepo) GetBid(id string) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Preload("Auction").Preload("Supplier").Where("bid_id = ?", id).First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get bid %s: %w", id, exchangeerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, err)
	}
	return bid, nil
}

// ListBidsByAuction returns all bids for an auction newest-first with suppliers.
func (r *GormRepo) ListBidsByAuction(auctionID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Preload("Supplier").Where("auction_id = ?", auctionID).
		Order("created_at DESC").Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// ListBidsBySupplier returns one supplier's bids newest-first.
func (r *GormRepo) ListBidsBySupplier(supplierID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.Where("supplier_user_id = ?", supplierID).Order("created_at DESC").Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("list bids for supplier %s: %w", supplierID, err)
	}
	return bids, nil
}

// SaveBid persists all fields of an existing bid.
func (r *GormRepo) SaveBid(bid *model.Bid) error {
	if err := r.db.Omit(clause.Associations).Save(bid).Error; err != nil {
		return fmt.Errorf("save bid %s: %w", bid.BidID, err)
	}
	return nil
}

// AcceptBid persists an accepted bid together with its awarded auction in one
// transaction, so the award never lands without the accepted bid.
func (r *GormRepo) AcceptBid(bid *model.Bid, auction *model.Auction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(auction).Error; err != nil {
			return fmt.Errorf("award auction %s: %w", auction.AuctionID, err)
		}
		if err := tx.Omit(clause.Associations).Save(bid).Error; err != nil {
			return fmt.Errorf("accept bid %s: %w", bid.BidID, err)
		}
		return nil
	})
}

// DeleteBid removes a bid. Zero affected rows maps to ErrBidNotFound.
func (r *GormRepo) DeleteBid(id string) error {
	res := r.db.Where("bid_id = ?", id).Delete(&model.Bid{})
	if res.Error != nil {
		return fmt.Errorf("delete bid %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete bid %s: %w", id, exchangeerrors.ErrBidNotFound)
	}
	return nil
}
