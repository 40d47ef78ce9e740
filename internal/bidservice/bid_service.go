package bidservice

import (
	"fmt"

	"auction-exchange/internal/authservice"
	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
	"auction-exchange/internal/repository"
	"auction-exchange/utils"
)

// CreateBidInput carries the fields a supplier submits with a new bid.
type CreateBidInput struct {
	AuctionID       string
	BidAmount       float64
	ProposalDetails *string
}

// UpdateBidInput is a partial patch; nil fields are left untouched.
type UpdateBidInput struct {
	BidAmount       *float64
	ProposalDetails *string
	Status          *model.BidStatus
}

// BidService defines the business logic for supplier bids.
type BidService struct {
	repo repository.ExchangeDB
}

// NewBidService creates a new BidService instance.
func NewBidService(repo repository.ExchangeDB) *BidService {
	return &BidService{repo: repo}
}

// Create records a new bid against an open auction. Only suppliers may bid,
// and the target auction must exist and still be open.
func (s *BidService) Create(input CreateBidInput, caller authservice.Identity) (model.Bid, error) {
	if err := authservice.RequireRole(caller, model.UserTypeSupplier, exchangeerrors.ErrNotSupplier); err != nil {
		return model.Bid{}, fmt.Errorf("service: create bid: %w", err)
	}
	if input.BidAmount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", exchangeerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(input.AuctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: create bid: %w", err)
	}
	if auction.Status != model.AuctionStatusOpen {
		return model.Bid{}, fmt.Errorf("service: create bid for auction %s: %w", auction.AuctionID, exchangeerrors.ErrAuctionNotOpen)
	}

	bid := model.Bid{
		BidID:           utils.GenerateID(),
		AuctionID:       auction.AuctionID,
		SupplierUserID:  caller.UserID,
		BidAmount:       input.BidAmount,
		ProposalDetails: input.ProposalDetails,
		Status:          model.BidStatusSubmitted,
	}

	if err := s.repo.CreateBid(&bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: create bid by supplier %s: %w", caller.UserID, err)
	}
	return bid, nil
}

// Get returns one bid with its auction and supplier. Public.
func (s *BidService) Get(id string) (model.Bid, error) {
	bid, err := s.repo.GetBid(id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: get bid: %w", err)
	}
	return bid, nil
}

// ListByAuction returns all bids for one auction newest-first. Public.
func (s *BidService) ListByAuction(auctionID string) ([]model.Bid, error) {
	bids, err := s.repo.ListBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// ListBySupplier returns the caller's own bids newest-first.
func (s *BidService) ListBySupplier(caller authservice.Identity) ([]model.Bid, error) {
	bids, err := s.repo.ListBidsBySupplier(caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for supplier %s: %w", caller.UserID, err)
	}
	return bids, nil
}

// Update applies a patch to a bid. Who may change what:
//   - the submitting supplier may edit amount and proposal while the bid is
//     still submitted, and may withdraw it;
//   - the auction's owning client may accept or reject a submitted bid;
//     accepting also marks the auction awarded, in one transaction.
//
// A patch with no fields is rejected before any write.
func (s *BidService) Update(id string, patch UpdateBidInput, caller authservice.Identity) (model.Bid, error) {
	if patch.Status == nil && patch.BidAmount == nil && patch.ProposalDetails == nil {
		return model.Bid{}, fmt.Errorf("service: update bid %s: %w - empty patch", id, exchangeerrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetBid(id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: update bid: %w", err)
	}

	var awarded *model.Auction
	if patch.Status != nil {
		awarded, err = s.applyStatusChange(&bid, *patch.Status, caller)
		if err != nil {
			return model.Bid{}, fmt.Errorf("service: update bid %s: %w", id, err)
		}
	}

	if patch.BidAmount != nil || patch.ProposalDetails != nil {
		if err := authservice.RequireOwner(bid.SupplierUserID, caller); err != nil {
			return model.Bid{}, fmt.Errorf("service: update bid %s: %w", id, err)
		}
		if bid.Status != model.BidStatusSubmitted {
			return model.Bid{}, fmt.Errorf("service: update bid %s: %w", id, exchangeerrors.ErrBidNotEditable)
		}
		if patch.BidAmount != nil {
			if *patch.BidAmount <= 0 {
				return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", exchangeerrors.ErrInvalidInput)
			}
			bid.BidAmount = *patch.BidAmount
		}
		if patch.ProposalDetails != nil {
			bid.ProposalDetails = patch.ProposalDetails
		}
	}

	if awarded != nil {
		// award and acceptance land together or not at all
		if err := s.repo.AcceptBid(&bid, awarded); err != nil {
			return model.Bid{}, fmt.Errorf("service: update bid %s: %w", id, err)
		}
		bid.Auction = awarded
		return bid, nil
	}

	if err := s.repo.SaveBid(&bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: update bid %s: %w", id, err)
	}
	return bid, nil
}

// applyStatusChange enforces who may move a bid into which state. Only
// submitted bids transition; a withdrawn, accepted or rejected bid is final.
// When the change is an acceptance, the awarded auction is returned so the
// caller can persist both records in one transaction.
func (s *BidService) applyStatusChange(bid *model.Bid, status model.BidStatus, caller authservice.Identity) (*model.Auction, error) {
	if bid.Status != model.BidStatusSubmitted {
		return nil, exchangeerrors.ErrBidNotEditable
	}

	switch status {
	case model.BidStatusWithdrawn:
		if err := authservice.RequireOwner(bid.SupplierUserID, caller); err != nil {
			return nil, err
		}
	case model.BidStatusAccepted, model.BidStatusRejected:
		auction, err := s.repo.GetAuction(bid.AuctionID)
		if err != nil {
			return nil, err
		}
		if err := authservice.RequireOwner(auction.ClientUserID, caller); err != nil {
			return nil, err
		}
		if status == model.BidStatusAccepted {
			auction.Status = model.AuctionStatusAwarded
			bid.Status = status
			return &auction, nil
		}
	default:
		return nil, fmt.Errorf("%w - cannot set bid status %q", exchangeerrors.ErrInvalidInput, status)
	}

	bid.Status = status
	return nil, nil
}

// Delete removes a bid. Only the submitting supplier may delete it.
func (s *BidService) Delete(id string, caller authservice.Identity) error {
	bid, err := s.repo.GetBid(id)
	if err != nil {
		return fmt.Errorf("service: delete bid: %w", err)
	}

	if err := authservice.RequireOwner(bid.SupplierUserID, caller); err != nil {
		return fmt.Errorf("service: delete bid %s: %w", id, err)
	}

	if err := s.repo.DeleteBid(id); err != nil {
		return fmt.Errorf("service: delete bid %s: %w", id, err)
	}
	return nil
}
