package auctionservice

import (
	"testing"
	"time"

	"auction-exchange/internal/authservice"
	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
	"auction-exchange/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var (
	clientCaller   = authservice.Identity{UserID: "client-1", Email: "client@example.com", UserType: model.UserTypeClient}
	supplierCaller = authservice.Identity{UserID: "supplier-1", Email: "supplier@example.com", UserType: model.UserTypeSupplier}
	otherClient    = authservice.Identity{UserID: "client-2", Email: "other@example.com", UserType: model.UserTypeClient}
)

func newService(t *testing.T) (*AuctionService, *repository.MockExchangeDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := repository.NewMockExchangeDB(ctrl)
	return NewAuctionService(mockRepo), mockRepo
}

// Tests Create
func TestAuctionService_Create(t *testing.T) {
	budget := 100000.50
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	input := CreateAuctionInput{
		AuctionType: model.AuctionTypeProfessional,
		Title:       "Office renovation",
		Description: "Full renovation of a two-floor office",
		Budget:      &budget,
		Deadline:    &deadline,
	}

	tests := []struct {
		name          string
		caller        authservice.Identity
		mockSetup     func(mockRepo *repository.MockExchangeDB)
		expectedError error
	}{
		{
			name:   "client_creates_open_auction",
			caller: clientCaller,
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetUserByID("client-1").
					Return(model.User{UserID: "client-1", Email: "client@example.com", UserType: model.UserTypeClient}, nil)
				mockRepo.EXPECT().CreateAuction(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "supplier_is_forbidden",
			caller:        supplierCaller,
			mockSetup:     func(mockRepo *repository.MockExchangeDB) {},
			expectedError: exchangeerrors.ErrNotClient,
		},
		{
			name:   "stale_token_for_deleted_user",
			caller: clientCaller,
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetUserByID("client-1").
					Return(model.User{}, exchangeerrors.ErrUserNotFound)
			},
			expectedError: exchangeerrors.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo := newService(t)
			tc.mockSetup(mockRepo)

			auction, err := service.Create(input, tc.caller)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, auction.AuctionID)
			require.Equal(t, "client-1", auction.ClientUserID)
			require.Equal(t, model.AuctionStatusOpen, auction.Status)
			require.Equal(t, &budget, auction.Budget)
			require.Equal(t, &deadline, auction.Deadline)
			require.NotNil(t, auction.Client)
		})
	}
}

// Tests Update
func TestAuctionService_Update(t *testing.T) {
	stored := model.Auction{
		AuctionID:    "auction-1",
		ClientUserID: "client-1",
		AuctionType:  model.AuctionTypeQuick,
		Title:        "Original title",
		Description:  "Original description",
		Status:       model.AuctionStatusOpen,
	}

	newTitle := "Updated title"
	closed := model.AuctionStatusClosed

	tests := []struct {
		name          string
		caller        authservice.Identity
		patch         UpdateAuctionInput
		mockSetup     func(mockRepo *repository.MockExchangeDB)
		expectedError error
		validate      func(t *testing.T, auction model.Auction)
	}{
		{
			name:   "owner_merges_patch",
			caller: clientCaller,
			patch:  UpdateAuctionInput{Title: &newTitle, Status: &closed},
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").Return(stored, nil)
				mockRepo.EXPECT().SaveAuction(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, auction model.Auction) {
				require.Equal(t, "Updated title", auction.Title)
				require.Equal(t, model.AuctionStatusClosed, auction.Status)
				// untouched fields survive the merge
				require.Equal(t, "Original description", auction.Description)
				require.Equal(t, model.AuctionTypeQuick, auction.AuctionType)
			},
		},
		{
			name:   "non_owner_is_forbidden",
			caller: otherClient,
			patch:  UpdateAuctionInput{Title: &newTitle},
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").Return(stored, nil)
			},
			expectedError: exchangeerrors.ErrNotOwner,
		},
		{
			name:   "missing_auction",
			caller: clientCaller,
			patch:  UpdateAuctionInput{Title: &newTitle},
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").
					Return(model.Auction{}, exchangeerrors.ErrAuctionNotFound)
			},
			expectedError: exchangeerrors.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo := newService(t)
			tc.mockSetup(mockRepo)

			auction, err := service.Update("auction-1", tc.patch, tc.caller)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			tc.validate(t, auction)
		})
	}
}

// Tests Delete
func TestAuctionService_Delete(t *testing.T) {
	stored := model.Auction{AuctionID: "auction-1", ClientUserID: "client-1"}

	tests := []struct {
		name          string
		caller        authservice.Identity
		mockSetup     func(mockRepo *repository.MockExchangeDB)
		expectedError error
	}{
		{
			name:   "owner_deletes",
			caller: clientCaller,
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").Return(stored, nil)
				mockRepo.EXPECT().DeleteAuction("auction-1").Return(nil)
			},
		},
		{
			name:   "non_owner_is_forbidden",
			caller: supplierCaller,
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").Return(stored, nil)
			},
			expectedError: exchangeerrors.ErrNotOwner,
		},
		{
			name:   "concurrent_delete_race",
			caller: clientCaller,
			mockSetup: func(mockRepo *repository.MockExchangeDB) {
				mockRepo.EXPECT().GetAuction("auction-1").Return(stored, nil)
				mockRepo.EXPECT().DeleteAuction("auction-1").Return(exchangeerrors.ErrAuctionNotFound)
			},
			expectedError: exchangeerrors.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service, mockRepo := newService(t)
			tc.mockSetup(mockRepo)

			err := service.Delete("auction-1", tc.caller)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Tests List / ListByClient / Get passthrough
func TestAuctionService_Reads(t *testing.T) {
	service, mockRepo := newService(t)

	listed := []model.Auction{{AuctionID: "a2"}, {AuctionID: "a1"}}
	mockRepo.EXPECT().ListAuctions().Return(listed, nil)
	mockRepo.EXPECT().ListAuctionsByClient("client-1").Return(listed[:1], nil)
	mockRepo.EXPECT().GetAuction("a1").Return(model.Auction{AuctionID: "a1"}, nil)

	all, err := service.List()
	require.NoError(t, err)
	require.Equal(t, listed, all)

	own, err := service.ListByClient(clientCaller)
	require.NoError(t, err)
	require.Len(t, own, 1)

	one, err := service.Get("a1")
	require.NoError(t, err)
	require.Equal(t, "a1", one.AuctionID)
}
