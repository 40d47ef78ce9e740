package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-exchange/internal/auctionservice"
	"auction-exchange/internal/authservice"
	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
	"auction-exchange/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	clientIdentity   = authservice.Identity{UserID: uuid.NewString(), Email: "client@example.com", UserType: model.UserTypeClient}
	supplierIdentity = authservice.Identity{UserID: uuid.NewString(), Email: "supplier@example.com", UserType: model.UserTypeSupplier}
)

// asCaller stands in for the JWT middleware in handler tests.
func asCaller(caller authservice.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authservice.CallerContextKey, caller)
		c.Next()
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	budget := 100000.50

	tests := []struct {
		name           string
		requestBody    any
		caller         *authservice.Identity
		mockSetup      func(mockService *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_with_budget_and_deadline",
			requestBody: helpers.CreateAuctionRequest{
				Title:       "Office renovation",
				Description: "Full renovation of a 200sqm office floor",
				AuctionType: "professional",
				Budget:      &budget,
				Deadline:    &deadline,
			},
			caller: &clientIdentity,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Create(gomock.Any(), clientIdentity).
					DoAndReturn(func(input auctionservice.CreateAuctionInput, caller authservice.Identity) (model.Auction, error) {
						require.Equal(t, 100000.50, *input.Budget)
						require.True(t, deadline.Equal(*input.Deadline))
						return model.Auction{
							AuctionID:    uuid.NewString(),
							ClientUserID: caller.UserID,
							AuctionType:  input.AuctionType,
							Title:        input.Title,
							Description:  input.Description,
							Budget:       input.Budget,
							Deadline:     input.Deadline,
							Status:       model.AuctionStatusOpen,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "Office renovation", data["title"])
				require.Equal(t, "open", data["status"])
				require.Equal(t, 100000.50, data["budget"])
				parsed, err := time.Parse(time.RFC3339, data["deadline"].(string))
				require.NoError(t, err)
				require.True(t, deadline.Equal(parsed))
			},
		},
		{
			name: "supplier_is_forbidden",
			requestBody: helpers.CreateAuctionRequest{
				Title:       "Office renovation",
				Description: "Full renovation of a 200sqm office floor",
				AuctionType: "professional",
			},
			caller: &supplierIdentity,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Create(gomock.Any(), supplierIdentity).
					Return(model.Auction{}, exchangeerrors.ErrNotClient)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not allowed",
		},
		{
			name: "title_too_short",
			requestBody: helpers.CreateAuctionRequest{
				Title:       "Hi",
				Description: "Full renovation of a 200sqm office floor",
				AuctionType: "professional",
			},
			caller:         &clientIdentity,
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "unauthenticated",
			requestBody: helpers.CreateAuctionRequest{
				Title:       "Office renovation",
				Description: "Full renovation of a 200sqm office floor",
				AuctionType: "professional",
			},
			caller:         nil,
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			handler := NewAuctionHandler(mockService)
			tc.mockSetup(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			if tc.caller != nil {
				router.POST("/auctions", asCaller(*tc.caller), handler.CreateAuctionHandler)
			} else {
				router.POST("/auctions", handler.CreateAuctionHandler)
			}

			req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetAuctionHandler
func TestGetAuctionHandler(t *testing.T) {
	auctionID := uuid.NewString()

	tests := []struct {
		name           string
		pathID         string
		mockSetup      func(mockService *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success",
			pathID: auctionID,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Get(auctionID).
					Return(model.Auction{AuctionID: auctionID, Title: "Office renovation"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction retrieved successfully",
		},
		{
			name:           "malformed_id",
			pathID:         "not-a-uuid",
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid identifier",
		},
		{
			name:   "not_found",
			pathID: auctionID,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Get(auctionID).
					Return(model.Auction{}, exchangeerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			handler := NewAuctionHandler(mockService)
			tc.mockSetup(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/auctions/:auction_id", handler.GetAuctionHandler)

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+tc.pathID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	t.Run("returns_all_auctions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockAuctionServiceInterface(ctrl)
		handler := NewAuctionHandler(mockService)
		mockService.EXPECT().List().Return([]model.Auction{
			{AuctionID: uuid.NewString(), Title: "Office renovation"},
			{AuctionID: uuid.NewString(), Title: "Garden landscaping"},
		}, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/auctions", handler.ListAuctionsHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auctions", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("empty_store_yields_empty_array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockAuctionServiceInterface(ctrl)
		handler := NewAuctionHandler(mockService)
		mockService.EXPECT().List().Return(nil, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/auctions", handler.ListAuctionsHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auctions", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// nil slices must still serialize as [] and not null
		require.NotNil(t, resp["data"])
		require.Len(t, resp["data"].([]any), 0)
	})
}

// Test UpdateAuctionHandler
func TestUpdateAuctionHandler(t *testing.T) {
	auctionID := uuid.NewString()
	newTitle := "Office renovation v2"
	closed := "closed"

	tests := []struct {
		name           string
		requestBody    any
		caller         authservice.Identity
		mockSetup      func(mockService *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "owner_updates_title_and_status",
			requestBody: helpers.UpdateAuctionRequest{Title: &newTitle, Status: &closed},
			caller:      clientIdentity,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Update(auctionID, gomock.Any(), clientIdentity).
					DoAndReturn(func(id string, patch auctionservice.UpdateAuctionInput, caller authservice.Identity) (model.Auction, error) {
						require.Equal(t, "Office renovation v2", *patch.Title)
						require.Equal(t, model.AuctionStatusClosed, *patch.Status)
						return model.Auction{AuctionID: id, Title: *patch.Title, Status: *patch.Status}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction updated successfully",
		},
		{
			name:        "non_owner_is_forbidden",
			requestBody: helpers.UpdateAuctionRequest{Title: &newTitle},
			caller:      supplierIdentity,
			mockSetup: func(mockService *MockAuctionServiceInterface) {
				mockService.EXPECT().
					Update(auctionID, gomock.Any(), supplierIdentity).
					Return(model.Auction{}, exchangeerrors.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not allowed",
		},
		{
			name:           "unknown_status_value",
			requestBody:    map[string]any{"status": "paused"},
			caller:         clientIdentity,
			mockSetup:      func(mockService *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockAuctionServiceInterface(ctrl)
			handler := NewAuctionHandler(mockService)
			tc.mockSetup(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.PATCH("/auctions/:auction_id", asCaller(tc.caller), handler.UpdateAuctionHandler)

			req := httptest.NewRequest(http.MethodPatch, "/auctions/"+auctionID, bytes.NewReader(marshalBody(t, tc.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test DeleteAuctionHandler
func TestDeleteAuctionHandler(t *testing.T) {
	auctionID := uuid.NewString()

	t.Run("owner_deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockAuctionServiceInterface(ctrl)
		handler := NewAuctionHandler(mockService)
		mockService.EXPECT().Delete(auctionID, clientIdentity).Return(nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.DELETE("/auctions/:auction_id", asCaller(clientIdentity), handler.DeleteAuctionHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/auctions/"+auctionID, nil))

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Empty(t, w.Body.Bytes())
	})

	t.Run("missing_auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockAuctionServiceInterface(ctrl)
		handler := NewAuctionHandler(mockService)
		mockService.EXPECT().Delete(auctionID, clientIdentity).Return(exchangeerrors.ErrAuctionNotFound)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.DELETE("/auctions/:auction_id", asCaller(clientIdentity), handler.DeleteAuctionHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/auctions/"+auctionID, nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test ListOwnAuctionsHandler
func TestListOwnAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)
	mockService.EXPECT().
		ListByClient(clientIdentity).
		Return([]model.Auction{{AuctionID: uuid.NewString(), ClientUserID: clientIdentity.UserID}}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me/auctions", asCaller(clientIdentity), handler.ListOwnAuctionsHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me/auctions", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	require.Equal(t, clientIdentity.UserID, data[0].(map[string]any)["client_user_id"])
}
