package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-exchange/internal/auctionservice"
	"auction-exchange/internal/authservice"
	"auction-exchange/internal/bidservice"
	"auction-exchange/internal/repository"
	"auction-exchange/internal/server"
	"auction-exchange/services/marketplace/handler"
	"auction-exchange/services/marketplace/helpers"
	"auction-exchange/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testTokenSecret = "integration-test-secret"
	testTokenTTL    = time.Hour
)

// SetupTestRouter wires the full application against a private in-memory
// SQLite database. Each call gets its own database.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID())
	repo, err := repository.Open(dsn)
	require.NoError(t, err)

	tokens := authservice.NewTokenManager(testTokenSecret, testTokenTTL)

	authHandler := handler.NewAuthHandler(authservice.NewAuthService(repo, tokens))
	auctionHandler := handler.NewAuctionHandler(auctionservice.NewAuctionService(repo))
	bidHandler := handler.NewBidHandler(bidservice.NewBidService(repo))

	return server.SetupRouter(authHandler, auctionHandler, bidHandler, tokens)
}

// ExecuteRequest executes one HTTP request against the router. An empty token
// sends the request unauthenticated.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reqBody = raw
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and unmarshals the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, token string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, body, token)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// ResponseData extracts the envelope's data object.
func ResponseData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp)
	return data
}

// ResponseList extracts the envelope's data array.
func ResponseList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	list, ok := resp["data"].([]any)
	require.True(t, ok, "response data is not an array: %v", resp)
	return list
}

// RegisterAndLogin creates an account and returns its id and a bearer token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email, userType string) (userID, token string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/register", helpers.RegisterRequest{
		Email:    email,
		Password: "correct-horse",
		UserType: userType,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	userID = ResponseData(t, resp)["user_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", helpers.LoginRequest{
		Email:    email,
		Password: "correct-horse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token = ResponseData(t, resp)["access_token"].(string)
	require.NotEmpty(t, token)

	return userID, token
}

// CreateAuction posts a minimal valid auction and returns its id.
func CreateAuction(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", helpers.CreateAuctionRequest{
		Title:       title,
		Description: "integration test work request description",
		AuctionType: "quick",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	return ResponseData(t, resp)["auction_id"].(string)
}
