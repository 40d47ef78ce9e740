package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-exchange/internal/authservice"
	"auction-exchange/internal/exchangeerrors"
	"auction-exchange/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, exchangeerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, exchangeerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, exchangeerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, exchangeerrors.ErrNotClient),
		errors.Is(err, exchangeerrors.ErrNotSupplier),
		errors.Is(err, exchangeerrors.ErrNotOwner):
		return http.StatusForbidden, "not allowed"
	case errors.Is(err, exchangeerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, exchangeerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, exchangeerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, exchangeerrors.ErrAuctionNotOpen):
		return http.StatusConflict, "auction is not open for bidding"
	case errors.Is(err, exchangeerrors.ErrBidNotEditable):
		return http.StatusConflict, "bid can no longer be modified"
	case errors.Is(err, exchangeerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// CallerFromContext returns the verified identity stored by the auth middleware.
func CallerFromContext(c *gin.Context) (authservice.Identity, bool) {
	value, exists := c.Get(authservice.CallerContextKey)
	if !exists {
		return authservice.Identity{}, false
	}
	caller, ok := value.(authservice.Identity)
	return caller, ok
}

// UUIDParam validates a UUID-shaped path parameter, responding 400 itself
// when the value is malformed.
func UUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !utils.IsValidID(id) {
		err := fmt.Errorf("%w - %s must be a UUID", exchangeerrors.ErrInvalidInput, name)
		utils.JSONError(c, http.StatusBadRequest, err, "invalid identifier")
		return "", false
	}
	return id, true
}
