package authservice

import (
	"fmt"
	"time"

	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller identity carried by a verified access token.
// It is threaded explicitly into service calls instead of living in
// framework-global request state.
type Identity struct {
	UserID   string         `json:"user_id"`
	Email    string         `json:"email"`
	UserType model.UserType `json:"user_type"`
}

// CallerContextKey is where the auth middleware stores the verified Identity
// in the gin request context.
const CallerContextKey = "caller"

// Claims is the signed token payload: subject is the user id, plus email and
// account type. Claims are trusted as long as the signature and expiry hold;
// there is no revocation list.
type Claims struct {
	Email    string         `json:"email"`
	UserType model.UserType `json:"type"`
	jwt.RegisteredClaims
}

// TokenVerifier verifies a bearer token and yields the caller identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given HMAC secret and
// token validity window.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user.
func (m *TokenManager) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    user.Email,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign for user %s: %w", user.UserID, err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (m *TokenManager) Verify(tokenStr string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("token: %w", exchangeerrors.ErrInvalidToken)
	}

	return Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		UserType: claims.UserType,
	}, nil
}
