package authservice

import (
	"errors"
	"fmt"
	"strings"

	"auction-exchange/internal/exchangeerrors"
	model "auction-exchange/internal/models"
	"auction-exchange/internal/repository"
	"auction-exchange/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	UserType    model.UserType
	ProfileInfo map[string]any
}

// AuthService implements registration, login and password verification.
type AuthService struct {
	repo   repository.ExchangeDB
	tokens *TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(repo repository.ExchangeDB, tokens *TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register hashes the password and creates the account. The hash is computed
// here as an explicit step, never as a persistence-layer side effect. A
// duplicate email surfaces as ErrEmailTaken from the store's unique index.
func (s *AuthService) Register(input RegisterInput) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return model.User{}, fmt.Errorf("service: %w - missing email or password", exchangeerrors.ErrInvalidInput)
	}
	if input.UserType != model.UserTypeClient && input.UserType != model.UserTypeSupplier {
		return model.User{}, fmt.Errorf("service: %w - unknown user type %q", exchangeerrors.ErrInvalidInput, input.UserType)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("service: hash password: %w", err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Email:        email,
		PasswordHash: string(hash),
		UserType:     input.UserType,
		ProfileInfo:  datatypes.JSONMap(input.ProfileInfo),
	}

	if err := s.repo.CreateUser(&user); err != nil {
		return model.User{}, fmt.Errorf("service: register %s: %w", email, err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password return the same error, so accounts cannot be enumerated.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, exchangeerrors.ErrUserNotFound) {
			return "", fmt.Errorf("service: login: %w", exchangeerrors.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("service: login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("service: login: %w", exchangeerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("service: login %s: %w", user.UserID, err)
	}
	return token, nil
}

// Authenticate verifies a bearer token and returns the caller identity.
func (s *AuthService) Authenticate(token string) (Identity, error) {
	return s.tokens.Verify(token)
}
