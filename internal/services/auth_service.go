package services

import (
	"context"

	"github.com/google/uuid"

	"recipeapi/internal/models"
	"recipeapi/internal/utils"
)

// TokenRepository stores opaque bearer tokens, one per user.
type TokenRepository interface {
	Create(ctx context.Context, token *models.AuthToken) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AuthToken, error)
	GetUserByKey(ctx context.Context, key string) (*models.User, error)
}

type AuthService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
}

func NewAuthService(userRepo UserRepository, tokenRepo TokenRepository) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo}
}

// IssueToken validates credentials and returns the user's bearer token,
// creating one on first use. Every failure reports the same
// ErrInvalidCredentials so callers cannot probe for existing accounts.
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (*models.AuthToken, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if token != nil {
		return token, nil
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	token = &models.AuthToken{UserID: user.ID, Key: key}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Resolve maps a bearer key to its account. Unknown and missing keys are
// indistinguishable.
func (s *AuthService) Resolve(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.tokenRepo.GetUserByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}
