package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeapi/internal/models"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(ctx context.Context, token *models.AuthToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	query := `
		INSERT INTO auth_tokens (id, user_id, key)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		token.ID,
		token.UserID,
		token.Key,
	).Scan(&token.CreatedAt)
}

func (r *TokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AuthToken, error) {
	query := `SELECT id, user_id, key, created_at FROM auth_tokens WHERE user_id = $1`

	var token models.AuthToken
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&token.ID,
		&token.UserID,
		&token.Key,
		&token.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &token, nil
}

// GetUserByKey resolves an opaque token key to its owning user.
func (r *TokenRepository) GetUserByKey(ctx context.Context, key string) (*models.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.password_hash, u.is_active, u.is_staff, u.is_superuser, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1
	`

	var user models.User
	err := r.pool.QueryRow(ctx, query, key).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
