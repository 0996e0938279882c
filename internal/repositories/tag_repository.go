package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeapi/internal/models"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}

	query := `
		INSERT INTO tags (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		tag.ID,
		tag.UserID,
		tag.Name,
	).Scan(&tag.CreatedAt)
}

// ListByUserID returns the user's tags ordered by name descending, newest
// first among equal names.
func (r *TagRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Tag, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM tags WHERE user_id = $1
		ORDER BY name DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// CountByIDsAndUserID reports how many of the given ids exist and belong to
// the user. Callers compare against the number of distinct ids requested.
func (r *TagRepository) CountByIDsAndUserID(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM tags WHERE id = ANY($1::uuid[]) AND user_id = $2`

	var count int
	err := r.pool.QueryRow(ctx, query, uuidStrings(ids), userID).Scan(&count)
	return count, err
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
