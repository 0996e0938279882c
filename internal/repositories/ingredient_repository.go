package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeapi/internal/models"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}

	query := `
		INSERT INTO ingredients (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		ingredient.ID,
		ingredient.UserID,
		ingredient.Name,
	).Scan(&ingredient.CreatedAt)
}

func (r *IngredientRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM ingredients WHERE user_id = $1
		ORDER BY name DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var ingredient models.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name, &ingredient.CreatedAt); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, rows.Err()
}

func (r *IngredientRepository) CountByIDsAndUserID(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM ingredients WHERE id = ANY($1::uuid[]) AND user_id = $2`

	var count int
	err := r.pool.QueryRow(ctx, query, uuidStrings(ids), userID).Scan(&count)
	return count, err
}
