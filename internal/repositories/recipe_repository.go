package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeapi/internal/models"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

// Create inserts the recipe and its tag/ingredient junction rows in one
// transaction.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recipes (id, user_id, title, time_minutes, price, link, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, query,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		recipe.TimeMinutes,
		recipe.Price,
		recipe.Link,
		recipe.Image,
	).Scan(&recipe.CreatedAt)
	if err != nil {
		return err
	}

	if err := insertRelations(ctx, tx, recipe); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update replaces the recipe row and rewrites both junction tables. Only
// rows owned by recipe.UserID are touched; a foreign or missing id yields
// ErrNotFound.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE recipes SET
			title = $3, time_minutes = $4, price = $5, link = $6, image = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := tx.Exec(ctx, query,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		recipe.TimeMinutes,
		recipe.Price,
		recipe.Link,
		recipe.Image,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipe.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
		return err
	}

	if err := insertRelations(ctx, tx, recipe); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertRelations(ctx context.Context, tx pgx.Tx, recipe *models.Recipe) error {
	for _, tagID := range recipe.TagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			recipe.ID, tagID)
		if err != nil {
			return err
		}
	}
	for _, ingredientID := range recipe.IngredientIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			recipe.ID, ingredientID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *RecipeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, link, image, created_at
		FROM recipes WHERE user_id = $1
		ORDER BY title DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var recipe models.Recipe
		err := rows.Scan(
			&recipe.ID,
			&recipe.UserID,
			&recipe.Title,
			&recipe.TimeMinutes,
			&recipe.Price,
			&recipe.Link,
			&recipe.Image,
			&recipe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		recipe.TagIDs = []uuid.UUID{}
		recipe.IngredientIDs = []uuid.UUID{}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.fillRelationIDs(ctx, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *RecipeRepository) fillRelationIDs(ctx context.Context, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]*models.Recipe, len(recipes))
	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		index[recipes[i].ID] = &recipes[i]
		ids[i] = recipes[i].ID
	}

	tagRows, err := r.pool.Query(ctx,
		`SELECT rt.recipe_id, rt.tag_id
		 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		 WHERE rt.recipe_id = ANY($1::uuid[])
		 ORDER BY t.name DESC, t.created_at DESC`,
		uuidStrings(ids))
	if err != nil {
		return err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var recipeID, tagID uuid.UUID
		if err := tagRows.Scan(&recipeID, &tagID); err != nil {
			return err
		}
		if recipe, ok := index[recipeID]; ok {
			recipe.TagIDs = append(recipe.TagIDs, tagID)
		}
	}
	if err := tagRows.Err(); err != nil {
		return err
	}

	ingredientRows, err := r.pool.Query(ctx,
		`SELECT ri.recipe_id, ri.ingredient_id
		 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
		 WHERE ri.recipe_id = ANY($1::uuid[])
		 ORDER BY i.name DESC, i.created_at DESC`,
		uuidStrings(ids))
	if err != nil {
		return err
	}
	defer ingredientRows.Close()
	for ingredientRows.Next() {
		var recipeID, ingredientID uuid.UUID
		if err := ingredientRows.Scan(&recipeID, &ingredientID); err != nil {
			return err
		}
		if recipe, ok := index[recipeID]; ok {
			recipe.IngredientIDs = append(recipe.IngredientIDs, ingredientID)
		}
	}
	return ingredientRows.Err()
}

// GetByIDAndUserID folds the ownership check into the lookup so a foreign
// recipe is indistinguishable from a missing one.
func (r *RecipeRepository) GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, link, image, created_at
		FROM recipes WHERE id = $1 AND user_id = $2
	`

	var recipe models.Recipe
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.TimeMinutes,
		&recipe.Price,
		&recipe.Link,
		&recipe.Image,
		&recipe.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	recipe.TagIDs = []uuid.UUID{}
	recipe.IngredientIDs = []uuid.UUID{}
	recipes := []models.Recipe{recipe}
	if err := r.fillRelationIDs(ctx, recipes); err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

// GetDetailByIDAndUserID returns the nested representation used by the
// retrieve endpoint.
func (r *RecipeRepository) GetDetailByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.RecipeDetail, error) {
	recipe, err := r.GetByIDAndUserID(ctx, id, userID)
	if err != nil || recipe == nil {
		return nil, err
	}

	detail := &models.RecipeDetail{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        []models.Tag{},
		Ingredients: []models.Ingredient{},
	}

	tagRows, err := r.pool.Query(ctx,
		`SELECT t.id, t.user_id, t.name, t.created_at
		 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		 WHERE rt.recipe_id = $1
		 ORDER BY t.name DESC, t.created_at DESC`,
		recipe.ID)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var tag models.Tag
		if err := tagRows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		detail.Tags = append(detail.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	ingredientRows, err := r.pool.Query(ctx,
		`SELECT i.id, i.user_id, i.name, i.created_at
		 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id
		 WHERE ri.recipe_id = $1
		 ORDER BY i.name DESC, i.created_at DESC`,
		recipe.ID)
	if err != nil {
		return nil, err
	}
	defer ingredientRows.Close()
	for ingredientRows.Next() {
		var ingredient models.Ingredient
		if err := ingredientRows.Scan(&ingredient.ID, &ingredient.UserID, &ingredient.Name, &ingredient.CreatedAt); err != nil {
			return nil, err
		}
		detail.Ingredients = append(detail.Ingredients, ingredient)
	}
	if err := ingredientRows.Err(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (r *RecipeRepository) DeleteByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *RecipeRepository) SetImage(ctx context.Context, id uuid.UUID, userID uuid.UUID, imagePath string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE recipes SET image = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, imagePath)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}
