package handlers_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"recipeapi/internal/models"
)

// In-memory repositories so the HTTP tests run the real handler, service
// and middleware stack without a database.

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return models.ErrEmailExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type memTokenRepo struct {
	userRepo *memUserRepo
	tokens   map[uuid.UUID]*models.AuthToken
}

func newMemTokenRepo(userRepo *memUserRepo) *memTokenRepo {
	return &memTokenRepo{userRepo: userRepo, tokens: make(map[uuid.UUID]*models.AuthToken)}
}

func (r *memTokenRepo) Create(_ context.Context, token *models.AuthToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	cp := *token
	r.tokens[token.UserID] = &cp
	return nil
}

func (r *memTokenRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.AuthToken, error) {
	tok, ok := r.tokens[userID]
	if !ok {
		return nil, nil
	}
	cp := *tok
	return &cp, nil
}

func (r *memTokenRepo) GetUserByKey(ctx context.Context, key string) (*models.User, error) {
	for userID, tok := range r.tokens {
		if tok.Key == key {
			return r.userRepo.GetByID(ctx, userID)
		}
	}
	return nil, nil
}

type memTagRepo struct {
	tags map[uuid.UUID]*models.Tag
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: make(map[uuid.UUID]*models.Tag)}
}

func (r *memTagRepo) Create(_ context.Context, tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	tag.CreatedAt = time.Now()
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *memTagRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Tag, error) {
	out := []models.Tag{}
	for _, tag := range r.tags {
		if tag.UserID == userID {
			out = append(out, *tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (r *memTagRepo) CountByIDsAndUserID(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	count := 0
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok && tag.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memIngredientRepo struct {
	ingredients map[uuid.UUID]*models.Ingredient
}

func newMemIngredientRepo() *memIngredientRepo {
	return &memIngredientRepo{ingredients: make(map[uuid.UUID]*models.Ingredient)}
}

func (r *memIngredientRepo) Create(_ context.Context, ingredient *models.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	ingredient.CreatedAt = time.Now()
	cp := *ingredient
	r.ingredients[ingredient.ID] = &cp
	return nil
}

func (r *memIngredientRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	out := []models.Ingredient{}
	for _, ing := range r.ingredients {
		if ing.UserID == userID {
			out = append(out, *ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (r *memIngredientRepo) CountByIDsAndUserID(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	count := 0
	for _, id := range ids {
		if ing, ok := r.ingredients[id]; ok && ing.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memRecipeRepo struct {
	tagRepo        *memTagRepo
	ingredientRepo *memIngredientRepo
	recipes        map[uuid.UUID]*models.Recipe
}

func newMemRecipeRepo(tagRepo *memTagRepo, ingredientRepo *memIngredientRepo) *memRecipeRepo {
	return &memRecipeRepo{
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		recipes:        make(map[uuid.UUID]*models.Recipe),
	}
}

func cloneRecipe(r *models.Recipe) *models.Recipe {
	cp := *r
	cp.TagIDs = append([]uuid.UUID{}, r.TagIDs...)
	cp.IngredientIDs = append([]uuid.UUID{}, r.IngredientIDs...)
	return &cp
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	recipe.CreatedAt = time.Now()
	r.recipes[recipe.ID] = cloneRecipe(recipe)
	return nil
}

func (r *memRecipeRepo) Update(_ context.Context, recipe *models.Recipe) error {
	existing, ok := r.recipes[recipe.ID]
	if !ok || existing.UserID != recipe.UserID {
		return models.ErrNotFound
	}
	recipe.CreatedAt = existing.CreatedAt
	r.recipes[recipe.ID] = cloneRecipe(recipe)
	return nil
}

func (r *memRecipeRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	out := []models.Recipe{}
	for _, recipe := range r.recipes {
		if recipe.UserID == userID {
			out = append(out, *cloneRecipe(recipe))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	return out, nil
}

func (r *memRecipeRepo) GetByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*models.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return nil, nil
	}
	return cloneRecipe(recipe), nil
}

func (r *memRecipeRepo) GetDetailByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.RecipeDetail, error) {
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
	for _, tagID := range recipe.TagIDs {
		if tag, ok := r.tagRepo.tags[tagID]; ok {
			detail.Tags = append(detail.Tags, *tag)
		}
	}
	for _, ingID := range recipe.IngredientIDs {
		if ing, ok := r.ingredientRepo.ingredients[ingID]; ok {
			detail.Ingredients = append(detail.Ingredients, *ing)
		}
	}
	return detail, nil
}

func (r *memRecipeRepo) DeleteByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return models.ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *memRecipeRepo) SetImage(_ context.Context, id uuid.UUID, userID uuid.UUID, imagePath string) error {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return models.ErrNotFound
	}
	recipe.Image = &imagePath
	return nil
}
