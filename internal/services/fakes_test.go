package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"recipeapi/internal/models"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
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

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type fakeTokenRepo struct {
	userRepo *fakeUserRepo
	tokens   map[uuid.UUID]*models.AuthToken
}

func newFakeTokenRepo(userRepo *fakeUserRepo) *fakeTokenRepo {
	return &fakeTokenRepo{userRepo: userRepo, tokens: make(map[uuid.UUID]*models.AuthToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *models.AuthToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	cp := *token
	r.tokens[token.UserID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.AuthToken, error) {
	tok, ok := r.tokens[userID]
	if !ok {
		return nil, nil
	}
	cp := *tok
	return &cp, nil
}

func (r *fakeTokenRepo) GetUserByKey(ctx context.Context, key string) (*models.User, error) {
	for userID, tok := range r.tokens {
		if tok.Key == key {
			return r.userRepo.GetByID(ctx, userID)
		}
	}
	return nil, nil
}

type fakeTagRepo struct {
	tags map[uuid.UUID]*models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[uuid.UUID]*models.Tag)}
}

func (r *fakeTagRepo) Create(_ context.Context, tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	tag.CreatedAt = time.Now()
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Tag, error) {
	out := []models.Tag{}
	for _, tag := range r.tags {
		if tag.UserID == userID {
			out = append(out, *tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (r *fakeTagRepo) CountByIDsAndUserID(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	count := 0
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok && tag.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*models.Ingredient
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{ingredients: make(map[uuid.UUID]*models.Ingredient)}
}

func (r *fakeIngredientRepo) Create(_ context.Context, ingredient *models.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	ingredient.CreatedAt = time.Now()
	cp := *ingredient
	r.ingredients[ingredient.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	out := []models.Ingredient{}
	for _, ing := range r.ingredients {
		if ing.UserID == userID {
			out = append(out, *ing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (r *fakeIngredientRepo) CountByIDsAndUserID(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error) {
	count := 0
	for _, id := range ids {
		if ing, ok := r.ingredients[id]; ok && ing.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeRecipeRepo struct {
	tagRepo        *fakeTagRepo
	ingredientRepo *fakeIngredientRepo
	recipes        map[uuid.UUID]*models.Recipe
}

func newFakeRecipeRepo(tagRepo *fakeTagRepo, ingredientRepo *fakeIngredientRepo) *fakeRecipeRepo {
	return &fakeRecipeRepo{
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		recipes:        make(map[uuid.UUID]*models.Recipe),
	}
}

func copyRecipe(r *models.Recipe) *models.Recipe {
	cp := *r
	cp.TagIDs = append([]uuid.UUID{}, r.TagIDs...)
	cp.IngredientIDs = append([]uuid.UUID{}, r.IngredientIDs...)
	return &cp
}

func (r *fakeRecipeRepo) Create(_ context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	recipe.CreatedAt = time.Now()
	r.recipes[recipe.ID] = copyRecipe(recipe)
	return nil
}

func (r *fakeRecipeRepo) Update(_ context.Context, recipe *models.Recipe) error {
	existing, ok := r.recipes[recipe.ID]
	if !ok || existing.UserID != recipe.UserID {
		return models.ErrNotFound
	}
	recipe.CreatedAt = existing.CreatedAt
	r.recipes[recipe.ID] = copyRecipe(recipe)
	return nil
}

func (r *fakeRecipeRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	out := []models.Recipe{}
	for _, recipe := range r.recipes {
		if recipe.UserID == userID {
			out = append(out, *copyRecipe(recipe))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title > out[j].Title })
	return out, nil
}

func (r *fakeRecipeRepo) GetByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*models.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return nil, nil
	}
	return copyRecipe(recipe), nil
}

func (r *fakeRecipeRepo) GetDetailByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.RecipeDetail, error) {
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

func (r *fakeRecipeRepo) DeleteByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return models.ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *fakeRecipeRepo) SetImage(_ context.Context, id uuid.UUID, userID uuid.UUID, imagePath string) error {
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != userID {
		return models.ErrNotFound
	}
	recipe.Image = &imagePath
	return nil
}

type fakeImageStore struct {
	saved   map[string][]byte
	removed []string
	nextID  int
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: make(map[string][]byte)}
}

func (s *fakeImageStore) SaveRecipeImage(data []byte, ext string) (string, error) {
	s.nextID++
	rel := fmt.Sprintf("uploads/recipe/%d%s", s.nextID, ext)
	s.saved[rel] = data
	return rel, nil
}

func (s *fakeImageStore) Remove(rel string) error {
	s.removed = append(s.removed, rel)
	delete(s.saved, rel)
	return nil
}
