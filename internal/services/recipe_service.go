package services

import (
	"bytes"
	"context"
	"image"
	"math"
	"path/filepath"
	"strings"

	// Register the decoders the upload endpoint accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"recipeapi/internal/models"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error)
	GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Recipe, error)
	GetDetailByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.RecipeDetail, error)
	DeleteByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	SetImage(ctx context.Context, id uuid.UUID, userID uuid.UUID, imagePath string) error
}

// ImageStore persists validated image bytes and returns the stored path.
type ImageStore interface {
	SaveRecipeImage(data []byte, ext string) (string, error)
	Remove(rel string) error
}

type RecipeService struct {
	recipeRepo     RecipeRepository
	tagRepo        TagRepository
	ingredientRepo IngredientRepository
	images         ImageStore
}

func NewRecipeService(
	recipeRepo RecipeRepository,
	tagRepo TagRepository,
	ingredientRepo IngredientRepository,
	images ImageStore,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		images:         images,
	}
}

type CreateRecipeRequest struct {
	Title         string      `json:"title" binding:"required"`
	TimeMinutes   int         `json:"time_minutes" binding:"required,gt=0"`
	Price         *float64    `json:"price" binding:"required,gte=0"`
	Link          *string     `json:"link" binding:"omitempty,url"`
	TagIDs        []uuid.UUID `json:"tags"`
	IngredientIDs []uuid.UUID `json:"ingredients"`
}

// UpdateRecipeRequest carries PATCH semantics: only non-nil fields are
// applied, and relation sets are only replaced when present.
type UpdateRecipeRequest struct {
	Title         *string      `json:"title"`
	TimeMinutes   *int         `json:"time_minutes" binding:"omitempty,gt=0"`
	Price         *float64     `json:"price" binding:"omitempty,gte=0"`
	Link          *string      `json:"link" binding:"omitempty,url"`
	TagIDs        *[]uuid.UUID `json:"tags"`
	IngredientIDs *[]uuid.UUID `json:"ingredients"`
}

func (s *RecipeService) List(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	return s.recipeRepo.ListByUserID(ctx, userID)
}

func (s *RecipeService) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.RecipeDetail, error) {
	detail, err := s.recipeRepo.GetDetailByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, models.ErrNotFound
	}
	return detail, nil
}

func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, req CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, models.ErrValidation
	}

	tagIDs := uniqueIDs(req.TagIDs)
	ingredientIDs := uniqueIDs(req.IngredientIDs)
	if err := s.checkReferences(ctx, userID, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:        userID,
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         roundPrice(*req.Price),
		Link:          req.Link,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Update is a full replacement: omitted relation lists clear the sets and
// an omitted link clears the link. The image reference is kept; it is only
// changed through UploadImage.
func (s *RecipeService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req CreateRecipeRequest) (*models.Recipe, error) {
	existing, err := s.recipeRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.ErrNotFound
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, models.ErrValidation
	}

	tagIDs := uniqueIDs(req.TagIDs)
	ingredientIDs := uniqueIDs(req.IngredientIDs)
	if err := s.checkReferences(ctx, userID, tagIDs, ingredientIDs); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		ID:            id,
		UserID:        userID,
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         roundPrice(*req.Price),
		Link:          req.Link,
		Image:         existing.Image,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// PartialUpdate merges the request into the stored recipe. Relation fields
// left out of the request stay untouched.
func (s *RecipeService) PartialUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID, req UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, models.ErrNotFound
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, models.ErrValidation
		}
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = roundPrice(*req.Price)
	}
	if req.Link != nil {
		recipe.Link = req.Link
	}
	if req.TagIDs != nil {
		recipe.TagIDs = uniqueIDs(*req.TagIDs)
	}
	if req.IngredientIDs != nil {
		recipe.IngredientIDs = uniqueIDs(*req.IngredientIDs)
	}

	if err := s.checkReferences(ctx, userID, recipe.TagIDs, recipe.IngredientIDs); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes the recipe and, afterwards, its stored image file.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	recipe, err := s.recipeRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return models.ErrNotFound
	}

	if err := s.recipeRepo.DeleteByIDAndUserID(ctx, id, userID); err != nil {
		return err
	}

	if recipe.Image != nil {
		// Best effort: the row is already gone.
		_ = s.images.Remove(*recipe.Image)
	}

	return nil
}

// UploadImage validates that the payload decodes as an image, stores it
// under a generated filename and updates the recipe's image reference. A
// failed validation leaves any previous image untouched.
func (s *RecipeService) UploadImage(ctx context.Context, userID uuid.UUID, id uuid.UUID, data []byte, originalName string) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, models.ErrNotFound
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, models.ErrInvalidImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = extensionForFormat(format)
	}

	rel, err := s.images.SaveRecipeImage(data, ext)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.SetImage(ctx, id, userID, rel); err != nil {
		return nil, err
	}

	recipe.Image = &rel
	return recipe, nil
}

func (s *RecipeService) checkReferences(ctx context.Context, userID uuid.UUID, tagIDs, ingredientIDs []uuid.UUID) error {
	if len(tagIDs) > 0 {
		count, err := s.tagRepo.CountByIDsAndUserID(ctx, tagIDs, userID)
		if err != nil {
			return err
		}
		if count != len(tagIDs) {
			return models.ErrInvalidReference
		}
	}
	if len(ingredientIDs) > 0 {
		count, err := s.ingredientRepo.CountByIDsAndUserID(ctx, ingredientIDs, userID)
		if err != nil {
			return err
		}
		if count != len(ingredientIDs) {
			return models.ErrInvalidReference
		}
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := []uuid.UUID{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// roundPrice keeps prices at two fraction digits.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func extensionForFormat(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	default:
		return "." + format
	}
}
