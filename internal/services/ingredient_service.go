package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"recipeapi/internal/models"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error)
	CountByIDsAndUserID(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error)
}

type IngredientService struct {
	ingredientRepo IngredientRepository
}

func NewIngredientService(ingredientRepo IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	return s.ingredientRepo.ListByUserID(ctx, userID)
}

func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}

	ingredient := &models.Ingredient{UserID: userID, Name: name}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}
