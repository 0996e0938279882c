package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"recipeapi/internal/models"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Tag, error)
	CountByIDsAndUserID(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int, error)
}

type TagService struct {
	tagRepo TagRepository
}

func NewTagService(tagRepo TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) List(ctx context.Context, userID uuid.UUID) ([]models.Tag, error) {
	return s.tagRepo.ListByUserID(ctx, userID)
}

func (s *TagService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}

	tag := &models.Tag{UserID: userID, Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}
