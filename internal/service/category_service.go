package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
)

// CreateCategoryInput is the payload accepted when creating a category
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=256"`
}

// CategoryService manages product categories.
// Duplicate names and deleting a category still used by products are
// rejected by the database and surface as internal errors.
type CategoryService struct {
	crud crud[model.Category]
}

func NewCategoryService(repo Repository[model.Category], publisher events.Publisher) *CategoryService {
	return &CategoryService{crud: newCrud(apperror.Category, repo, publisher)}
}

// List returns every category, optionally filtered by a case-insensitive name fragment
func (s *CategoryService) List(ctx context.Context, name string) ([]model.Category, error) {
	return s.crud.list(ctx, repository.ListFilter{Name: name})
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (uuid.UUID, error) {
	return s.crud.create(ctx, &model.Category{Name: input.Name})
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.delete(ctx, id, nil)
}
