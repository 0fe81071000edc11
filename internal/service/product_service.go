package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
)

// ProductInput is used both to create a product and to replace all of its fields
type ProductInput struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	CategoryID   uuid.UUID `json:"category_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=256"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	ImageURL     *string   `json:"image_url" validate:"omitempty,url,max=256"`
}

func (input ProductInput) apply(product *model.Product) {
	product.RestaurantID = input.RestaurantID
	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Price = input.Price
	product.ImageURL = input.ImageURL
}

// ProductFilter narrows the product list. Zero values are ignored.
type ProductFilter struct {
	Name       string
	CategoryID *uuid.UUID
}

// ProductService manages products
type ProductService struct {
	crud crud[model.Product]
}

func NewProductService(repo Repository[model.Product], publisher events.Publisher) *ProductService {
	c := newCrud(apperror.Product, repo, publisher)
	c.metadata = func(product *model.Product) map[string]string {
		return map[string]string{
			"restaurant_id": product.RestaurantID.String(),
			"category_id":   product.CategoryID.String(),
		}
	}
	return &ProductService{crud: c}
}

// List returns the matching products with their category
func (s *ProductService) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	listFilter := repository.ListFilter{Name: filter.Name}
	if filter.CategoryID != nil {
		listFilter.Equals = map[string]interface{}{repository.CategoryIDColumn: *filter.CategoryID}
	}
	return s.crud.list(ctx, listFilter)
}

// Get returns the product with its offers
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.crud.get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (uuid.UUID, error) {
	var product model.Product
	input.apply(&product)
	return s.crud.create(ctx, &product)
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error) {
	return s.crud.update(ctx, id, func(product *model.Product) error {
		input.apply(product)
		return nil
	})
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.delete(ctx, id, nil)
}
