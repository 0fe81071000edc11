package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
)

// RestaurantInput is used both to create a restaurant and to replace all of its fields
type RestaurantInput struct {
	Name         string    `json:"name" validate:"required,max=256"`
	ImageURL     *string   `json:"image_url" validate:"omitempty,url,max=256"`
	OwnerID      uuid.UUID `json:"owner_id" validate:"required"`
	Street       string    `json:"street" validate:"required,max=256"`
	Number       int       `json:"number" validate:"required,min=1"`
	Neighborhood string    `json:"neighborhood" validate:"required,max=256"`
	City         string    `json:"city" validate:"required,max=256"`
	StateAbbr    string    `json:"state_abbr" validate:"required,len=2"`
}

func (input RestaurantInput) apply(restaurant *model.Restaurant) {
	restaurant.Name = input.Name
	restaurant.ImageURL = input.ImageURL
	restaurant.OwnerID = input.OwnerID
	restaurant.Street = input.Street
	restaurant.Number = input.Number
	restaurant.Neighborhood = input.Neighborhood
	restaurant.City = input.City
	restaurant.StateAbbr = input.StateAbbr
}

// RestaurantFilter narrows the restaurant list. Zero values are ignored.
type RestaurantFilter struct {
	Name    string
	OwnerID *uuid.UUID
}

// RestaurantService manages restaurants
type RestaurantService struct {
	crud crud[model.Restaurant]
}

func NewRestaurantService(repo Repository[model.Restaurant], publisher events.Publisher) *RestaurantService {
	return &RestaurantService{crud: newCrud(apperror.Restaurant, repo, publisher)}
}

// List returns the matching restaurants with their schedules
func (s *RestaurantService) List(ctx context.Context, filter RestaurantFilter) ([]model.Restaurant, error) {
	listFilter := repository.ListFilter{Name: filter.Name}
	if filter.OwnerID != nil {
		listFilter.Equals = map[string]interface{}{repository.OwnerIDColumn: *filter.OwnerID}
	}
	return s.crud.list(ctx, listFilter)
}

// Get returns the restaurant with its products
func (s *RestaurantService) Get(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	return s.crud.get(ctx, id)
}

func (s *RestaurantService) Create(ctx context.Context, input RestaurantInput) (uuid.UUID, error) {
	var restaurant model.Restaurant
	input.apply(&restaurant)
	return s.crud.create(ctx, &restaurant)
}

func (s *RestaurantService) Update(ctx context.Context, id uuid.UUID, input RestaurantInput) (*model.Restaurant, error) {
	return s.crud.update(ctx, id, func(restaurant *model.Restaurant) error {
		input.apply(restaurant)
		return nil
	})
}

func (s *RestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.delete(ctx, id, nil)
}
