package service

import (
	"context"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/RafaelEmery/rafood-api/internal/repository"
	"github.com/google/uuid"
)

// CreateOfferInput is the payload accepted when creating an offer
type CreateOfferInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

// UpdateOfferInput changes the price and, when present, the active flag
type UpdateOfferInput struct {
	Price  float64 `json:"price" validate:"required,gt=0"`
	Active *bool   `json:"active"`
}

// OfferService manages product offers
type OfferService struct {
	crud crud[model.Offer]
}

func NewOfferService(repo Repository[model.Offer], publisher events.Publisher) *OfferService {
	c := newCrud(apperror.Offer, repo, publisher)
	c.metadata = func(offer *model.Offer) map[string]string {
		return map[string]string{"product_id": offer.ProductID.String()}
	}
	return &OfferService{crud: c}
}

func (s *OfferService) List(ctx context.Context) ([]model.Offer, error) {
	return s.crud.list(ctx, repository.ListFilter{})
}

// Get returns the offer with its schedules
func (s *OfferService) Get(ctx context.Context, id uuid.UUID) (*model.Offer, error) {
	return s.crud.get(ctx, id)
}

// Create adds an active offer
func (s *OfferService) Create(ctx context.Context, input CreateOfferInput) (uuid.UUID, error) {
	offer := model.Offer{
		ProductID: input.ProductID,
		Price:     input.Price,
		Active:    true,
	}
	return s.crud.create(ctx, &offer)
}

func (s *OfferService) Update(ctx context.Context, id uuid.UUID, input UpdateOfferInput) (*model.Offer, error) {
	return s.crud.update(ctx, id, func(offer *model.Offer) error {
		offer.Price = input.Price
		if input.Active != nil {
			offer.Active = *input.Active
		}
		return nil
	})
}

func (s *OfferService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crud.delete(ctx, id, nil)
}
