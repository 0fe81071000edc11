package service

import (
	"github.com/RafaelEmery/rafood-api/internal/events"
	"github.com/RafaelEmery/rafood-api/internal/repository"
)

// Services groups the service of every entity family
type Services struct {
	Users               *UserService
	Categories          *CategoryService
	Restaurants         *RestaurantService
	RestaurantSchedules *RestaurantScheduleService
	Products            *ProductService
	Offers              *OfferService
	OfferSchedules      *OfferScheduleService
}

// New wires every service to its store. Changes are announced on publisher.
func New(stores *repository.Stores, publisher events.Publisher) *Services {
	return &Services{
		Users:               NewUserService(stores.Users, publisher),
		Categories:          NewCategoryService(stores.Categories, publisher),
		Restaurants:         NewRestaurantService(stores.Restaurants, publisher),
		RestaurantSchedules: NewRestaurantScheduleService(stores.RestaurantSchedules, stores.Restaurants, publisher),
		Products:            NewProductService(stores.Products, publisher),
		Offers:              NewOfferService(stores.Offers, publisher),
		OfferSchedules:      NewOfferScheduleService(stores.OfferSchedules, stores.Offers, publisher),
	}
}
