package repository

import (
	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"gorm.io/gorm"
)

// Filter columns accepted by the list endpoints
const (
	OwnerIDColumn    = "owner_id"
	CategoryIDColumn = "category_id"
)

var (
	UserDescriptor = Descriptor{
		Entity:         apperror.User,
		DetailPreloads: []string{"Restaurants"},
	}

	CategoryDescriptor = Descriptor{
		Entity:     apperror.Category,
		NameColumn: "name",
	}

	RestaurantDescriptor = Descriptor{
		Entity:         apperror.Restaurant,
		NameColumn:     "name",
		FilterColumns:  []string{OwnerIDColumn},
		ListPreloads:   []string{"Schedules"},
		DetailPreloads: []string{"Products"},
	}

	RestaurantScheduleDescriptor = Descriptor{
		Entity:       apperror.RestaurantSchedule,
		ParentColumn: "restaurant_id",
	}

	ProductDescriptor = Descriptor{
		Entity:         apperror.Product,
		NameColumn:     "name",
		FilterColumns:  []string{CategoryIDColumn},
		ListPreloads:   []string{"Category"},
		DetailPreloads: []string{"Offers"},
	}

	OfferDescriptor = Descriptor{
		Entity:         apperror.Offer,
		DetailPreloads: []string{"Schedules"},
	}

	OfferScheduleDescriptor = Descriptor{
		Entity:       apperror.OfferSchedule,
		ParentColumn: "offer_id",
	}
)

// Stores groups the store of every entity family
type Stores struct {
	Users               *Store[model.User]
	Categories          *Store[model.Category]
	Restaurants         *Store[model.Restaurant]
	RestaurantSchedules *Store[model.RestaurantSchedule]
	Products            *Store[model.Product]
	Offers              *Store[model.Offer]
	OfferSchedules      *Store[model.OfferSchedule]
}

// NewStores creates every store on the same connection
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:               NewStore[model.User](db, UserDescriptor),
		Categories:          NewStore[model.Category](db, CategoryDescriptor),
		Restaurants:         NewStore[model.Restaurant](db, RestaurantDescriptor),
		RestaurantSchedules: NewStore[model.RestaurantSchedule](db, RestaurantScheduleDescriptor),
		Products:            NewStore[model.Product](db, ProductDescriptor),
		Offers:              NewStore[model.Offer](db, OfferDescriptor),
		OfferSchedules:      NewStore[model.OfferSchedule](db, OfferScheduleDescriptor),
	}
}
