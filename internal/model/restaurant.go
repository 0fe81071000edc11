package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxRestaurantSchedules is the number of schedules a restaurant may hold
const MaxRestaurantSchedules = 3

// Restaurant belongs to an owner and holds products and opening schedules
type Restaurant struct {
	Base
	Name         string               `json:"name" gorm:"type:varchar(256);not null"`
	ImageURL     *string              `json:"image_url" gorm:"type:varchar(256)"`
	OwnerID      uuid.UUID            `json:"owner_id" gorm:"type:uuid;not null;index"`
	Street       string               `json:"street" gorm:"type:varchar(256);not null"`
	Number       int                  `json:"number" gorm:"not null"`
	Neighborhood string               `json:"neighborhood" gorm:"type:varchar(256);not null"`
	City         string               `json:"city" gorm:"type:varchar(256);not null"`
	StateAbbr    string               `json:"state_abbr" gorm:"type:varchar(2);not null"`
	Products     []Product            `json:"products,omitempty" gorm:"foreignKey:RestaurantID"`
	Schedules    []RestaurantSchedule `json:"schedules,omitempty" gorm:"foreignKey:RestaurantID"`
}

// RestaurantSchedule is an opening window of a restaurant
type RestaurantSchedule struct {
	Base
	RestaurantID uuid.UUID      `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	DayType      DayType        `json:"day_type" gorm:"type:varchar(10);not null"`
	StartDay     Day            `json:"start_day" gorm:"type:varchar(10);not null"`
	EndDay       Day            `json:"end_day" gorm:"type:varchar(10);not null"`
	StartTime    datatypes.Time `json:"start_time" gorm:"not null"`
	EndTime      datatypes.Time `json:"end_time" gorm:"not null"`
}
