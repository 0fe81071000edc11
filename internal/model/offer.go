package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Offer is a time bound price for a product
type Offer struct {
	Base
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	Price     float64         `json:"price" gorm:"not null"`
	Active    bool            `json:"active" gorm:"not null"`
	Schedules []OfferSchedule `json:"schedules,omitempty" gorm:"foreignKey:OfferID"`
}

// OfferSchedule is a window in which an offer applies
type OfferSchedule struct {
	Base
	OfferID   uuid.UUID      `json:"offer_id" gorm:"type:uuid;not null;index"`
	Day       Day            `json:"day" gorm:"type:varchar(10);not null"`
	StartTime datatypes.Time `json:"start_time" gorm:"not null"`
	EndTime   datatypes.Time `json:"end_time" gorm:"not null"`
	Repeats   bool           `json:"repeats" gorm:"not null;default:false"`
}
