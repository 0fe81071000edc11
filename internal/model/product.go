package model

import "github.com/google/uuid"

// Product is sold by a restaurant under a category
type Product struct {
	Base
	RestaurantID uuid.UUID `json:"restaurant_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"type:varchar(256);not null"`
	Price        float64   `json:"price" gorm:"not null"`
	CategoryID   uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	ImageURL     *string   `json:"image_url" gorm:"type:varchar(256)"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Offers       []Offer   `json:"offers,omitempty" gorm:"foreignKey:ProductID"`
}
