package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identifiable is implemented by every persisted catalog entity
type Identifiable interface {
	EntityID() uuid.UUID
}

// Base carries the UUID primary key and the timestamps maintained by gorm
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the primary key
func (b Base) EntityID() uuid.UUID {
	return b.ID
}

// BeforeCreate assigns a fresh UUID unless one was set explicitly
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every entity in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Restaurant{},
		&RestaurantSchedule{},
		&Product{},
		&Offer{},
		&OfferSchedule{},
	}
}
