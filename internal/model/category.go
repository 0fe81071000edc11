package model

// Category groups products. Names are unique.
type Category struct {
	Base
	Name string `json:"name" gorm:"type:varchar(256);not null;uniqueIndex:uq_categories_name"`
}
