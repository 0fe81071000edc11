package model

// User owns restaurants. The password is stored as received.
type User struct {
	Base
	FirstName   string       `json:"first_name" gorm:"type:varchar(256);not null"`
	LastName    string       `json:"last_name" gorm:"type:varchar(256);not null"`
	Email       string       `json:"email" gorm:"type:varchar(256);not null"`
	Password    string       `json:"-" gorm:"type:varchar(256);not null"`
	Restaurants []Restaurant `json:"restaurants,omitempty" gorm:"foreignKey:OwnerID"`
}
