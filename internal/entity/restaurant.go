package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownRestaurantName replaces the restaurant name of a menu whose
// restaurant row cannot be found.
const UnknownRestaurantName = "알 수 없는 식당"

type Restaurant struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}
