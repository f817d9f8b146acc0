package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the ISO calendar date format used for Menu.Date and the
// date query parameters.
const DateLayout = "2006-01-02"

type MealPeriod string

const (
	MealBreakfast MealPeriod = "조식"
	MealLunch     MealPeriod = "중식"
	MealDinner    MealPeriod = "석식"
)

var MealPeriods = []MealPeriod{MealBreakfast, MealLunch, MealDinner}

func (p MealPeriod) Valid() bool {
	switch p {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

type Menu struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Date         string     `gorm:"size:10;not null;index:idx_menus_date_time,priority:1" json:"date"`
	TimeType     MealPeriod `gorm:"size:10;not null;index:idx_menus_date_time,priority:2" json:"time_type"`
	MenuName     string     `gorm:"size:255;not null" json:"menu_name"`
	Price        *int       `json:"price"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"restaurant_id"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}
