package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryTaxi Category = "TAXI" // ride-share
	CategoryBook Category = "BOOK" // book trade
	CategoryTeam Category = "TEAM" // team recruiting
)

var Categories = []Category{CategoryTaxi, CategoryBook, CategoryTeam}

func (c Category) Valid() bool {
	switch c {
	case CategoryTaxi, CategoryBook, CategoryTeam:
		return true
	}
	return false
}

type Post struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category      Category  `gorm:"size:10;not null;index" json:"category"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Writer        string    `gorm:"size:100;not null;index" json:"writer"`
	Price         *int      `json:"price"`
	CurrentPeople *int      `json:"current_people"`
	MaxPeople     *int      `json:"max_people"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
