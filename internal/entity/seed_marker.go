package entity

import "time"

// SeedMarker records that a named fixture set has been loaded.
type SeedMarker struct {
	Name     string    `gorm:"size:50;primaryKey" json:"name"`
	SeededAt time.Time `gorm:"not null" json:"seeded_at"`
}
