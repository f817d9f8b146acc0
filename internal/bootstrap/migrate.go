package bootstrap

import (
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(entity.Models()...)
}
