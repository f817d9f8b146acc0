package repository

import (
	"context"

	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
)

type LectureRepository interface {
	Create(ctx context.Context, lecture *entity.Lecture) error
	FindAll(ctx context.Context) ([]*entity.Lecture, error)
	FindByDay(ctx context.Context, day entity.Weekday) ([]*entity.Lecture, error)
	Count(ctx context.Context) (int64, error)
}

type lectureRepository struct {
	db *gorm.DB
}

func NewLectureRepository(db *gorm.DB) LectureRepository {
	return &lectureRepository{db: db}
}

func (r *lectureRepository) Create(ctx context.Context, lecture *entity.Lecture) error {
	return r.db.WithContext(ctx).Create(lecture).Error
}

// FindAll returns lectures in insertion order (v7 ids sort by creation time).
func (r *lectureRepository) FindAll(ctx context.Context) ([]*entity.Lecture, error) {
	var lectures []*entity.Lecture
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

func (r *lectureRepository) FindByDay(ctx context.Context, day entity.Weekday) ([]*entity.Lecture, error) {
	var lectures []*entity.Lecture
	if err := r.db.WithContext(ctx).
		Where("lecture_day = ?", day).
		Order("id ASC").
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	return lectures, nil
}

func (r *lectureRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Lecture{}).Count(&count).Error
	return count, err
}
