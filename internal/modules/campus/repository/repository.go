package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *entity.Menu) error
	FindByDate(ctx context.Context, date string) ([]*entity.Menu, error)
	FindByDateAndTimeType(ctx context.Context, date string, timeType entity.MealPeriod) ([]*entity.Menu, error)
	Count(ctx context.Context) (int64, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByName(ctx context.Context, name string) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) FindByDate(ctx context.Context, date string) ([]*entity.Menu, error) {
	var menus []*entity.Menu
	if err := r.db.WithContext(ctx).Where(map[string]any{"date": date}).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) FindByDateAndTimeType(ctx context.Context, date string, timeType entity.MealPeriod) ([]*entity.Menu, error) {
	var menus []*entity.Menu
	if err := r.db.WithContext(ctx).
		Where(map[string]any{"date": date, "time_type": timeType}).
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Menu{}).Count(&count).Error
	return count, err
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByName(ctx context.Context, name string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	if err := r.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Restaurant{}).Count(&count).Error
	return count, err
}
