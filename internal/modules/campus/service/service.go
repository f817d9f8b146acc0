package campus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
	"smat.com/campusapi/internal/modules/campus/dto"
	"smat.com/campusapi/internal/modules/campus/repository"
)

type CampusService interface {
	TodayMenus(ctx context.Context) ([]dto.MenuResponse, error)
	MenusForDate(ctx context.Context, date time.Time) ([]dto.MenuResponse, error)
	MenusForDateAndPeriod(ctx context.Context, date time.Time, period entity.MealPeriod) ([]dto.MenuResponse, error)
}

type campusService struct {
	menuRepo       repository.MenuRepository
	restaurantRepo repository.RestaurantRepository
	now            func() time.Time
	logger         *zap.Logger
}

// NewCampusService wires the menu lookups. now must return the current time
// in the campus time zone.
func NewCampusService(menuRepo repository.MenuRepository, restaurantRepo repository.RestaurantRepository, now func() time.Time, logger *zap.Logger) CampusService {
	return &campusService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
		now:            now,
		logger:         logger,
	}
}

func (s *campusService) TodayMenus(ctx context.Context) ([]dto.MenuResponse, error) {
	return s.MenusForDate(ctx, s.now())
}

func (s *campusService) MenusForDate(ctx context.Context, date time.Time) ([]dto.MenuResponse, error) {
	menus, err := s.menuRepo.FindByDate(ctx, date.Format(entity.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to find menus: %w", err)
	}
	return s.mapToResponses(ctx, menus)
}

func (s *campusService) MenusForDateAndPeriod(ctx context.Context, date time.Time, period entity.MealPeriod) ([]dto.MenuResponse, error) {
	menus, err := s.menuRepo.FindByDateAndTimeType(ctx, date.Format(entity.DateLayout), period)
	if err != nil {
		return nil, fmt.Errorf("failed to find menus: %w", err)
	}
	return s.mapToResponses(ctx, menus)
}

// mapToResponses resolves restaurant names through a map that lives for this
// call only. Misses are not cached and fall back to UnknownRestaurantName.
func (s *campusService) mapToResponses(ctx context.Context, menus []*entity.Menu) ([]dto.MenuResponse, error) {
	restaurantNames := make(map[uuid.UUID]string)
	responses := make([]dto.MenuResponse, 0, len(menus))

	for _, menu := range menus {
		name, ok := restaurantNames[menu.RestaurantID]
		if !ok {
			restaurant, err := s.restaurantRepo.FindByID(ctx, menu.RestaurantID)
			switch {
			case err == nil:
				name = restaurant.Name
				restaurantNames[menu.RestaurantID] = name
			case errors.Is(err, gorm.ErrRecordNotFound):
				s.logger.Debug("restaurant not found for menu",
					zap.String("menu_id", menu.ID.String()),
					zap.String("restaurant_id", menu.RestaurantID.String()),
				)
				name = entity.UnknownRestaurantName
			default:
				return nil, fmt.Errorf("failed to find restaurant %s: %w", menu.RestaurantID, err)
			}
		}

		responses = append(responses, dto.MenuResponse{
			ID:             menu.ID,
			Date:           menu.Date,
			TimeType:       menu.TimeType,
			MenuName:       menu.MenuName,
			Price:          menu.Price,
			RestaurantName: name,
		})
	}

	return responses, nil
}
