package campus

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
)

// ── Mock MenuRepository ──

type mockMenuRepo struct {
	menus []*entity.Menu
	err   error
}

func (m *mockMenuRepo) Create(_ context.Context, menu *entity.Menu) error {
	m.menus = append(m.menus, menu)
	return nil
}

func (m *mockMenuRepo) FindByDate(_ context.Context, date string) ([]*entity.Menu, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*entity.Menu
	for _, menu := range m.menus {
		if menu.Date == date {
			result = append(result, menu)
		}
	}
	return result, nil
}

func (m *mockMenuRepo) FindByDateAndTimeType(_ context.Context, date string, timeType entity.MealPeriod) ([]*entity.Menu, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []*entity.Menu
	for _, menu := range m.menus {
		if menu.Date == date && menu.TimeType == timeType {
			result = append(result, menu)
		}
	}
	return result, nil
}

func (m *mockMenuRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.menus)), nil
}

// ── Mock RestaurantRepository ──

type mockRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
	findCalls   map[uuid.UUID]int
	err         error
}

func newMockRestaurantRepo(restaurants ...*entity.Restaurant) *mockRestaurantRepo {
	m := &mockRestaurantRepo{
		restaurants: make(map[uuid.UUID]*entity.Restaurant),
		findCalls:   make(map[uuid.UUID]int),
	}
	for _, r := range restaurants {
		m.restaurants[r.ID] = r
	}
	return m
}

func (m *mockRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	m.restaurants[restaurant.ID] = restaurant
	return nil
}

func (m *mockRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	m.findCalls[id]++
	if m.err != nil {
		return nil, m.err
	}
	if r, ok := m.restaurants[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRestaurantRepo) FindByName(_ context.Context, name string) (*entity.Restaurant, error) {
	for _, r := range m.restaurants {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRestaurantRepo) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	var result []*entity.Restaurant
	for _, r := range m.restaurants {
		result = append(result, r)
	}
	return result, nil
}

func (m *mockRestaurantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.restaurants)), nil
}

var errConnectionReset = errors.New("connection reset by peer")
