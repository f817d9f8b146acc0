package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/entity"
	campusRepo "smat.com/campusapi/internal/modules/campus/repository"
	communityRepo "smat.com/campusapi/internal/modules/community/repository"
	scheduleRepo "smat.com/campusapi/internal/modules/schedule/repository"
	searchService "smat.com/campusapi/internal/modules/search/service"
	"smat.com/campusapi/pkg/redis"
)

const (
	InitialSeed = "initial"
	seedLockKey = "seed:lock"
	seedLockTTL = time.Minute
)

// SeedResult reports how many rows each table received.
type SeedResult struct {
	Restaurants int
	Menus       int
	Lectures    int
	Posts       int
	// Skipped is set when the marker already existed or another replica
	// held the lock.
	Skipped bool
}

type Seeder struct {
	db     *gorm.DB
	rdb    *goredis.Client
	index  searchService.PostIndex
	now    func() time.Time
	logger *zap.Logger
}

// NewSeeder builds a loader for the demo data set. rdb and index may be nil.
func NewSeeder(db *gorm.DB, rdb *goredis.Client, index searchService.PostIndex, now func() time.Time, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		rdb:    rdb,
		index:  index,
		now:    now,
		logger: logger,
	}
}

// Run loads the demo data once. A database that already carries the initial
// marker is left untouched. Otherwise each table is filled only if it is
// empty, so data from an interrupted earlier run is never duplicated.
func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	acquired, err := redis.TryLock(ctx, s.rdb, seedLockKey, seedLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		s.logger.Info("Seed lock held by another instance, skipping")
		return &SeedResult{Skipped: true}, nil
	}
	defer func() {
		if err := redis.Unlock(context.Background(), s.rdb, seedLockKey); err != nil {
			s.logger.Warn("failed to release seed lock", zap.Error(err))
		}
	}()

	seeded, err := s.hasMarker(ctx)
	if err != nil {
		return nil, err
	}
	if seeded {
		s.logger.Info("Initial data already present, skipping seed")
		return &SeedResult{Skipped: true}, nil
	}

	now := s.now()
	result := &SeedResult{}
	var newPosts []*entity.Post

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if result.Restaurants, err = seedRestaurants(ctx, campusRepo.NewRestaurantRepository(tx)); err != nil {
			return err
		}
		if result.Menus, err = s.seedMenus(ctx, tx, now); err != nil {
			return err
		}
		if result.Lectures, err = seedLectures(ctx, scheduleRepo.NewLectureRepository(tx), now); err != nil {
			return err
		}
		if newPosts, err = seedPosts(ctx, communityRepo.NewPostRepository(tx), now); err != nil {
			return err
		}
		result.Posts = len(newPosts)

		marker := entity.SeedMarker{Name: InitialSeed, SeededAt: now}
		if err := tx.Create(&marker).Error; err != nil {
			return fmt.Errorf("failed to write seed marker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}

	if s.index != nil && len(newPosts) > 0 {
		if err := s.index.IndexPosts(newPosts); err != nil {
			s.logger.Warn("failed to index seeded posts", zap.Error(err))
		}
	}

	s.logger.Info("✅ Initial data seeded",
		zap.Int("restaurants", result.Restaurants),
		zap.Int("menus", result.Menus),
		zap.Int("lectures", result.Lectures),
		zap.Int("posts", result.Posts),
	)
	return result, nil
}

func (s *Seeder) hasMarker(ctx context.Context) (bool, error) {
	var marker entity.SeedMarker
	err := s.db.WithContext(ctx).Where("name = ?", InitialSeed).First(&marker).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to read seed marker: %w", err)
	}
}

func seedRestaurants(ctx context.Context, repo campusRepo.RestaurantRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	for _, name := range restaurantNames {
		if err := repo.Create(ctx, &entity.Restaurant{Name: name}); err != nil {
			return 0, fmt.Errorf("failed to seed restaurant %s: %w", name, err)
		}
	}
	return len(restaurantNames), nil
}

func (s *Seeder) seedMenus(ctx context.Context, tx *gorm.DB, now time.Time) (int, error) {
	menus := campusRepo.NewMenuRepository(tx)
	restaurants := campusRepo.NewRestaurantRepository(tx)

	count, err := menus.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	today := now.Format(entity.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(entity.DateLayout)
	ids := make(map[string]*entity.Restaurant)

	created := 0
	for _, f := range menuFixtures {
		r, ok := ids[f.restaurant]
		if !ok {
			r, err = restaurants.FindByName(ctx, f.restaurant)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("restaurant missing, skipping menu",
					zap.String("restaurant", f.restaurant),
					zap.String("menu", f.name),
				)
				continue
			}
			if err != nil {
				return 0, fmt.Errorf("failed to find restaurant %s: %w", f.restaurant, err)
			}
			ids[f.restaurant] = r
		}

		date := today
		if f.tomorrow {
			date = tomorrow
		}
		menu := &entity.Menu{
			Date:         date,
			TimeType:     f.period,
			MenuName:     f.name,
			Price:        intPtr(f.price),
			RestaurantID: r.ID,
		}
		if err := menus.Create(ctx, menu); err != nil {
			return 0, fmt.Errorf("failed to seed menu %s: %w", f.name, err)
		}
		created++
	}
	return created, nil
}

func seedLectures(ctx context.Context, repo scheduleRepo.LectureRepository, now time.Time) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return 0, err
	}

	lectures := append([]entity.Lecture{upcomingLecture(now)}, weeklyLectures()...)
	for i := range lectures {
		if err := repo.Create(ctx, &lectures[i]); err != nil {
			return 0, fmt.Errorf("failed to seed lecture %s: %w", lectures[i].Name, err)
		}
	}
	return len(lectures), nil
}

func seedPosts(ctx context.Context, repo communityRepo.PostRepository, now time.Time) ([]*entity.Post, error) {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return nil, err
	}

	fixtures := posts(now)
	created := make([]*entity.Post, 0, len(fixtures))
	for i := range fixtures {
		if err := repo.Create(ctx, &fixtures[i]); err != nil {
			return nil, fmt.Errorf("failed to seed post %s: %w", fixtures[i].Title, err)
		}
		created = append(created, &fixtures[i])
	}
	return created, nil
}
