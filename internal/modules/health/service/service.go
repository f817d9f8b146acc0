package health

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smat.com/campusapi/internal/modules/health/dto"
	"smat.com/campusapi/pkg/database"
)

const (
	ActiveText    = "Backend is Active!"
	activeStatus  = "Active"
	activeMessage = "Backend is running successfully!"
	timestampFmt  = "2006-01-02T15:04:05"
)

// Check probes one dependency. A nil Check means the dependency is not
// configured.
type Check func(ctx context.Context) error

func DatabaseCheck(db *gorm.DB) Check {
	if db == nil {
		return nil
	}
	return func(ctx context.Context) error { return database.Ping(ctx, db) }
}

func RedisCheck(rdb *goredis.Client) Check {
	if rdb == nil {
		return nil
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	}
}

type HealthService interface {
	Info(ctx context.Context) dto.InfoResponse
}

type healthService struct {
	version  string
	now      func() time.Time
	database Check
	redis    Check
	logger   *zap.Logger
}

func NewHealthService(version string, now func() time.Time, dbCheck, redisCheck Check, logger *zap.Logger) HealthService {
	return &healthService{
		version:  version,
		now:      now,
		database: dbCheck,
		redis:    redisCheck,
		logger:   logger,
	}
}

// Info always reports the process as active. Dependency failures only show
// up in the component fields.
func (s *healthService) Info(ctx context.Context) dto.InfoResponse {
	return dto.InfoResponse{
		Status:    activeStatus,
		Message:   activeMessage,
		Timestamp: s.now().Format(timestampFmt),
		Version:   s.version,
		Database:  s.probe(ctx, "database", s.database),
		Redis:     s.probe(ctx, "redis", s.redis),
	}
}

func (s *healthService) probe(ctx context.Context, name string, check Check) string {
	if check == nil {
		return dto.StateDisabled
	}
	if err := check(ctx); err != nil {
		s.logger.Warn("health probe failed", zap.String("component", name), zap.Error(err))
		return dto.StateDown
	}
	return dto.StateUp
}
