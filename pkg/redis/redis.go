package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewClient connects to the Redis server at url and pings it. An empty url
// disables Redis and returns a nil client; callers treat nil as "not
// configured".
func NewClient(url string, logger *zap.Logger) (*goredis.Client, error) {
	if url == "" {
		logger.Info("Redis disabled (REDIS_URL is empty)")
		return nil, nil
	}

	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	logger.Info("Redis connected", zap.String("addr", opts.Addr))
	return rdb, nil
}

// TryLock sets key if absent. It reports whether this caller now holds it.
func TryLock(ctx context.Context, rdb *goredis.Client, key string, ttl time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	wasSet, err := rdb.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return wasSet, nil
}

func Unlock(ctx context.Context, rdb *goredis.Client, key string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, key).Err()
}
