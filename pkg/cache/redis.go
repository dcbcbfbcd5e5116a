package cache

import (
	"context"
	"fmt"
	"time"

	"cinema-platform/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects to Redis and verifies the connection with a ping.
// Returns nil without error when no address is configured so callers can
// treat caching as optional.
func InitRedis(config *utils.Config, logger *zap.Logger) (*redis.Client, error) {
	if config.Redis.Addr == "" {
		logger.Info("Redis not configured, response caching disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	return client, nil
}
