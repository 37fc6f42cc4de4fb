package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"fundaevento/plataforma/internal/logging"
)

// NewRedisClient builds the shared Redis client used for sessions. A
// failed initial ping is logged but not fatal; the pool reconnects on use.
func NewRedisClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Redis ping failed, continuing with lazy reconnect",
			"addr", addr, "error", err.Error())
	}

	return client
}
