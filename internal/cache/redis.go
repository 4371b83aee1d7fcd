// internal/cache/redis.go
package cache

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
)

// NewRedisClient builds a redis client from REDIS_ADDR, REDIS_PASSWORD and
// REDIS_DB. Returns nil when REDIS_ADDR is unset; callers treat a nil client
// as "cache disabled" and read straight from the database.
//
// A redis that is configured but unreachable also disables the cache instead
// of failing startup. The gallery works without it, just slower.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	dbNumber := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		n, err := strconv.Atoi(dbStr)
		if err != nil {
			zlog.Warn().Str("redis_db", dbStr).Msg("Invalid REDIS_DB value, using database 0")
		} else {
			dbNumber = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNumber,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zlog.Warn().Err(err).Str("addr", addr).Msg("Redis ping failed. Gallery caching disabled.")
		_ = client.Close()
		return nil
	}

	zlog.Info().Str("addr", addr).Int("db", dbNumber).Msg("Connected to Redis.")
	return client
}
