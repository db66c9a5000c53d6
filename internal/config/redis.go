package config

import (
	"context"
	"sync"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	Redis   *redis.Client
	redisMu sync.Mutex

	locationCache *cache.Cache[string]
)

// ConnectRedis opens the optional cache backend. An empty address leaves
// caching disabled and is not an error.
func ConnectRedis(env Env) error {
	redisMu.Lock()
	defer redisMu.Unlock()

	if env.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       env.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return err
	}

	Redis = client
	locationCache = cache.New[string](redisstore.NewRedis(client, store.WithExpiration(env.LocationCacheTTL)))
	log.Info().Str("addr", env.RedisAddr).Msg("Connected to Redis")
	return nil
}

// LocationCache returns the route-pair cache, or nil when Redis is not configured.
func LocationCache() cache.CacheInterface[string] {
	redisMu.Lock()
	defer redisMu.Unlock()
	if locationCache == nil {
		return nil
	}
	return locationCache
}

func CloseRedis() {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
		locationCache = nil
	}
}
