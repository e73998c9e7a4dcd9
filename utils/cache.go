// File: utils/cache.go
package utils

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/config"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by StringCache.GetString when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// StringCache is the minimal get/set surface the read-through listing caches
// consume.
type StringCache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisStringCache adapts a redis client to StringCache.
type RedisStringCache struct {
	Client *redis.Client
}

func (c RedisStringCache) GetString(ctx context.Context, key string) (string, error) {
	v, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	return v, err
}

func (c RedisStringCache) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// LoyaltyCacheClient is the dedicated client for the loyalty-points ledger.
	LoyaltyCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLoyaltyCache initializes the Redis client backing the loyalty-points ledger.
func InitLoyaltyCache() {
	LoyaltyCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLoyaltyDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LoyaltyCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Loyalty): %v", err)
	}
}

// GetLoyaltyCacheClient returns the Redis client for the loyalty ledger.
func GetLoyaltyCacheClient() *redis.Client {
	if LoyaltyCacheClient == nil {
		InitLoyaltyCache()
	}
	return LoyaltyCacheClient
}

// InitRedis eagerly initializes all Redis clients at startup.
func InitRedis() {
	InitCache()
	InitLoyaltyCache()
}
