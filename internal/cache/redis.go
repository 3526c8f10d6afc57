package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"stock-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Catalog cache keys
const (
	ActiveItemsKey = "catalog:items:active"
	CategoriesKey  = "catalog:categories"

	catalogTTL = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. A failed connection is not fatal:
// the client stays nil and every cache call degrades to a miss, so the
// application keeps serving straight from Postgres.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when the cache is unavailable
func GetClient() *redis.Client {
	return client
}

// GetCachedActiveItems returns the cached active-items listing if available
func GetCachedActiveItems(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, ActiveItemsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheActiveItems caches the active-items listing
func CacheActiveItems(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, ActiveItemsKey, data, catalogTTL)
}

// GetCachedCategories returns the cached category listing if available
func GetCachedCategories(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, CategoriesKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheCategories caches the category listing
func CacheCategories(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, CategoriesKey, data, catalogTTL)
}

// InvalidateCatalog drops every catalog listing key. Called after any
// category or item write so readers never see a stale name or price.
func InvalidateCatalog(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, ActiveItemsKey, CategoriesKey).Err(); err != nil {
		log.Printf("[Cache] Failed to invalidate catalog keys: %v", err)
	}
}
