// Package cache provides Redis-backed caching for read-heavy queries.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to Redis at the given address. The cache is optional:
// on connection failure the application continues without it.
func InitRedis(addr string) {
	client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetClient returns the shared Redis client, or nil when the cache is disabled.
func GetClient() *redis.Client {
	return client
}

// SetClient replaces the shared client. Intended for tests.
func SetClient(c *redis.Client) {
	client = c
}
