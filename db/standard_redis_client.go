package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// StandardRedisClient struct holds the Redis client and context
type StandardRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewStandardRedisClient initializes a new Redis client with default options
func NewStandardRedisClient(ctx context.Context, client *redis.Client) *StandardRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &StandardRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiry
func (r *StandardRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that Redis expires after ttl
func (r *StandardRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *StandardRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *StandardRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *StandardRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *StandardRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *StandardRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
