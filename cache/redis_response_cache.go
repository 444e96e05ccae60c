package cache

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"dp-server/db"
	"dp-server/models"
)

const RESPONSE_CACHE_KEY_FORMAT_V1 = "date_recs_v1:%s"

// RedisResponseCache stores cached payloads in Redis with a native TTL, so
// warmed entries survive process restarts and can be shared across instances.
type RedisResponseCache struct {
	client db.RedisClient
}

// NewRedisResponseCache initializes a RedisResponseCache with the Redis client.
func NewRedisResponseCache(client db.RedisClient) *RedisResponseCache {
	return &RedisResponseCache{client: client}
}

func (c *RedisResponseCache) Get(key string) ([]models.DatePackage, bool) {
	str, err := c.client.Get(fmt.Sprintf(RESPONSE_CACHE_KEY_FORMAT_V1, key))
	if err != nil {
		// Redis expired the key or it was never written.
		return nil, false
	}

	var payload []models.DatePackage
	if err := json.Unmarshal([]byte(str), &payload); err != nil {
		log.Printf("[RedisResponseCache] Corrupt cache entry for %s: %v", key, err)
		return nil, false
	}
	return payload, true
}

func (c *RedisResponseCache) Put(key string, payload []models.DatePackage, ttl time.Duration) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[RedisResponseCache] Failed to marshal payload for %s: %v", key, err)
		return
	}
	if err := c.client.SetWithTTL(fmt.Sprintf(RESPONSE_CACHE_KEY_FORMAT_V1, key), string(data), ttl); err != nil {
		log.Printf("[RedisResponseCache] Failed to write cache entry for %s: %v", key, err)
	}
}
