package helpers

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LocalCache is an in-process JSONCache replacement for runs without Redis.
// Values are stored encoded so callers never share memory with the cache.
type LocalCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewLocalCache(ttl, cleanupInterval time.Duration) *LocalCache {
	return &LocalCache{cache: gocache.New(ttl, cleanupInterval), ttl: ttl}
}

func (c *LocalCache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.cache.Set(key, b, c.ttl)
	return nil
}

// Get decodes the cached value into dest. The bool is false on a miss.
func (c *LocalCache) Get(_ context.Context, key string, dest any) (bool, error) {
	v, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		c.cache.Delete(key)
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}
