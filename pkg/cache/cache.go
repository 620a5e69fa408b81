package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// defaultOperationTimeout bounds individual Redis operations.
const defaultOperationTimeout = 5 * time.Second

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client, enabled: true}, nil
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.enabled {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

func categoryKey(categoryID, languageID uint) string {
	return fmt.Sprintf("category:%d:lang:%d", categoryID, languageID)
}

func (c *Cache) CacheCategory(categoryID, languageID uint, category interface{}) error {
	return c.Set(categoryKey(categoryID, languageID), category, 2*time.Hour)
}

func (c *Cache) GetCachedCategory(categoryID, languageID uint, dest interface{}) error {
	return c.Get(categoryKey(categoryID, languageID), dest)
}

func (c *Cache) InvalidateCategory(categoryID uint) error {
	return c.DeletePattern(fmt.Sprintf("category:%d:lang:*", categoryID))
}

func (c *Cache) CacheListing(cacheKey string, listing interface{}) error {
	return c.Set(cacheKey, listing, 5*time.Minute)
}

func (c *Cache) GetCachedListing(cacheKey string, dest interface{}) error {
	return c.Get(cacheKey, dest)
}

func (c *Cache) InvalidateListings() error {
	return c.DeletePattern("listing:*")
}
