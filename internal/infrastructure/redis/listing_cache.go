package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

const listingKey = "alma:operations:listing"

// ListingCache keeps the unfiltered operation listing as a disposable
// derived view. Writes go through Invalidate before anything else reads.
type ListingCache struct {
	client *redis.Client
}

func NewListingCache(addr, password string, db int) *ListingCache {
	return &ListingCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *ListingCache) Get(ctx context.Context) ([]*domain.Operation, error) {
	payload, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing from redis: %w", err)
	}

	var operations []*domain.Operation
	if err := json.Unmarshal(payload, &operations); err != nil {
		return nil, fmt.Errorf("decode cached listing: %w", err)
	}

	return operations, nil
}

func (c *ListingCache) Set(ctx context.Context, operations []*domain.Operation, ttl time.Duration) error {
	payload, err := json.Marshal(operations)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}

	if err := c.client.Set(ctx, listingKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("set listing in redis: %w", err)
	}

	return nil
}

func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		return fmt.Errorf("invalidate listing in redis: %w", err)
	}
	return nil
}

func (c *ListingCache) Close() error {
	return c.client.Close()
}
