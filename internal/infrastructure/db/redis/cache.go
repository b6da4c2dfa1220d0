package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dropshipping/storefront-api/internal/api/metrics"
	"github.com/dropshipping/storefront-api/internal/core/domain"
)

const listCacheTTL = time.Minute

// ListCache caches catalog list responses in Redis.
// Key format: catalog:<category>:<sort_field>:<sort_order>:<skip>:<limit>
type ListCache struct {
	client *redis.Client
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

// Get returns the cached page for a query, with a hit flag.
func (c *ListCache) Get(ctx context.Context, query domain.ListQuery) ([]*domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return products, true, nil
}

// Set stores a page (expires after listCacheTTL).
func (c *ListCache) Set(ctx context.Context, query domain.ListQuery, products []*domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(query), raw, listCacheTTL).Err()
}

func (c *ListCache) key(q domain.ListQuery) string {
	return fmt.Sprintf("catalog:%s:%s:%d:%d:%d", q.Category, q.SortField, q.SortOrder, q.Skip, q.Limit)
}
