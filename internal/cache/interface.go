package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const CatalogKeyPrefix = "catalog"

// CatalogProductsKey holds the store's product list as last read from postgres.
var CatalogProductsKey = Key(CatalogKeyPrefix, "products")
