package client

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/cache"
	"github.com/tair/shopfront/pkg/logger"
)

// CachedProductGateway memoises successful product lookups. Missing
// products and failures are never cached, and a broken cache falls back to
// the wrapped gateway.
type CachedProductGateway struct {
	next  domain.ProductGateway
	store cache.Store
	ttl   time.Duration
}

// NewCachedProductGateway wraps next with a cache of the given TTL
func NewCachedProductGateway(next domain.ProductGateway, store cache.Store, ttl time.Duration) *CachedProductGateway {
	return &CachedProductGateway{next: next, store: store, ttl: ttl}
}

// Exists reports whether the product is known
func (g *CachedProductGateway) Exists(ctx context.Context, productID int64) (bool, error) {
	details, err := g.GetDetails(ctx, productID)
	if err != nil {
		return false, err
	}
	return details != nil, nil
}

// GetDetails serves from the cache when possible
func (g *CachedProductGateway) GetDetails(ctx context.Context, productID int64) (*domain.ProductDetails, error) {
	if productID <= 0 {
		return g.next.GetDetails(ctx, productID)
	}
	key := fmt.Sprintf("product:%d", productID)

	raw, ok, err := g.store.Get(ctx, key)
	switch {
	case err != nil:
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Product cache read failed")
	case ok:
		var details domain.ProductDetails
		if err := json.Unmarshal(raw, &details); err == nil {
			return &details, nil
		}
		logger.Warn(ctx).Str("key", key).Msg("Discarding undecodable product cache entry")
	}

	details, err := g.next.GetDetails(ctx, productID)
	if err != nil || details == nil {
		return details, err
	}

	if encoded, err := json.Marshal(details); err == nil {
		if err := g.store.Set(ctx, key, encoded, g.ttl); err != nil {
			logger.Warn(ctx).Err(err).Str("key", key).Msg("Product cache write failed")
		}
	}
	return details, nil
}
