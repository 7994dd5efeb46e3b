// Package cache provides caching decorators for feature services.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"market_movers/internal/feature/market/domain/entity"
	"market_movers/internal/platform/logger"
)

// MarketService is the read side of the market feature.
type MarketService interface {
	FetchMovers(ctx context.Context) (entity.MoversSnapshot, error)
	FetchCompanyOverview(ctx context.Context, symbol string) (entity.CompanyOverview, error)
}

// CachingMarketService decorates a MarketService with Redis read-through caching.
// Failed fetches are never cached.
type CachingMarketService struct {
	inner       MarketService
	rdb         *redis.Client
	moversTTL   time.Duration
	overviewTTL time.Duration
	namespace   string
	now         func() time.Time
}

var _ MarketService = (*CachingMarketService)(nil)

// NewCachingMarketService decorates a MarketService with Redis caching.
// Zero TTLs default to 5 minutes for movers and 1 hour for overviews; an empty
// namespace uses "market". A nil rdb turns the decorator into a pass-through.
func NewCachingMarketService(rdb *redis.Client, moversTTL, overviewTTL time.Duration, inner MarketService, namespace string) *CachingMarketService {
	if moversTTL <= 0 {
		moversTTL = 5 * time.Minute
	}
	if overviewTTL <= 0 {
		overviewTTL = time.Hour
	}
	if namespace == "" {
		namespace = "market"
	}
	return &CachingMarketService{
		inner:       inner,
		rdb:         rdb,
		moversTTL:   moversTTL,
		overviewTTL: overviewTTL,
		namespace:   namespace,
		now:         time.Now,
	}
}

// FetchMovers returns the cached snapshot or fetches and caches a fresh one.
// The entry never outlives the provider's daily refresh.
func (c *CachingMarketService) FetchMovers(ctx context.Context) (entity.MoversSnapshot, error) {
	if c.rdb == nil {
		return c.inner.FetchMovers(ctx)
	}

	key := c.namespace + ":movers"

	var out entity.MoversSnapshot
	if c.get(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.FetchMovers(ctx)
	if err != nil {
		return entity.MoversSnapshot{}, err
	}
	c.set(ctx, key, out, capTTL(c.now(), c.moversTTL))
	return out, nil
}

// FetchCompanyOverview returns the cached overview or fetches and caches a fresh one.
func (c *CachingMarketService) FetchCompanyOverview(ctx context.Context, symbol string) (entity.CompanyOverview, error) {
	if c.rdb == nil {
		return c.inner.FetchCompanyOverview(ctx, symbol)
	}

	key := c.overviewKey(symbol)

	var out entity.CompanyOverview
	if c.get(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.FetchCompanyOverview(ctx, symbol)
	if err != nil {
		return entity.CompanyOverview{}, err
	}
	c.set(ctx, key, out, c.overviewTTL)
	return out, nil
}

// get decodes a cached entry into v. Corrupted entries are deleted.
func (c *CachingMarketService) get(ctx context.Context, key string, v any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		logger.L().Warn().Str("key", key).Err(err).Msg("dropping corrupted cache entry")
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set stores v on a best effort basis.
func (c *CachingMarketService) set(ctx context.Context, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		logger.L().Warn().Str("key", key).Err(err).Msg("cache write failed")
	}
}

func (c *CachingMarketService) overviewKey(symbol string) string {
	return fmt.Sprintf("%s:overview:%s", c.namespace, safe(strings.ToUpper(strings.TrimSpace(symbol))))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
