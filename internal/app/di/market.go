// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"market_movers/internal/config"
	"market_movers/internal/feature/market/usecase"
	"market_movers/internal/platform/cache"
	"market_movers/internal/platform/externalapi/alphavantage"
	infrahttp "market_movers/internal/platform/http"
	"market_movers/internal/shared/ratelimiter"
)

// NewAlphaVantageClient creates the provider client with a tuned HTTP client,
// metrics registered on reg and, when configured, an outbound throttle.
func NewAlphaVantageClient(cfg *config.Config, reg prometheus.Registerer) *alphavantage.Client {
	opts := []alphavantage.Option{
		alphavantage.WithHTTPClient(infrahttp.NewHTTPClient(cfg.AlphaVantage.Timeout)),
		alphavantage.WithMetrics(alphavantage.NewMetrics(reg)),
	}
	if cfg.Throttle.MaxRequests > 0 && cfg.Throttle.Window > 0 {
		opts = append(opts, alphavantage.WithLimiter(
			ratelimiter.NewRateLimiter(cfg.Throttle.MaxRequests, cfg.Throttle.Window),
		))
	}
	return alphavantage.NewClient(cfg.AlphaVantage, opts...)
}

// NewMarketService wires the market usecase behind the Redis read-through cache.
// A nil rdb leaves the cache in pass-through mode.
func NewMarketService(cfg *config.Config, transport usecase.Transport, lookup usecase.NameLookup, rdb *redis.Client) *cache.CachingMarketService {
	uc := usecase.NewMarketUsecase(transport, lookup, usecase.Options{
		CurrencySymbol:   cfg.Market.CurrencySymbol,
		RateLimitRetries: cfg.Market.RateLimitRetries,
		RateLimitBackoff: cfg.Market.RateLimitBackoff,
	})
	return cache.NewCachingMarketService(rdb, cfg.Cache.MoversTTL, cfg.Cache.OverviewTTL, uc, "market")
}
