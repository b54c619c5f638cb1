package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-system/internal/api/metrics"
	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

const (
	defaultTopN        = 5
	defaultRecentDays  = 1
	defaultLowStockMax = 5
)

// RollupCache abstracts the short-lived analytics cache (Redis). A failing
// cache must behave like a miss: Get returns (nil, nil) and Set is a no-op.
type RollupCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// AnalyticsService computes rollups over the product collection. Every query
// excludes soft-deleted records; the repository enforces that filter
// unconditionally so no call path can forget it.
type AnalyticsService struct {
	repo     ports.ProductRepository
	cache    RollupCache
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewAnalyticsService(repo ports.ProductRepository, cache RollupCache, cacheTTL time.Duration, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: log}
}

// TopProducts returns at most limit products ordered by quantity descending.
// Ties keep the store's natural order.
func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = defaultTopN
	}

	key := fmt.Sprintf("top-products:%d", limit)
	var cached []*domain.Product
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	items, _, err := s.repo.List(ctx, ports.ListProductsFilter{
		SortBy:   ports.SortByQuantity,
		SortDesc: true,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, items)
	return items, nil
}

// TopTypes returns per-type counts ordered by count descending.
func (s *AnalyticsService) TopTypes(ctx context.Context) ([]domain.TypeCount, error) {
	const key = "top-types"
	var cached []domain.TypeCount
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, rows)
	return rows, nil
}

// StockSummary returns the total quantity and total stock value of the
// catalog. An empty catalog yields zero totals.
func (s *AnalyticsService) StockSummary(ctx context.Context) (*domain.StockSummary, error) {
	const key = "stock-summary"
	var cached domain.StockSummary
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.repo.StockTotals(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, summary)
	return summary, nil
}

// RecentProducts returns products created within the last days*24h, newest
// first. Days defaults to 1 on absent or invalid input.
func (s *AnalyticsService) RecentProducts(ctx context.Context, days int) ([]*domain.Product, error) {
	if days <= 0 {
		days = defaultRecentDays
	}

	items, _, err := s.repo.List(ctx, ports.ListProductsFilter{
		CreatedAfter: time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour),
		SortBy:       ports.SortByCreatedAt,
		SortDesc:     true,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// LowStock returns products with quantity below threshold, lowest first.
func (s *AnalyticsService) LowStock(ctx context.Context, threshold int) ([]*domain.Product, error) {
	if threshold <= 0 {
		threshold = defaultLowStockMax
	}

	items, _, err := s.repo.List(ctx, ports.ListProductsFilter{
		QuantityBelow: int64(threshold),
		SortBy:        ports.SortByQuantity,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// fromCache loads a cached rollup into dest, reporting whether it was found.
func (s *AnalyticsService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == nil {
		metrics.AnalyticsCacheTotal.WithLabelValues(key, "miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn().Err(err).Str("rollup", key).Msg("discarding undecodable cache entry")
		metrics.AnalyticsCacheTotal.WithLabelValues(key, "miss").Inc()
		return false
	}
	metrics.AnalyticsCacheTotal.WithLabelValues(key, "hit").Inc()
	return true
}

func (s *AnalyticsService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("rollup", key).Msg("failed to cache rollup")
	}
}
