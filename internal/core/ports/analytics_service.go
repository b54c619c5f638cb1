package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// AnalyticsService computes rollups over the product collection. Every
// operation excludes soft-deleted records.
type AnalyticsService interface {
	// TopProducts returns at most limit products ordered by quantity
	// descending. Limit defaults to 5 when not positive.
	TopProducts(ctx context.Context, limit int) ([]*domain.Product, error)
	// TopTypes returns per-type counts ordered by count descending.
	TopTypes(ctx context.Context) ([]domain.TypeCount, error)
	// StockSummary returns total quantity and total stock value.
	StockSummary(ctx context.Context) (*domain.StockSummary, error)
	// RecentProducts returns products created within the last days*24h,
	// newest first. Days defaults to 1 when not positive.
	RecentProducts(ctx context.Context, days int) ([]*domain.Product, error)
	// LowStock returns products with quantity below threshold, ascending by
	// quantity. Threshold defaults to 5 when not positive.
	LowStock(ctx context.Context, threshold int) ([]*domain.Product, error)
}
