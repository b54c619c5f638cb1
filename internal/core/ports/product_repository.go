package ports

import (
	"context"
	"time"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// Sortable fields accepted by ListProductsFilter.
const (
	SortByQuantity  = "quantity"
	SortByCreatedAt = "createdAt"
)

// ListProductsFilter carries the query surface the core needs from the
// store: filter, sort, and pagination. Soft-deleted records are always
// excluded by implementations; there is no switch to include them.
type ListProductsFilter struct {
	CreatedAfter  time.Time // optional: createdAt >= CreatedAfter
	QuantityBelow int64     // optional when > 0: quantity < QuantityBelow
	SortBy        string    // optional: SortByQuantity or SortByCreatedAt
	SortDesc      bool
	Page          int // 1-based; <= 0 means no skip
	Limit         int // <= 0 means no limit
}

// ProductUpdate is a partial-field merge: only non-nil fields are written.
type ProductUpdate struct {
	Name        *string
	Type        *string
	SKU         *string
	ImageURL    *string
	Description *string
	Quantity    *int64
	Price       *float64
	IsDeleted   *bool
}

// ProductRepository defines persistence operations for products.
// Implementations map a missing record to domain.ErrProductNotFound.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// UpdateByID merges the provided fields into the record, bumps the
	// modification timestamp, and returns the updated document.
	UpdateByID(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	// List returns a page of products matching filter and the total count of
	// matching (non-deleted) records before pagination.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	// CountByType groups non-deleted products by type, ordered by count
	// descending.
	CountByType(ctx context.Context) ([]domain.TypeCount, error)
	// StockTotals aggregates quantity and price*quantity over all non-deleted
	// products. An empty collection yields zero totals, not an error.
	StockTotals(ctx context.Context) (*domain.StockSummary, error)
}
