package ports

import (
	"context"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// CreateProductInput carries the fields for a new product. Numeric fields
// default to zero when the request omits them.
type CreateProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int64
	Price       float64
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Type        *string
	SKU         *string
	ImageURL    *string
	Description *string
	Quantity    *int64
	Price       *float64
	IsDeleted   *bool
}

// ListProductsResult is one page of the catalog plus pagination metadata.
type ListProductsResult struct {
	Page       int
	Limit      int
	TotalPages int
	TotalItems int64
	Items      []*domain.Product
}

// ProductService defines catalog use cases.
type ProductService interface {
	// List returns the page-th slice of the catalog. Page and limit are
	// normalized to safe defaults; a page beyond range yields empty items.
	List(ctx context.Context, page, limit int) (*ListProductsResult, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
}
