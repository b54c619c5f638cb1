package handler

import "github.com/stockroom/inventory-system/internal/core/domain"

// Numeric fields use pointers so an omitted field is distinguishable from an
// explicit zero: creation defaults omitted values to zero, updates leave
// omitted fields untouched.

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type"`
	SKU         string   `json:"sku"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	SKU         *string  `json:"sku"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	IsDeleted   *bool    `json:"isDeleted"`
}

// createProductResponse matches the envelope the previous backend emitted.
type createProductResponse struct {
	ProductID string          `json:"product_id"`
	Data      *domain.Product `json:"data"`
}

// listProductsResponse is the paginated catalog envelope.
type listProductsResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	TotalItems int64             `json:"totalItems"`
	Data       []*domain.Product `json:"data"`
}
