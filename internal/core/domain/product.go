package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

// Product is a catalog record. Records are never hard-deleted; IsDeleted is
// a soft-delete flag and every listing or analytics query must exclude
// flagged records.
//
// JSON field names follow the public API contract (_id, image_url,
// isDeleted, createdAt, updatedAt) so existing clients keep working.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	SKU         string    `json:"sku"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Price       float64   `json:"price"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TypeCount is one row of the grouped-by-type rollup.
type TypeCount struct {
	Type  string `json:"_id"`
	Count int64  `json:"count"`
}

// StockSummary aggregates the whole (non-deleted) catalog.
// TotalValue is the sum of price*quantity across all records.
type StockSummary struct {
	TotalQuantity int64   `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
}
