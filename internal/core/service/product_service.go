package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-system/internal/api/metrics"
	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

const fallbackPageLimit = 10

// ProductService implements catalog reads and writes.
type ProductService struct {
	repo         ports.ProductRepository
	defaultLimit int
	log          zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, defaultLimit int, log zerolog.Logger) *ProductService {
	if defaultLimit <= 0 {
		defaultLimit = fallbackPageLimit
	}
	return &ProductService{repo: repo, defaultLimit: defaultLimit, log: log}
}

// List returns the page-th slice of the catalog. Out-of-range or malformed
// pagination input is normalized, never rejected: page and limit fall back
// to 1 and the configured default, and a page past the end returns an empty
// slice with the correct totals.
func (s *ProductService) List(ctx context.Context, page, limit int) (*ports.ListProductsResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if items == nil {
		items = []*domain.Product{}
	}

	return &ports.ListProductsResult{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		TotalItems: total,
		Items:      items,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new product. Omitted numeric fields arrive as zero values
// which are exactly the entity defaults; negative values are rejected.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Type:        input.Type,
		SKU:         input.SKU,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update merges the provided fields into an existing record. Unset fields
// are left untouched; only the modification timestamp always changes.
// Last write wins, there is no conflict detection on concurrent updates.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	updated, err := s.repo.UpdateByID(ctx, id, ports.ProductUpdate{
		Name:        input.Name,
		Type:        input.Type,
		SKU:         input.SKU,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
		IsDeleted:   input.IsDeleted,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductUpdatesTotal.Inc()
	s.log.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}
