package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

// fakeCache is an in-memory RollupCache that never fails.
type fakeCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

// failingCache errors on every call, modelling an unreachable Redis.
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("connection refused")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return fmt.Errorf("connection refused")
}

func seedCatalog(t *testing.T, repo *stubProductRepo) {
	t.Helper()
	rows := []struct {
		name string
		typ  string
		qty  int64
		prc  float64
	}{
		{"anvil", "hardware", 40, 10},
		{"hammer", "hardware", 25, 5},
		{"nail", "hardware", 90, 0.1},
		{"rope", "outdoor", 12, 3},
		{"tent", "outdoor", 2, 80},
		{"lamp", "lighting", 7, 15},
	}
	for _, r := range rows {
		if _, err := repo.Create(context.Background(), &domain.Product{
			Name: r.name, Type: r.typ, Quantity: r.qty, Price: r.prc,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			t.Fatalf("seed %s: %v", r.name, err)
		}
	}
	// A soft-deleted record must never show up in any rollup.
	deleted := true
	if _, err := repo.UpdateByID(context.Background(), "p001", ports.ProductUpdate{IsDeleted: &deleted}); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
}

func TestAnalyticsService_TopProducts(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	items, err := svc.TopProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("TopProducts: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Quantity > items[i-1].Quantity {
			t.Fatalf("quantities not non-increasing: %d before %d", items[i-1].Quantity, items[i].Quantity)
		}
	}
	if items[0].Name != "nail" {
		t.Fatalf("top product = %s, want nail", items[0].Name)
	}
	for _, p := range items {
		if p.Name == "anvil" {
			t.Fatalf("soft-deleted product surfaced in rollup")
		}
	}
}

func TestAnalyticsService_TopProducts_DefaultLimit(t *testing.T) {
	repo := newStubProductRepo()
	seedProducts(t, repo, 9)
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	items, err := svc.TopProducts(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopProducts: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("got %d items, want default 5", len(items))
	}
}

func TestAnalyticsService_TopTypes(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	rows, err := svc.TopTypes(context.Background())
	if err != nil {
		t.Fatalf("TopTypes: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// anvil is deleted, so hardware counts 2, outdoor 2, lighting 1.
	if rows[0].Count != 2 || rows[len(rows)-1].Count != 1 {
		t.Fatalf("unexpected counts: %+v", rows)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Count > rows[i-1].Count {
			t.Fatalf("counts not descending: %+v", rows)
		}
	}
}

func TestAnalyticsService_StockSummary(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	summary, err := svc.StockSummary(context.Background())
	if err != nil {
		t.Fatalf("StockSummary: %v", err)
	}
	// Catalog minus the deleted anvil (40 @ 10).
	wantQty := int64(25 + 90 + 12 + 2 + 7)
	wantVal := 25*5.0 + 90*0.1 + 12*3.0 + 2*80.0 + 7*15.0
	if summary.TotalQuantity != wantQty {
		t.Fatalf("totalQuantity = %d, want %d", summary.TotalQuantity, wantQty)
	}
	if summary.TotalValue != wantVal {
		t.Fatalf("totalValue = %v, want %v", summary.TotalValue, wantVal)
	}
}

func TestAnalyticsService_StockSummary_Empty(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	summary, err := svc.StockSummary(context.Background())
	if err != nil {
		t.Fatalf("StockSummary: %v", err)
	}
	if summary.TotalQuantity != 0 || summary.TotalValue != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
}

func TestAnalyticsService_RecentProducts(t *testing.T) {
	repo := newStubProductRepo()
	now := time.Now().UTC()
	for _, p := range []*domain.Product{
		{Name: "fresh", CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "stale", CreatedAt: now.Add(-72 * time.Hour)},
	} {
		if _, err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	items, err := svc.RecentProducts(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecentProducts: %v", err)
	}
	if len(items) != 1 || items[0].Name != "fresh" {
		t.Fatalf("expected only fresh product, got %+v", items)
	}

	// A wider window picks up the stale one too; zero days falls back to 1.
	items, err = svc.RecentProducts(context.Background(), 7)
	if err != nil {
		t.Fatalf("RecentProducts: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "fresh" {
		t.Fatalf("expected newest first, got %+v", items)
	}

	items, err = svc.RecentProducts(context.Background(), 0)
	if err != nil {
		t.Fatalf("RecentProducts: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("default window: got %d items, want 1", len(items))
	}
}

func TestAnalyticsService_LowStock(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	svc := NewAnalyticsService(repo, nil, 0, zerolog.Nop())

	items, err := svc.LowStock(context.Background(), 10)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "tent" || items[1].Name != "lamp" {
		t.Fatalf("expected lowest first, got %+v", items)
	}

	// Default threshold is 5: only the tent (qty 2) qualifies.
	items, err = svc.LowStock(context.Background(), 0)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(items) != 1 || items[0].Name != "tent" {
		t.Fatalf("default threshold: got %+v", items)
	}
}

func TestAnalyticsService_CacheHitSkipsRepository(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	cache := newFakeCache()
	svc := NewAnalyticsService(repo, cache, time.Minute, zerolog.Nop())

	first, err := svc.TopProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected rollup to be cached, sets = %d", cache.sets)
	}

	second, err := svc.TopProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("cache hit still queried repository, calls = %d", repo.listCalls)
	}
	if len(second) != len(first) || second[0].Name != first[0].Name {
		t.Fatalf("cached result diverges: %+v vs %+v", second, first)
	}

	// A different limit is a different cache key.
	if _, err := svc.TopProducts(context.Background(), 2); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected distinct cache key per limit, calls = %d", repo.listCalls)
	}
}

func TestAnalyticsService_CacheFailureFallsThrough(t *testing.T) {
	repo := newStubProductRepo()
	seedCatalog(t, repo)
	svc := NewAnalyticsService(repo, failingCache{}, time.Minute, zerolog.Nop())

	summary, err := svc.StockSummary(context.Background())
	if err != nil {
		t.Fatalf("StockSummary: %v", err)
	}
	if summary.TotalQuantity == 0 {
		t.Fatalf("expected live totals despite cache failure")
	}
	if repo.aggCalls != 1 {
		t.Fatalf("expected repository fallback, aggCalls = %d", repo.aggCalls)
	}
}
