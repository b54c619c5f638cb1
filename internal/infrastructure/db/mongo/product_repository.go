package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stockroom/inventory-system/internal/core/domain"
	"github.com/stockroom/inventory-system/internal/core/ports"
)

const collectionProducts = "products"

// ProductRepository implements ports.ProductRepository using MongoDB.
// List, CountByType, and StockTotals all apply the soft-delete filter
// unconditionally; the only way to see a deleted record is FindByID.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	SKU         string             `bson:"sku"`
	ImageURL    string             `bson:"image_url"`
	Description string             `bson:"description"`
	Quantity    int64              `bson:"quantity"`
	Price       float64            `bson:"price"`
	IsDeleted   bool               `bson:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		Name:        p.Name,
		Type:        p.Type,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var mp mongoProduct
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return toDomainProduct(mp), nil
}

// UpdateByID merges the provided fields with $set and returns the updated
// document. Single-document updates are atomic on the server; there is no
// optimistic concurrency, a concurrent update is last-write-wins.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.SKU != nil {
		set["sku"] = *update.SKU
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.IsDeleted != nil {
		set["isDeleted"] = *update.IsDeleted
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mp mongoProduct
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return toDomainProduct(mp), nil
}

// List returns a page of non-deleted products matching filter and the total
// count before pagination.
func (r *ProductRepository) List(ctx context.Context, f ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := notDeletedFilter()
	if !f.CreatedAfter.IsZero() {
		filter["createdAt"] = bson.M{"$gte": f.CreatedAfter.UTC()}
	}
	if f.QuantityBelow > 0 {
		filter["quantity"] = bson.M{"$lt": f.QuantityBelow}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find()
	if f.SortBy != "" {
		order := 1
		if f.SortDesc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: f.SortBy, Value: order}})
	}
	if f.Page > 0 && f.Limit > 0 {
		opts.SetSkip(int64(f.Page-1) * int64(f.Limit))
	}
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := make([]*domain.Product, 0)
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, toDomainProduct(mp))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}
	return products, total, nil
}

// CountByType groups non-deleted products by type, ordered by count descending.
func (r *ProductRepository) CountByType(ctx context.Context) ([]domain.TypeCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeletedFilter()}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate types: %w", err)
	}
	defer cur.Close(ctx)

	rows := make([]domain.TypeCount, 0)
	for cur.Next(ctx) {
		var row struct {
			Type  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode type count: %w", err)
		}
		rows = append(rows, domain.TypeCount{Type: row.Type, Count: row.Count})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate type counts: %w", err)
	}
	return rows, nil
}

// StockTotals aggregates quantity and price*quantity over non-deleted
// products. An empty collection yields zero totals.
func (r *ProductRepository) StockTotals(ctx context.Context) (*domain.StockSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: notDeletedFilter()}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalQuantity": bson.M{"$sum": "$quantity"},
			"totalValue":    bson.M{"$sum": bson.M{"$multiply": bson.A{"$price", "$quantity"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock totals: %w", err)
	}
	defer cur.Close(ctx)

	summary := &domain.StockSummary{}
	if cur.Next(ctx) {
		var row struct {
			TotalQuantity int64   `bson:"totalQuantity"`
			TotalValue    float64 `bson:"totalValue"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode stock totals: %w", err)
		}
		summary.TotalQuantity = row.TotalQuantity
		summary.TotalValue = row.TotalValue
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock totals: %w", err)
	}
	return summary, nil
}

// EnsureIndexes creates the indexes the analytics queries sort on.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "quantity", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// notDeletedFilter excludes soft-deleted records. $ne matches documents that
// predate the flag entirely.
func notDeletedFilter() bson.M {
	return bson.M{"isDeleted": bson.M{"$ne": true}}
}

func toDomainProduct(mp mongoProduct) *domain.Product {
	return &domain.Product{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Type:        mp.Type,
		SKU:         mp.SKU,
		ImageURL:    mp.ImageURL,
		Description: mp.Description,
		Quantity:    mp.Quantity,
		Price:       mp.Price,
		IsDeleted:   mp.IsDeleted,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}
