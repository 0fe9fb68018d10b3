package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

type productDoc struct {
	ID           string          `bson:"_id"`
	SKU          string          `bson:"sku"`
	UPC          string          `bson:"upc"`
	WMID         string          `bson:"wmid,omitempty"`
	Name         string          `bson:"name"`
	SitePrice    bson.Decimal128 `bson:"site_price"`
	SellingPrice bson.Decimal128 `bson:"selling_price"`
	CreatedAt    time.Time       `bson:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at"`
}

func newProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ID:           p.ID,
		SKU:          p.SKU,
		UPC:          p.UPC,
		WMID:         p.WMID,
		Name:         p.Name,
		SitePrice:    toDec128(p.SitePrice),
		SellingPrice: toDec128(p.SellingPrice),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d *productDoc) entity() *entity.Product {
	return &entity.Product{
		ID:           d.ID,
		SKU:          d.SKU,
		UPC:          d.UPC,
		WMID:         d.WMID,
		Name:         d.Name,
		SitePrice:    fromDec128(d.SitePrice),
		SellingPrice: fromDec128(d.SellingPrice),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// ProductRepository implementa repository.ProductRepository sobre la colección products.
type ProductRepository struct {
	col *mongo.Collection
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return insertOne(ctx, r.col, newProductDoc(p))
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.findOne(ctx, bson.D{{Key: "sku", Value: sku}})
}

func (r *ProductRepository) GetByUPC(ctx context.Context, upc string) (*entity.Product, error) {
	return r.findOne(ctx, bson.D{{Key: "upc", Value: upc}})
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.D) (*entity.Product, error) {
	doc, err := findOne[productDoc](ctx, r.col, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return replaceByID(ctx, r.col, p.ID, newProductDoc(p))
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	filter := bson.D{}
	filter = eq(filter, "sku", f.SKU)
	filter = eq(filter, "upc", f.UPC)
	filter = search(filter, f.Search, "sku", "upc", "name")

	docs, err := findMany[productDoc](ctx, r.col, filter, options.Find().SetSort(sortByCreation))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(docs))
	for i, d := range docs {
		out[i] = d.entity()
	}
	return out, nil
}
