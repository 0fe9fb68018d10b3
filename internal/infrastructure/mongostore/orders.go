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

type orderDoc struct {
	ID                      string           `bson:"_id"`
	TrackingStatus          string           `bson:"tracking_status"`
	OrderNumEmail           string           `bson:"order_num_email,omitempty"`
	PONumber                string           `bson:"po_number"`
	OrderNumber             string           `bson:"order_number"`
	OrderDate               time.Time        `bson:"order_date"`
	ShipBy                  time.Time        `bson:"ship_by"`
	CustomerShippingAddress string           `bson:"customer_shipping_address"`
	Quantity                int              `bson:"quantity"`
	SKU                     string           `bson:"sku"`
	UPC                     string           `bson:"upc"`
	Name                    string           `bson:"name"`
	Account                 string           `bson:"account"`
	SellingPrice            bson.Decimal128  `bson:"selling_price"`
	SourcingPrice           bson.Decimal128  `bson:"sourcing_price"`
	WalmartFee              *bson.Decimal128 `bson:"walmart_fee,omitempty"`
	NetProfit               *bson.Decimal128 `bson:"net_profit,omitempty"`
	ROI                     *bson.Decimal128 `bson:"roi,omitempty"`
	Commission              *bson.Decimal128 `bson:"commission,omitempty"`
	CreatedAt               time.Time        `bson:"created_at"`
	UpdatedAt               time.Time        `bson:"updated_at"`
}

func newOrderDoc(o *entity.Order) *orderDoc {
	return &orderDoc{
		ID:                      o.ID,
		TrackingStatus:          o.TrackingStatus,
		OrderNumEmail:           o.OrderNumEmail,
		PONumber:                o.PONumber,
		OrderNumber:             o.OrderNumber,
		OrderDate:               o.OrderDate,
		ShipBy:                  o.ShipBy,
		CustomerShippingAddress: o.CustomerShippingAddress,
		Quantity:                o.Quantity,
		SKU:                     o.SKU,
		UPC:                     o.UPC,
		Name:                    o.Name,
		Account:                 o.Account,
		SellingPrice:            toDec128(o.SellingPrice),
		SourcingPrice:           toDec128(o.SourcingPrice),
		WalmartFee:              toDec128Ptr(o.WalmartFee),
		NetProfit:               toDec128Ptr(o.NetProfit),
		ROI:                     toDec128Ptr(o.ROI),
		Commission:              toDec128Ptr(o.Commission),
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func (d *orderDoc) entity() *entity.Order {
	return &entity.Order{
		ID:                      d.ID,
		TrackingStatus:          d.TrackingStatus,
		OrderNumEmail:           d.OrderNumEmail,
		PONumber:                d.PONumber,
		OrderNumber:             d.OrderNumber,
		OrderDate:               d.OrderDate.UTC(),
		ShipBy:                  d.ShipBy.UTC(),
		CustomerShippingAddress: d.CustomerShippingAddress,
		Quantity:                d.Quantity,
		SKU:                     d.SKU,
		UPC:                     d.UPC,
		Name:                    d.Name,
		Account:                 d.Account,
		SellingPrice:            fromDec128(d.SellingPrice),
		SourcingPrice:           fromDec128(d.SourcingPrice),
		WalmartFee:              fromDec128Ptr(d.WalmartFee),
		NetProfit:               fromDec128Ptr(d.NetProfit),
		ROI:                     fromDec128Ptr(d.ROI),
		Commission:              fromDec128Ptr(d.Commission),
		CreatedAt:               d.CreatedAt.UTC(),
		UpdatedAt:               d.UpdatedAt.UTC(),
	}
}

// OrderRepository implementa repository.OrderRepository sobre la colección orders.
type OrderRepository struct {
	col *mongo.Collection
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return insertOne(ctx, r.col, newOrderDoc(o))
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := findOne[orderDoc](ctx, r.col, bson.D{{Key: "_id", Value: id}})
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *OrderRepository) Update(ctx context.Context, o *entity.Order) error {
	return replaceByID(ctx, r.col, o.ID, newOrderDoc(o))
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

func (r *OrderRepository) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	docs, err := findMany[orderDoc](ctx, r.col, orderFilter(f), options.Find().SetSort(sortByCreation))
	if err != nil {
		return nil, err
	}
	return toOrders(docs), nil
}

func (r *OrderRepository) ListPaged(ctx context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	page = page.Normalize()
	docs, total, err := findPage[orderDoc](ctx, r.col, orderFilter(f), page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return toOrders(docs), total, nil
}

func orderFilter(f repository.OrderFilter) bson.D {
	filter := bson.D{}
	filter = eq(filter, "order_number", f.OrderNumber)
	filter = eq(filter, "po_number", f.PONumber)
	filter = eq(filter, "tracking_status", f.TrackingStatus)
	filter = eq(filter, "sku", f.SKU)
	filter = eq(filter, "account", f.Account)
	filter = dateRange(filter, "order_date", f.OrderDateFrom, f.OrderDateTo)
	filter = dateRange(filter, "ship_by", f.ShipByFrom, f.ShipByTo)
	filter = minDecimal(filter, "net_profit", f.MinProfit)
	filter = minDecimal(filter, "roi", f.MinROI)
	return search(filter, f.Search, "order_number", "po_number", "sku", "name")
}

func toOrders(docs []*orderDoc) []*entity.Order {
	out := make([]*entity.Order, len(docs))
	for i, d := range docs {
		out[i] = d.entity()
	}
	return out
}
