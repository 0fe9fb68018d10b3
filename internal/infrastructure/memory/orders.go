package memory

import (
	"context"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// OrderRepository implementa repository.OrderRepository en memoria.
type OrderRepository struct {
	t *table[entity.Order]
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository crea el repositorio vacío. Orders no tiene campos únicos.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{t: newTable(
		func(o *entity.Order) string { return o.ID },
		func(o *entity.Order) *entity.Order { c := *o; return &c },
		nil,
	)}
}

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	return r.t.insert(o)
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.t.get(id), nil
}

func (r *OrderRepository) Update(_ context.Context, o *entity.Order) error {
	return r.t.replace(o, nil)
}

func (r *OrderRepository) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *OrderRepository) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	return r.t.filter(orderMatcher(f)), nil
}

func (r *OrderRepository) ListPaged(_ context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	page = page.Normalize()
	rows, total := paginate(r.t.filter(orderMatcher(f)), page.Offset(), page.Limit)
	return rows, total, nil
}

func orderMatcher(f repository.OrderFilter) func(*entity.Order) bool {
	return func(o *entity.Order) bool {
		if !eqOrEmpty(f.OrderNumber, o.OrderNumber) ||
			!eqOrEmpty(f.PONumber, o.PONumber) ||
			!eqOrEmpty(f.TrackingStatus, o.TrackingStatus) ||
			!eqOrEmpty(f.SKU, o.SKU) ||
			!eqOrEmpty(f.Account, o.Account) {
			return false
		}
		if !inRange(o.OrderDate, f.OrderDateFrom, f.OrderDateTo) || !inRange(o.ShipBy, f.ShipByFrom, f.ShipByTo) {
			return false
		}
		if f.MinProfit != nil && (o.NetProfit == nil || o.NetProfit.LessThan(*f.MinProfit)) {
			return false
		}
		if f.MinROI != nil && (o.ROI == nil || o.ROI.LessThan(*f.MinROI)) {
			return false
		}
		return anyContainsFold(f.Search, o.OrderNumber, o.PONumber, o.SKU, o.Name)
	}
}
