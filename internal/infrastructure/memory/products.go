package memory

import (
	"context"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository en memoria.
type ProductRepository struct {
	t *table[entity.Product]
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository crea el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{t: newTable(
		func(p *entity.Product) string { return p.ID },
		func(p *entity.Product) *entity.Product { c := *p; return &c },
		func(a, b *entity.Product) string {
			switch {
			case a.SKU == b.SKU:
				return "sku"
			case a.UPC == b.UPC:
				return "upc"
			}
			return ""
		},
	)}
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	return r.t.insert(p)
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.t.get(id), nil
}

func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.t.first(func(p *entity.Product) bool { return p.SKU == sku }), nil
}

func (r *ProductRepository) GetByUPC(_ context.Context, upc string) (*entity.Product, error) {
	return r.t.first(func(p *entity.Product) bool { return p.UPC == upc }), nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	return r.t.replace(p, nil)
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *ProductRepository) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool {
		return eqOrEmpty(f.SKU, p.SKU) &&
			eqOrEmpty(f.UPC, p.UPC) &&
			anyContainsFold(f.Search, p.SKU, p.UPC, p.Name)
	}), nil
}
