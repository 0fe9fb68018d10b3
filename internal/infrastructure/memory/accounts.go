package memory

import (
	"context"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// AccountRepository implementa repository.AccountRepository en memoria.
type AccountRepository struct {
	t *table[entity.Account]
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository crea el repositorio vacío.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{t: newTable(
		func(a *entity.Account) string { return a.ID },
		func(a *entity.Account) *entity.Account { c := *a; return &c },
		func(a, b *entity.Account) string {
			if a.AccName == b.AccName {
				return "accName"
			}
			return ""
		},
	)}
}

func (r *AccountRepository) Create(_ context.Context, a *entity.Account) error {
	return r.t.insert(a)
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (*entity.Account, error) {
	return r.t.get(id), nil
}

func (r *AccountRepository) GetByAccName(_ context.Context, accName string) (*entity.Account, error) {
	return r.t.first(func(a *entity.Account) bool { return a.AccName == accName }), nil
}

func (r *AccountRepository) Update(_ context.Context, a *entity.Account) error {
	// lastSync sólo lo escribe TouchLastSync
	return r.t.replace(a, func(stored, next *entity.Account) { next.LastSync = stored.LastSync })
}

func (r *AccountRepository) TouchLastSync(_ context.Context, id string, at time.Time) error {
	return r.t.mutate(id, func(a *entity.Account) {
		a.LastSync = &at
		a.UpdatedAt = at
	})
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *AccountRepository) List(_ context.Context, f repository.AccountFilter) ([]*entity.Account, error) {
	return r.t.filter(func(a *entity.Account) bool {
		return eqOrEmpty(f.Status, a.Status) && eqOrEmpty(f.Marketplace, a.Marketplace)
	}), nil
}
