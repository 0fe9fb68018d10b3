package memory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// UserRepository implementa repository.UserRepository en memoria.
type UserRepository struct {
	t *table[entity.User]
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository crea el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable(
		func(u *entity.User) string { return u.ID },
		func(u *entity.User) *entity.User {
			c := *u
			c.Permissions = cloneStrings(u.Permissions)
			return &c
		},
		func(a, b *entity.User) string {
			if strings.EqualFold(a.Email, b.Email) {
				return "email"
			}
			return ""
		},
	)}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	return r.t.insert(u)
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.t.get(id), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.t.first(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	// lastLogin sólo lo escribe TouchLastLogin
	return r.t.replace(u, func(stored, next *entity.User) { next.LastLogin = stored.LastLogin })
}

func (r *UserRepository) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return r.t.mutate(id, func(u *entity.User) {
		u.LastLogin = &at
	})
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *UserRepository) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	return r.t.filter(userMatcher(f)), nil
}

func (r *UserRepository) ListPaged(_ context.Context, f repository.UserFilter, page repository.Page) ([]*entity.User, int64, error) {
	page = page.Normalize()
	rows, total := paginate(r.t.filter(userMatcher(f)), page.Offset(), page.Limit)
	return rows, total, nil
}

func userMatcher(f repository.UserFilter) func(*entity.User) bool {
	return func(u *entity.User) bool {
		return eqOrEmpty(f.Role, u.Role) && anyContainsFold(f.Search, u.FullName, u.Email)
	}
}
