package repository

import (
	"context"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

// Convenciones comunes a todos los puertos:
//   - GetBy* devuelve (nil, nil) si no existe.
//   - Update / Delete / Touch* devuelven domain.ErrNotFound si el id no existe.
//   - Create / Update devuelven domain.ErrDuplicate si se viola un índice único.
//   - List* ordena por fecha de creación ascendente.

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByAccName(ctx context.Context, accName string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	TouchLastSync(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetByUPC(ctx context.Context, upc string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	ListPaged(ctx context.Context, filter OrderFilter, page Page) ([]*entity.Order, int64, error)
}

// TaskRepository define el puerto de persistencia para Task (DIP).
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	// AppendLog agrega una línea al final del log sin reescribir el documento.
	AppendLog(ctx context.Context, id, line string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	ListPaged(ctx context.Context, filter UserFilter, page Page) ([]*entity.User, int64, error)
}
