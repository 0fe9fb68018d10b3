// Package analytics contiene los casos de uso de estadísticas del panel:
// dashboard, gráficos y resúmenes de pedidos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// StatsUseCase agrega datos de todas las colecciones. Sólo lectura y sin caché:
// cada llamada recalcula desde el estado actual.
type StatsUseCase struct {
	accounts repository.AccountRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository
	clock    func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(
	accounts repository.AccountRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	tasks repository.TaskRepository,
	users repository.UserRepository,
) *StatsUseCase {
	return &StatsUseCase{
		accounts: accounts,
		products: products,
		orders:   orders,
		tasks:    tasks,
		users:    users,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *StatsUseCase) WithClock(clock func() time.Time) *StatsUseCase {
	uc.clock = clock
	return uc
}

// snapshot lecturas crudas de las cinco colecciones.
type snapshot struct {
	accounts []*entity.Account
	products []*entity.Product
	orders   []*entity.Order
	tasks    []*entity.Task
	users    []*entity.User
}

// Dashboard construye el DashboardResponse.
//
// Cinco lecturas en paralelo; si cualquiera falla se aborta todo el dashboard
// (no hay respuestas parciales). Luego se reduce en memoria.
func (uc *StatsUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var s snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if s.accounts, err = uc.accounts.List(gctx, repository.AccountFilter{}); err != nil {
			return fmt.Errorf("stats: cuentas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.products, err = uc.products.List(gctx, repository.ProductFilter{}); err != nil {
			return fmt.Errorf("stats: productos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.orders, err = uc.orders.List(gctx, repository.OrderFilter{}); err != nil {
			return fmt.Errorf("stats: pedidos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.tasks, err = uc.tasks.List(gctx, repository.TaskFilter{}); err != nil {
			return fmt.Errorf("stats: tareas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.users, err = uc.users.List(gctx, repository.UserFilter{}); err != nil {
			return fmt.Errorf("stats: usuarios: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.clock()
	return &dto.DashboardResponse{
		AccountStats: AccountStats(s.accounts, now),
		ProductStats: ProductStats(s.products, now),
		OrderStats:   OrderStats(s.orders, now),
		TaskStats:    TaskStats(s.tasks),
		UserStats:    UserStats(s.users, now),
		TopProducts:  TopProducts(s.orders, topProductsLimit),
		GeneratedAt:  now,
	}, nil
}

// Charts serie diaria de pedidos (últimos 30 días) y progreso de tareas por estado.
func (uc *StatsUseCase) Charts(ctx context.Context) (*dto.ChartsResponse, error) {
	var (
		orders []*entity.Order
		tasks  []*entity.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if orders, err = uc.orders.List(gctx, repository.OrderFilter{}); err != nil {
			return fmt.Errorf("stats: pedidos: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if tasks, err = uc.tasks.List(gctx, repository.TaskFilter{}); err != nil {
			return fmt.Errorf("stats: tareas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.ChartsResponse{
		DailyOrders:  DailySeries(orders, uc.clock(), windowDays),
		TaskProgress: TaskProgress(tasks),
	}, nil
}

// OrderSummary resumen de pedidos para GET /orders/stats.
func (uc *StatsUseCase) OrderSummary(ctx context.Context) (*dto.OrderStats, error) {
	orders, err := uc.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("stats: pedidos: %w", err)
	}
	out := OrderStats(orders, uc.clock())
	return &out, nil
}

// TrackingStatus pedidos agrupados por trackingStatus.
func (uc *StatsUseCase) TrackingStatus(ctx context.Context) ([]dto.GroupCount, error) {
	orders, err := uc.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("stats: pedidos: %w", err)
	}
	return GroupBy(orders, func(o *entity.Order) string { return o.TrackingStatus }), nil
}
