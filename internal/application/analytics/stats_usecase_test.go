package analytics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/internal/application/analytics"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newStats(s *memory.Store) *analytics.StatsUseCase {
	return analytics.NewStatsUseCase(s.Accounts(), s.Products(), s.Orders(), s.Tasks(), s.Users()).
		WithClock(func() time.Time { return fixedNow })
}

func seedAccounts(t *testing.T, s *memory.Store, marketplaces ...string) {
	t.Helper()
	for i, mk := range marketplaces {
		require.NoError(t, s.Accounts().Create(context.Background(), &entity.Account{
			ID:          fmt.Sprintf("acc-%d", i),
			Marketplace: mk,
			AccName:     fmt.Sprintf("cuenta-%d", i),
			Status:      entity.AccountStatusActive,
			CreatedAt:   fixedNow.AddDate(0, 0, -i*10),
		}))
	}
}

func order(id, sku, tracking string, qty int, selling string, orderDate time.Time) *entity.Order {
	o := &entity.Order{
		ID:             id,
		SKU:            sku,
		Name:           "Producto " + sku,
		TrackingStatus: tracking,
		Quantity:       qty,
		SellingPrice:   dec(selling),
		SourcingPrice:  dec("1"),
		OrderDate:      orderDate,
		CreatedAt:      orderDate,
	}
	o.DeriveProfit()
	return o
}

func TestDashboard_ByMarketplace(t *testing.T) {
	s := memory.NewStore()
	seedAccounts(t, s, "eBay", "eBay", "Walmart", "AMZ", "AMZ")

	out, err := newStats(s).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.AccountStats.Total)
	assert.Equal(t, []dto.GroupCount{
		{Key: "AMZ", Count: 2},
		{Key: "eBay", Count: 2},
		{Key: "Walmart", Count: 1},
	}, out.AccountStats.ByMarketplace, "3 grupos, count desc y key asc")
	// creadas hace 0, 10, 20, 30 y 40 días
	assert.Equal(t, 4, out.AccountStats.NewThisMonth)
}

func TestDashboard_OrdenesYTopProductos(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	orders := []*entity.Order{
		order("o1", "SKU-A", "Shipped", 2, "10", fixedNow.AddDate(0, 0, -1)),
		order("o2", "SKU-B", "Delivered", 5, "4", fixedNow.AddDate(0, 0, -2)),
		order("o3", "SKU-A", "Shipped", 3, "10", fixedNow.AddDate(0, -2, 0)),
		order("o4", "SKU-C", "Shipped", 5, "1", fixedNow.AddDate(0, -8, 0)),
	}
	for _, o := range orders {
		require.NoError(t, s.Orders().Create(ctx, o))
	}

	out, err := newStats(s).Dashboard(ctx)
	require.NoError(t, err)

	os := out.OrderStats
	assert.Equal(t, 4, os.Total)
	assert.Equal(t, 2, os.RecentOrders)
	assert.Equal(t, 15, os.TotalQuantity)
	assert.True(t, os.TotalRevenue.Equal(dec("75")), "20 + 20 + 30 + 5")
	assert.Equal(t, []dto.GroupCount{{Key: "Shipped", Count: 3}, {Key: "Delivered", Count: 1}}, os.ByTrackingStatus)

	require.Len(t, os.Monthly, 6)
	assert.Equal(t, 2026, os.Monthly[0].Year)
	assert.Equal(t, 5, os.Monthly[0].Month, "mayo .. octubre")
	assert.Equal(t, 10, os.Monthly[5].Month)
	assert.Equal(t, 2, os.Monthly[5].Orders)
	assert.True(t, os.Monthly[5].Revenue.Equal(dec("40")))
	assert.Equal(t, 1, os.Monthly[3].Orders, "agosto")

	require.Len(t, out.TopProducts, 3)
	// SKU-A 5 unidades, SKU-B 5, SKU-C 5: estable, gana el primero en aparecer
	assert.Equal(t, []string{"SKU-A", "SKU-B", "SKU-C"},
		[]string{out.TopProducts[0].SKU, out.TopProducts[1].SKU, out.TopProducts[2].SKU})
	assert.Equal(t, 5, out.TopProducts[0].Quantity)
}

func TestTopProducts_LimiteYOrden(t *testing.T) {
	var orders []*entity.Order
	for i := 1; i <= 7; i++ {
		orders = append(orders, order(fmt.Sprintf("o%d", i), fmt.Sprintf("SKU-%d", i), "x", i, "1", fixedNow))
	}
	top := analytics.TopProducts(orders, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "SKU-7", top[0].SKU)
	assert.Equal(t, "SKU-3", top[4].SKU)
}

func TestCharts_SerieDiariaYProgreso(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Orders().Create(ctx, order("o1", "A", "x", 1, "10", fixedNow)))
	require.NoError(t, s.Orders().Create(ctx, order("o2", "A", "x", 2, "10", fixedNow)))
	require.NoError(t, s.Orders().Create(ctx, order("o3", "A", "x", 1, "10", fixedNow.AddDate(0, 0, -29))))
	require.NoError(t, s.Orders().Create(ctx, order("o4", "A", "x", 1, "10", fixedNow.AddDate(0, 0, -30))))
	for i, tk := range []struct {
		status   string
		progress int
	}{{"Running", 20}, {"Running", 45}, {"Completed", 100}} {
		require.NoError(t, s.Tasks().Create(ctx, &entity.Task{ID: fmt.Sprintf("t%d", i), Status: tk.status, Progress: tk.progress}))
	}

	out, err := newStats(s).Charts(ctx)
	require.NoError(t, err)

	require.Len(t, out.DailyOrders, 30)
	assert.Equal(t, "2026-09-15", out.DailyOrders[0].Date)
	assert.Equal(t, 1, out.DailyOrders[0].Orders)
	last := out.DailyOrders[29]
	assert.Equal(t, "2026-10-14", last.Date)
	assert.Equal(t, 2, last.Orders)
	assert.True(t, last.Revenue.Equal(dec("30")))

	assert.Equal(t, []dto.TaskProgressPoint{
		{Status: "Running", Count: 2, AverageProgress: 32.5},
		{Status: "Completed", Count: 1, AverageProgress: 100},
	}, out.TaskProgress)
}

func TestTrackingStatus(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Orders().Create(ctx, order("o1", "A", "In Transit", 1, "1", fixedNow)))
	require.NoError(t, s.Orders().Create(ctx, order("o2", "A", "Delivered", 1, "1", fixedNow)))
	require.NoError(t, s.Orders().Create(ctx, order("o3", "A", "Delivered", 1, "1", fixedNow)))

	groups, err := newStats(s).TrackingStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.GroupCount{{Key: "Delivered", Count: 2}, {Key: "In Transit", Count: 1}}, groups)
}

// failingTasks simula una colección que no responde.
type failingTasks struct{ repository.TaskRepository }

func (failingTasks) List(context.Context, repository.TaskFilter) ([]*entity.Task, error) {
	return nil, errors.New("conexión rechazada")
}

func TestDashboard_FallaSiUnaLecturaFalla(t *testing.T) {
	s := memory.NewStore()
	seedAccounts(t, s, "eBay")
	uc := analytics.NewStatsUseCase(s.Accounts(), s.Products(), s.Orders(), failingTasks{}, s.Users())

	out, err := uc.Dashboard(context.Background())
	assert.Nil(t, out, "no hay respuestas parciales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tareas")
}

func TestDashboard_SinDatos(t *testing.T) {
	out, err := newStats(memory.NewStore()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.OrderStats.Total)
	assert.Empty(t, out.AccountStats.ByMarketplace)
	assert.NotNil(t, out.TopProducts)
	assert.True(t, out.OrderStats.AverageROI.IsZero())
}
