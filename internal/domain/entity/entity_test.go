package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOrderDeriveProfit_SinOpcionales(t *testing.T) {
	o := &entity.Order{SellingPrice: dec("100"), SourcingPrice: dec("60"), Quantity: 2}
	o.DeriveProfit()

	require.NotNil(t, o.NetProfit)
	require.NotNil(t, o.ROI)
	assert.True(t, o.NetProfit.Equal(dec("40")), "netProfit = 100 - 60")
	assert.True(t, o.ROI.Equal(dec("66.67")), "roi = 40/60*100 redondeado a 2 decimales")
	assert.True(t, o.Revenue().Equal(dec("200")))
}

func TestOrderDeriveProfit_ConFeeYComision(t *testing.T) {
	fee, com := dec("8.5"), dec("1.5")
	o := &entity.Order{SellingPrice: dec("100"), SourcingPrice: dec("50"), WalmartFee: &fee, Commission: &com}
	o.DeriveProfit()

	assert.True(t, o.NetProfit.Equal(dec("40")))
	assert.True(t, o.ROI.Equal(dec("80")))
}

func TestOrderDeriveProfit_RespetaValoresInformados(t *testing.T) {
	np, roi := dec("5"), dec("1")
	o := &entity.Order{SellingPrice: dec("100"), SourcingPrice: dec("60"), NetProfit: &np, ROI: &roi}
	o.DeriveProfit()

	assert.True(t, o.NetProfit.Equal(dec("5")))
	assert.True(t, o.ROI.Equal(dec("1")))
}

func TestOrderDeriveProfit_SourcingCero_SinROI(t *testing.T) {
	o := &entity.Order{SellingPrice: dec("10"), SourcingPrice: decimal.Zero}
	o.DeriveProfit()

	assert.True(t, o.NetProfit.Equal(dec("10")))
	assert.Nil(t, o.ROI, "sin sourcingPrice no hay ROI")
}

func TestOrderDeriveProfit_PerdidaQuedaSinDerivar(t *testing.T) {
	o := &entity.Order{SellingPrice: dec("50"), SourcingPrice: dec("60"), Quantity: 1}
	o.DeriveProfit()

	assert.Nil(t, o.NetProfit, "netProfit nunca es negativo")
	assert.Nil(t, o.ROI)
	assert.True(t, o.Profit().IsZero())

	// ganancia exactamente cero sí se guarda
	o = &entity.Order{SellingPrice: dec("60"), SourcingPrice: dec("60")}
	o.DeriveProfit()
	require.NotNil(t, o.NetProfit)
	assert.True(t, o.NetProfit.IsZero())
	assert.True(t, o.ROI.IsZero())
}

func TestDedupePermissions(t *testing.T) {
	got := entity.DedupePermissions([]string{"orders", "tasks", "orders", "", "users", "tasks"})
	assert.Equal(t, []string{"orders", "tasks", "users"}, got)
	assert.Empty(t, entity.DedupePermissions(nil))
}

func TestTaskTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	task := &entity.Task{Status: entity.TaskStatusPending, Progress: 40}

	task.Start(now)
	assert.Equal(t, entity.TaskStatusRunning, task.Status)
	assert.Equal(t, 0, task.Progress)
	require.NotNil(t, task.StartTime)
	assert.Equal(t, now, *task.StartTime)

	task.Pause(now.Add(time.Minute))
	assert.Equal(t, entity.TaskStatusPaused, task.Status)

	result := map[string]interface{}{"synced": 12}
	task.Complete(now.Add(2*time.Minute), result)
	assert.Equal(t, entity.TaskStatusCompleted, task.Status)
	assert.Equal(t, 100, task.Progress)
	assert.Equal(t, result, task.Result)
	require.NotNil(t, task.EndTime)

	task.Fail(now.Add(3 * time.Minute))
	assert.Equal(t, entity.TaskStatusFailed, task.Status)
	assert.Equal(t, now.Add(3*time.Minute), *task.EndTime)
	assert.Empty(t, task.Logs, "las transiciones no escriben el log")
}

func TestUserIsActive(t *testing.T) {
	assert.True(t, (&entity.User{Status: entity.UserStatusActive}).IsActive())
	assert.False(t, (&entity.User{Status: entity.UserStatusInactive}).IsActive())
	var nilUser *entity.User
	assert.False(t, nilUser.IsActive())
}
