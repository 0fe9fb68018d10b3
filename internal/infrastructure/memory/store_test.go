package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/infrastructure/memory"
)

var t0 = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestTaskUpdate_ConservaLogsAgregadosDespuesDeLeer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()
	require.NoError(t, repo.Create(ctx, &entity.Task{ID: "t1", Name: "sync", Status: entity.TaskStatusPending, Logs: []string{}}))

	stale, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, repo.AppendLog(ctx, "t1", "sync iniciado", t0))

	stale.Start(t0.Add(time.Second))
	stale.Logs = nil
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusRunning, got.Status)
	assert.Equal(t, []string{"sync iniciado"}, got.Logs)
}

func TestAccountUpdate_ConservaLastSync(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.Create(ctx, &entity.Account{ID: "a1", AccName: "acme", Status: entity.AccountStatusActive}))

	stale, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NoError(t, repo.TouchLastSync(ctx, "a1", t0))

	stale.ProfileName = "Acme Store"
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Store", got.ProfileName)
	require.NotNil(t, got.LastSync)
	assert.Equal(t, t0, *got.LastSync)
}

func TestUserUpdate_ConservaLastLogin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "ana@example.com", Status: entity.UserStatusActive}))

	stale, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, repo.TouchLastLogin(ctx, "u1", t0))

	stale.FullName = "Ana Pérez"
	require.NoError(t, repo.Update(ctx, stale))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", got.FullName)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, t0, *got.LastLogin)
}

func TestUpdate_Inexistente(t *testing.T) {
	ctx := context.Background()
	err := memory.NewTaskRepository().Update(ctx, &entity.Task{ID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
