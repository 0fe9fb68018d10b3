package memory

import (
	"context"
	"maps"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// TaskRepository implementa repository.TaskRepository en memoria.
type TaskRepository struct {
	t *table[entity.Task]
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository crea el repositorio vacío.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{t: newTable(
		func(t *entity.Task) string { return t.ID },
		cloneTask,
		nil,
	)}
}

func cloneTask(t *entity.Task) *entity.Task {
	c := *t
	c.Logs = cloneStrings(t.Logs)
	c.Config = maps.Clone(t.Config)
	c.Result = maps.Clone(t.Result)
	return &c
}

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) error {
	return r.t.insert(t)
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*entity.Task, error) {
	return r.t.get(id), nil
}

// Update reemplaza la tarea salvo Logs, que sólo crece vía AppendLog.
func (r *TaskRepository) Update(_ context.Context, t *entity.Task) error {
	return r.t.replace(t, func(stored, next *entity.Task) { next.Logs = cloneStrings(stored.Logs) })
}

func (r *TaskRepository) AppendLog(_ context.Context, id, line string, at time.Time) error {
	return r.t.mutate(id, func(t *entity.Task) {
		t.Logs = append(t.Logs, line)
		t.UpdatedAt = at
	})
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *TaskRepository) List(_ context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	return r.t.filter(func(t *entity.Task) bool {
		return eqOrEmpty(f.Status, t.Status) && eqOrEmpty(f.Type, t.Type) && eqOrEmpty(f.Account, t.Account)
	}), nil
}
