package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

var taskTypes = []string{
	entity.TaskTypeProductSync,
	entity.TaskTypeOrderTracking,
	entity.TaskTypeInventoryUpdate,
	entity.TaskTypePriceMonitor,
}

// TaskUseCase CRUD de tareas y transiciones de estado.
// Las transiciones no tienen guardas: se registra lo que el cliente afirma.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create crea una tarea en estado Pending salvo que se indique otro.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if !contains(taskTypes, in.Type) {
		return nil, domain.NewValidationError("type", "oneof="+strings.Join(taskTypes, "|"))
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusPending
	}
	ts := now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Account:     in.Account,
		Status:      status,
		Progress:    in.Progress,
		Description: in.Description,
		Logs:        []string{},
		Config:      in.Config,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func (uc *TaskUseCase) get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

// List lista tareas por status / type / account.
func (uc *TaskUseCase) List(ctx context.Context, q dto.TaskQuery) ([]dto.TaskResponse, error) {
	list, err := uc.repo.List(ctx, repository.TaskFilter{Status: q.Status, Type: q.Type, Account: q.Account})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTaskResponse(t))
	}
	return items, nil
}

// Update aplica los campos presentes. Config y Result se reemplazan completos.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.Type != nil && !contains(taskTypes, *in.Type) {
		return nil, domain.NewValidationError("type", "oneof="+strings.Join(taskTypes, "|"))
	}
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&task.Name, in.Name)
	setString(&task.Type, in.Type)
	setString(&task.Account, in.Account)
	setString(&task.Status, in.Status)
	setString(&task.Description, in.Description)
	if in.Progress != nil {
		task.Progress = *in.Progress
	}
	if in.Config != nil {
		task.Config = in.Config
	}
	if in.Result != nil {
		task.Result = in.Result
	}
	task.UpdatedAt = now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Start status=Running, startTime=now, progress=0.
func (uc *TaskUseCase) Start(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return uc.transition(ctx, id, func(t *entity.Task) { t.Start(now()) })
}

// Pause status=Paused.
func (uc *TaskUseCase) Pause(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return uc.transition(ctx, id, func(t *entity.Task) { t.Pause(now()) })
}

// Complete status=Completed, endTime=now, progress=100; result se guarda tal cual.
func (uc *TaskUseCase) Complete(ctx context.Context, id string, result map[string]interface{}) (*dto.TaskResponse, error) {
	return uc.transition(ctx, id, func(t *entity.Task) { t.Complete(now(), result) })
}

// Fail status=Failed, endTime=now; el motivo se agrega al log.
func (uc *TaskUseCase) Fail(ctx context.Context, id, reason string) (*dto.TaskResponse, error) {
	out, err := uc.transition(ctx, id, func(t *entity.Task) { t.Fail(now()) })
	if err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return out, nil
	}
	if err := uc.repo.AppendLog(ctx, id, reason, now()); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// UpdateProgress fija el progreso (0..100). El campo es obligatorio.
func (uc *TaskUseCase) UpdateProgress(ctx context.Context, id string, in dto.TaskProgressRequest) (*dto.TaskResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	return uc.transition(ctx, id, func(t *entity.Task) {
		t.Progress = *in.Progress
		t.UpdatedAt = now()
	})
}

// AddLog agrega una línea al final del log. Nunca trunca.
func (uc *TaskUseCase) AddLog(ctx context.Context, id, line string) (*dto.TaskResponse, error) {
	if err := validate(dto.TaskLogRequest{Line: strings.TrimSpace(line)}); err != nil {
		return nil, err
	}
	if err := uc.repo.AppendLog(ctx, id, line, now()); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func (uc *TaskUseCase) transition(ctx context.Context, id string, apply func(*entity.Task)) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(task)
	// Update no toca logs; se relee para devolver las líneas agregadas entretanto
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	logs := t.Logs
	if logs == nil {
		logs = []string{}
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type,
		Account:     t.Account,
		Status:      t.Status,
		Progress:    t.Progress,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Description: t.Description,
		Logs:        logs,
		Config:      t.Config,
		Result:      t.Result,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
