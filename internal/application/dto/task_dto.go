package dto

import "time"

// CreateTaskRequest entrada para crear una tarea. type se valida contra entity.TaskTypes.
type CreateTaskRequest struct {
	Name        string                 `json:"name" validate:"required,max=200"`
	Type        string                 `json:"type" validate:"required"`
	Account     string                 `json:"account" validate:"required"`
	Status      string                 `json:"status,omitempty" validate:"omitempty,oneof=Running Completed Failed Paused Pending"` // default Pending
	Progress    int                    `json:"progress,omitempty" validate:"min=0,max=100"`
	Description string                 `json:"description,omitempty"`
	Config      map[string]interface{} `json:"config,omitempty"`
}

// UpdateTaskRequest actualización parcial. Los logs sólo se agregan vía /tasks/:id/logs.
type UpdateTaskRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitnil,min=1,max=200"`
	Type        *string                `json:"type,omitempty"`
	Account     *string                `json:"account,omitempty" validate:"omitnil,min=1"`
	Status      *string                `json:"status,omitempty" validate:"omitnil,oneof=Running Completed Failed Paused Pending"`
	Progress    *int                   `json:"progress,omitempty" validate:"omitnil,min=0,max=100"`
	Description *string                `json:"description,omitempty"`
	Config      map[string]interface{} `json:"config,omitempty"`
	Result      map[string]interface{} `json:"result,omitempty"`
}

// CompleteTaskRequest cuerpo opcional de PATCH /tasks/:id/complete.
type CompleteTaskRequest struct {
	Result map[string]interface{} `json:"result,omitempty"`
}

// FailTaskRequest cuerpo de PATCH /tasks/:id/fail.
type FailTaskRequest struct {
	Reason string `json:"reason"`
}

// TaskProgressRequest cuerpo de PATCH /tasks/:id/progress.
type TaskProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// TaskLogRequest cuerpo de POST /tasks/:id/logs.
type TaskLogRequest struct {
	Line string `json:"line" validate:"required"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Account     string                 `json:"account"`
	Status      string                 `json:"status"`
	Progress    int                    `json:"progress"`
	StartTime   *time.Time             `json:"startTime,omitempty"`
	EndTime     *time.Time             `json:"endTime,omitempty"`
	Description string                 `json:"description,omitempty"`
	Logs        []string               `json:"logs"`
	Config      map[string]interface{} `json:"config,omitempty"`
	Result      map[string]interface{} `json:"result,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// TaskQuery filtros de GET /tasks.
type TaskQuery struct {
	Status  string `query:"status"`
	Type    string `query:"type"`
	Account string `query:"account"`
}
