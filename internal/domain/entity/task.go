package entity

import "time"

// Tipos de Task.
const (
	TaskTypeProductSync     = "Product Sync"
	TaskTypeOrderTracking   = "Order Tracking"
	TaskTypeInventoryUpdate = "Inventory Update"
	TaskTypePriceMonitor    = "Price Monitor"
)

// Estados de Task.
const (
	TaskStatusRunning   = "Running"
	TaskStatusCompleted = "Completed"
	TaskStatusFailed    = "Failed"
	TaskStatusPaused    = "Paused"
	TaskStatusPending   = "Pending"
)

// TaskStatuses lista ordenada de estados válidos.
var TaskStatuses = []string{TaskStatusPending, TaskStatusRunning, TaskStatusPaused, TaskStatusCompleted, TaskStatusFailed}

// Task registro de una tarea de automatización. No hay ejecutor: el estado
// refleja lo que informa quien llama a las transiciones.
type Task struct {
	ID          string
	Name        string
	Type        string
	Account     string // accName, por convención
	Status      string
	Progress    int // 0..100
	StartTime   *time.Time
	EndTime     *time.Time
	Description string
	Logs        []string // sólo se agregan líneas
	Config      map[string]interface{}
	Result      map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Start marca la tarea como Running desde cero.
func (t *Task) Start(now time.Time) {
	t.Status = TaskStatusRunning
	t.StartTime = &now
	t.Progress = 0
	t.UpdatedAt = now
}

// Pause marca la tarea como Paused.
func (t *Task) Pause(now time.Time) {
	t.Status = TaskStatusPaused
	t.UpdatedAt = now
}

// Complete marca la tarea como Completed y guarda el resultado tal cual.
func (t *Task) Complete(now time.Time, result map[string]interface{}) {
	t.Status = TaskStatusCompleted
	t.EndTime = &now
	t.Progress = 100
	if result != nil {
		t.Result = result
	}
	t.UpdatedAt = now
}

// Fail marca la tarea como Failed. El motivo va al log por AppendLog del repositorio.
func (t *Task) Fail(now time.Time) {
	t.Status = TaskStatusFailed
	t.EndTime = &now
	t.UpdatedAt = now
}
