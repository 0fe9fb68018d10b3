package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
)

// TaskHandler maneja las peticiones HTTP para Task y sus transiciones de estado.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "Running, Completed, Failed, Paused, Pending"
// @Param        type     query  string  false  "Tipo de tarea"
// @Param        account  query  string  false  "Cuenta"
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var q dto.TaskQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarea por ID
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea (parcial)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tarea eliminada"})
}

// Start godoc
// @Summary      Iniciar tarea
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/start [patch]
func (h *TaskHandler) Start(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Start(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pause godoc
// @Summary      Pausar tarea
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/pause [patch]
func (h *TaskHandler) Pause(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Pause(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true   "ID de la tarea"
// @Param        body  body  dto.CompleteTaskRequest  false  "Resultado"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/complete [patch]
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.CompleteTaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Complete(c.UserContext(), id, in.Result)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Fail godoc
// @Summary      Marcar tarea como fallida
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true   "ID de la tarea"
// @Param        body  body  dto.FailTaskRequest  false  "Motivo"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/fail [patch]
func (h *TaskHandler) Fail(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.FailTaskRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Fail(c.UserContext(), id, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Actualizar progreso (0-100)
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.TaskProgressRequest  true  "Progreso"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/progress [patch]
func (h *TaskHandler) Progress(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.TaskProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateProgress(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLog godoc
// @Summary      Agregar línea al log de la tarea
// @Tags         tasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.TaskLogRequest  true  "Línea"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/logs [post]
func (h *TaskHandler) AddLog(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.TaskLogRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddLog(c.UserContext(), id, in.Line)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
