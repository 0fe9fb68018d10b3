package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-admin-api/internal/application/analytics"
)

// StatsHandler expone el dashboard y los gráficos.
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard con estadísticas de todas las colecciones
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Charts godoc
// @Summary      Series para gráficos (pedidos diarios, progreso de tareas)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartsResponse
// @Router       /api/stats/charts [get]
func (h *StatsHandler) Charts(c *fiber.Ctx) error {
	out, err := h.uc.Charts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
