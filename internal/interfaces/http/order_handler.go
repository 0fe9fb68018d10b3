package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-admin-api/internal/application/analytics"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order: CRUD, filtros, estadísticas y export.
type OrderHandler struct {
	uc     *usecase.OrderUseCase
	stats  *analytics.StatsUseCase
	report *usecase.ReportUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, stats *analytics.StatsUseCase, report *usecase.ReportUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, stats: stats, report: report}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Si netProfit / roi no vienen se derivan de sellingPrice, sourcingPrice, walmartFee y commission.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Listar pedidos (paginado)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page            query  int     false  "Página"  default(1)
// @Param        limit           query  int     false  "Límite (máx 100)"  default(10)
// @Param        search          query  string  false  "Texto en orderNumber, poNumber, sku o name"
// @Param        startDate       query  string  false  "orderDate desde (YYYY-MM-DD o RFC3339)"
// @Param        endDate         query  string  false  "orderDate hasta, inclusivo"
// @Param        account         query  string  false  "Cuenta"
// @Param        trackingStatus  query  string  false  "Tracking status"
// @Param        sku             query  string  false  "SKU"
// @Param        shipByStart     query  string  false  "shipBy desde"
// @Param        shipByEnd       query  string  false  "shipBy hasta, inclusivo"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	q, err := parseOrderQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q, pageRequest(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar pedido (parcial)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateOrderRequest
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
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := requireID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}

// ── Filtros /orders/filter/* ──────────────────────────────────────────────────

// orderFilter sub-ruta de filtro: pick copia sólo los campos de esa ruta desde la query
// completa, required lista los parámetros obligatorios y anyOf exige al menos uno de los suyos.
type orderFilter struct {
	required []string
	anyOf    []string
	pick     func(all dto.OrderQuery) dto.OrderQuery
}

var orderFilters = map[string]orderFilter{
	"order-number": {
		required: []string{"orderNumber"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{OrderNumber: q.OrderNumber} },
	},
	"po-number": {
		required: []string{"poNumber"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{PONumber: q.PONumber} },
	},
	"tracking-status": {
		required: []string{"trackingStatus"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{TrackingStatus: q.TrackingStatus} },
	},
	"sku": {
		required: []string{"sku"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{SKU: q.SKU} },
	},
	"date-range": {
		required: []string{"startDate", "endDate"},
		pick: func(q dto.OrderQuery) dto.OrderQuery {
			return dto.OrderQuery{StartDate: q.StartDate, EndDate: q.EndDate}
		},
	},
	// acepta shipByStart/shipByEnd o, como las demás rutas de rango, startDate/endDate
	"ship-by-date-range": {
		anyOf: []string{"shipByStart", "shipByEnd", "startDate", "endDate"},
		pick: func(q dto.OrderQuery) dto.OrderQuery {
			from, to := q.ShipByStart, q.ShipByEnd
			if from == nil && to == nil {
				from, to = q.StartDate, q.EndDate
			}
			return dto.OrderQuery{ShipByStart: from, ShipByEnd: to}
		},
	},
	"high-profit": {
		required: []string{"minProfit"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{MinProfit: q.MinProfit} },
	},
	"high-roi": {
		required: []string{"minROI"},
		pick:     func(q dto.OrderQuery) dto.OrderQuery { return dto.OrderQuery{MinROI: q.MinROI} },
	},
}

// Filter godoc
// @Summary      Filtrar pedidos por un campo
// @Description  by: order-number, po-number, tracking-status, sku, date-range, ship-by-date-range, high-profit, high-roi
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        by              path   string  true   "Tipo de filtro"
// @Param        orderNumber     query  string  false  "order-number"
// @Param        poNumber        query  string  false  "po-number"
// @Param        trackingStatus  query  string  false  "tracking-status"
// @Param        sku             query  string  false  "sku"
// @Param        startDate       query  string  false  "date-range / ship-by-date-range"
// @Param        endDate         query  string  false  "date-range / ship-by-date-range"
// @Param        minProfit       query  number  false  "high-profit"
// @Param        minROI          query  number  false  "high-roi"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/filter/{by} [get]
func (h *OrderHandler) Filter(c *fiber.Ctx) error {
	f, ok := orderFilters[c.Params("by")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: fmt.Sprintf("filtro desconocido: %s", c.Params("by"))})
	}
	all, err := parseOrderQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	missing := map[string]string{}
	for _, p := range f.required {
		if c.Query(p) == "" {
			missing[p] = "required"
		}
	}
	if len(f.anyOf) > 0 && !anyQuery(c, f.anyOf) {
		for _, p := range f.anyOf {
			missing[p] = "required_without_all"
		}
	}
	if len(missing) > 0 {
		return respondError(c, &domain.ValidationError{Fields: missing})
	}
	out, err := h.uc.Filter(c.UserContext(), f.pick(all))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func anyQuery(c *fiber.Ctx, params []string) bool {
	for _, p := range params {
		if c.Query(p) != "" {
			return true
		}
	}
	return false
}

// ── Estadísticas y export ────────────────────────────────────────────────────

// Stats godoc
// @Summary      Resumen de pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderStats
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.OrderSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TrackingStatusStats godoc
// @Summary      Pedidos agrupados por tracking status
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupCount
// @Router       /api/orders/stats/tracking-status [get]
func (h *OrderHandler) TrackingStatusStats(c *fiber.Ctx) error {
	out, err := h.stats.TrackingStatus(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Exportar pedidos a PDF
// @Description  Mismos filtros que GET /orders, sin paginar.
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/export/pdf [get]
func (h *OrderHandler) ExportPDF(c *fiber.Ctx) error {
	q, err := parseOrderQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, filename, err := h.report.OrdersPDF(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
