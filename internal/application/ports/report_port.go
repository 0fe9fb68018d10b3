package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

// OrderReport datos ya filtrados del reporte de pedidos.
type OrderReport struct {
	Title         string
	GeneratedAt   time.Time
	Filters       []string // "clave: valor" de los filtros aplicados, para el encabezado
	Orders        []*entity.Order
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
}

// OrderReportGenerator define el puerto de salida para generar el PDF del reporte de pedidos.
// La aplicación sólo conoce este contrato; el adaptador concreto vive en infrastructure/pdf.
type OrderReportGenerator interface {
	GenerateOrderReport(ctx context.Context, report *OrderReport) ([]byte, error)
}
