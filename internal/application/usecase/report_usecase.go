package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/application/ports"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de pedidos con los mismos filtros del listado.
type ReportUseCase struct {
	orders    repository.OrderRepository
	generator ports.OrderReportGenerator
}

// NewReportUseCase construye el caso de uso inyectando el generador.
func NewReportUseCase(orders repository.OrderRepository, generator ports.OrderReportGenerator) *ReportUseCase {
	return &ReportUseCase{orders: orders, generator: generator}
}

// OrdersPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) OrdersPDF(ctx context.Context, q dto.OrderQuery) (pdfBytes []byte, filename string, err error) {
	list, err := uc.orders.List(ctx, toOrderFilter(q))
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar pedidos: %w", err)
	}

	ts := now()
	report := &ports.OrderReport{
		Title:        "Reporte de pedidos",
		GeneratedAt:  ts,
		Filters:      describeOrderQuery(q),
		Orders:       list,
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, o := range list {
		report.TotalQuantity += o.Quantity
		report.TotalRevenue = report.TotalRevenue.Add(o.Revenue())
		report.TotalProfit = report.TotalProfit.Add(o.Profit())
	}

	pdfBytes, err = uc.generator.GenerateOrderReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pedidos_%s.pdf", ts.Format("20060102_150405")), nil
}

func describeOrderQuery(q dto.OrderQuery) []string {
	var out []string
	add := func(label, v string) {
		if v != "" {
			out = append(out, label+": "+v)
		}
	}
	day := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.UTC().Format("2006-01-02")
	}
	num := func(d *decimal.Decimal) string {
		if d == nil {
			return ""
		}
		return d.String()
	}
	add("búsqueda", q.Search)
	add("orderNumber", q.OrderNumber)
	add("poNumber", q.PONumber)
	add("trackingStatus", q.TrackingStatus)
	add("sku", q.SKU)
	add("account", q.Account)
	add("desde", day(q.StartDate))
	add("hasta", day(q.EndDate))
	add("shipBy desde", day(q.ShipByStart))
	add("shipBy hasta", day(q.ShipByEnd))
	add("minProfit", num(q.MinProfit))
	add("minROI", num(q.MinROI))
	return out
}
