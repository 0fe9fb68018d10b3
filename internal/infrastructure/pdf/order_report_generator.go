// Package pdf genera el reporte de pedidos en PDF con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                      │  Fecha de generación  │
//	│  Filtros aplicados                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Orden | PO | SKU | Producto | Cant | ...     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Pedidos / Unidades / Ingreso / Ganancia            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-admin-api/internal/application/ports"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// OrderReportGenerator implementa ports.OrderReportGenerator usando Maroto v2.
type OrderReportGenerator struct{}

var _ ports.OrderReportGenerator = (*OrderReportGenerator)(nil)

// NewOrderReportGenerator construye el generador.
func NewOrderReportGenerator() *OrderReportGenerator { return &OrderReportGenerator{} }

// GenerateOrderReport genera el PDF y devuelve sus bytes.
func (g *OrderReportGenerator) GenerateOrderReport(ctx context.Context, report *ports.OrderReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	if len(report.Filters) > 0 {
		m.AddRows(filtersRow(report.Filters))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Orders) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin pedidos para los filtros indicados", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *ports.OrderReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func filtersRow(filters []string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("Filtros: "+strings.Join(filters, "   |   "), props.Text{
			Size: 7.5, Color: colorGray, Top: 1,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 1, align.Left),
		h("Orden", 2, align.Left),
		h("PO", 1, align.Left),
		h("SKU", 1, align.Left),
		h("Producto", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Venta", 1, align.Right),
		h("Ganancia", 1, align.Right),
		h("ROI%", 1, align.Right),
		h("Tracking", 1, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows una fila por pedido.
func tableDetailRows(orders []*entity.Order) []core.Row {
	result := make([]core.Row, 0, len(orders))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, o := range orders {
		result = append(result, row.New(6).Add(
			cell(o.OrderDate.UTC().Format("2006-01-02"), 1, align.Left),
			cell(o.OrderNumber, 2, align.Left),
			cell(o.PONumber, 1, align.Left),
			cell(o.SKU, 1, align.Left),
			cell(truncate(o.Name, 40), 2, align.Left),
			cell(fmt.Sprintf("%d", o.Quantity), 1, align.Center),
			cell("$"+formatMoney(o.SellingPrice), 1, align.Right),
			cell(optional(o.NetProfit, "$"), 1, align.Right),
			cell(optional(o.ROI, ""), 1, align.Right),
			cell(nonEmpty(o.TrackingStatus, "-"), 1, align.Left),
		))
	}
	return result
}

// totalsRow bloque de totales alineado a la derecha.
func totalsRow(report *ports.OrderReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Pedidos:"),
			label("Unidades:"),
			label("Ingreso:"),
			grandLabel("GANANCIA:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", len(report.Orders))),
			value(fmt.Sprintf("%d", report.TotalQuantity)),
			value("$"+formatMoney(report.TotalRevenue)),
			grandValue("$"+formatMoney(report.TotalProfit)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func optional(d *decimal.Decimal, prefix string) string {
	if d == nil {
		return "-"
	}
	return prefix + formatMoney(*d)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// formatMoney 2 decimales con separador de miles.
// Ej: 25000 → "25,000.00", -1234.5 → "-1,234.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
