package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/internal/application/ports"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

func TestGenerateOrderReport_DevuelvePDF(t *testing.T) {
	np := decimal.RequireFromString("40")
	report := &ports.OrderReport{
		Title:       "Reporte de pedidos",
		GeneratedAt: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
		Filters:     []string{"sku: SKU-1"},
		Orders: []*entity.Order{
			{OrderNumber: "ORD-1", SKU: "SKU-1", Name: "Cafetera", Quantity: 2, SellingPrice: decimal.RequireFromString("100"), NetProfit: &np},
			{OrderNumber: "ORD-2", SKU: "SKU-1", Name: "Cafetera", Quantity: 1, SellingPrice: decimal.RequireFromString("100")},
		},
		TotalQuantity: 3,
		TotalRevenue:  decimal.RequireFromString("300"),
		TotalProfit:   np,
	}

	out, err := NewOrderReportGenerator().GenerateOrderReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateOrderReport_SinPedidos(t *testing.T) {
	out, err := NewOrderReportGenerator().GenerateOrderReport(context.Background(), &ports.OrderReport{Title: "Vacío"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateOrderReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOrderReportGenerator().GenerateOrderReport(ctx, &ports.OrderReport{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":       "0.00",
		"999.5":   "999.50",
		"25000":   "25,000.00",
		"1234567": "1,234,567.00",
		"-1234.5": "-1,234.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
}
