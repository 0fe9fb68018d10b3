package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupCount un grupo de un group-by: clave y cantidad de documentos.
// Las listas de grupos vienen ordenadas por Count desc y luego Key asc.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DashboardResponse respuesta de GET /api/stats/dashboard.
type DashboardResponse struct {
	AccountStats AccountStats `json:"accountStats"`
	ProductStats ProductStats `json:"productStats"`
	OrderStats   OrderStats   `json:"orderStats"`
	TaskStats    TaskStats    `json:"taskStats"`
	UserStats    UserStats    `json:"userStats"`
	TopProducts  []TopProduct `json:"topProducts"` // top 5 por cantidad vendida
	GeneratedAt  time.Time    `json:"generatedAt"`
}

// AccountStats conteos de cuentas.
type AccountStats struct {
	Total         int          `json:"total"`
	ByMarketplace []GroupCount `json:"byMarketplace"`
	ByStatus      []GroupCount `json:"byStatus"`
	NewThisMonth  int          `json:"newThisMonth"` // creadas en los últimos 30 días
}

// ProductStats conteos de productos.
type ProductStats struct {
	Total        int `json:"total"`
	NewThisMonth int `json:"newThisMonth"`
}

// OrderStats totales de pedidos. También es la respuesta de GET /api/orders/stats.
type OrderStats struct {
	Total            int             `json:"total"`
	RecentOrders     int             `json:"recentOrders"` // orderDate en los últimos 30 días
	TotalRevenue     decimal.Decimal `json:"totalRevenue"` // sum(sellingPrice * quantity)
	TotalProfit      decimal.Decimal `json:"totalProfit"`  // sum(netProfit)
	TotalQuantity    int             `json:"totalQuantity"`
	AverageROI       decimal.Decimal `json:"averageROI"` // promedio sobre pedidos con roi
	ByTrackingStatus []GroupCount    `json:"byTrackingStatus"`
	Monthly          []MonthlyPoint  `json:"monthly"` // últimos 6 meses, ascendente
}

// MonthlyPoint ingreso y ganancia de un mes calendario.
type MonthlyPoint struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// TaskStats conteos de tareas.
type TaskStats struct {
	Total    int          `json:"total"`
	ByStatus []GroupCount `json:"byStatus"`
	ByType   []GroupCount `json:"byType"`
}

// UserStats conteos de usuarios.
type UserStats struct {
	Total        int          `json:"total"`
	ByRole       []GroupCount `json:"byRole"`
	NewThisMonth int          `json:"newThisMonth"`
}

// TopProduct SKU con su cantidad acumulada en pedidos.
type TopProduct struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ChartsResponse respuesta de GET /api/stats/charts.
type ChartsResponse struct {
	DailyOrders  []DailyPoint        `json:"dailyOrders"` // últimos 30 días, ascendente, días sin pedidos en 0
	TaskProgress []TaskProgressPoint `json:"taskProgress"`
}

// DailyPoint pedidos e ingreso de un día (YYYY-MM-DD, UTC).
type DailyPoint struct {
	Date    string          `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TaskProgressPoint conteo y progreso promedio de las tareas en un estado.
type TaskProgressPoint struct {
	Status          string  `json:"status"`
	Count           int     `json:"count"`
	AverageProgress float64 `json:"averageProgress"`
}
