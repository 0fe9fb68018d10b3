package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
)

const (
	windowDays       = 30 // "nuevos este mes" y "pedidos recientes"
	monthlyWindow    = 6  // meses de la serie mensual, incluido el actual
	topProductsLimit = 5
)

// GroupBy cuenta elementos por clave. Orden: count desc, luego key asc.
func GroupBy[T any](items []T, key func(T) string) []dto.GroupCount {
	counts := make(map[string]int)
	for _, it := range items {
		counts[key(it)]++
	}
	out := make([]dto.GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, dto.GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// CountSince cuenta elementos cuya fecha es >= since.
func CountSince[T any](items []T, at func(T) time.Time, since time.Time) int {
	n := 0
	for _, it := range items {
		if !at(it).Before(since) {
			n++
		}
	}
	return n
}

func windowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -windowDays)
}

// AccountStats total, por marketplace, por estado y nuevas en 30 días.
func AccountStats(accounts []*entity.Account, now time.Time) dto.AccountStats {
	return dto.AccountStats{
		Total:         len(accounts),
		ByMarketplace: GroupBy(accounts, func(a *entity.Account) string { return a.Marketplace }),
		ByStatus:      GroupBy(accounts, func(a *entity.Account) string { return a.Status }),
		NewThisMonth:  CountSince(accounts, func(a *entity.Account) time.Time { return a.CreatedAt }, windowStart(now)),
	}
}

// ProductStats total y nuevos en 30 días.
func ProductStats(products []*entity.Product, now time.Time) dto.ProductStats {
	return dto.ProductStats{
		Total:        len(products),
		NewThisMonth: CountSince(products, func(p *entity.Product) time.Time { return p.CreatedAt }, windowStart(now)),
	}
}

// OrderStats sumas de ingreso, ganancia y cantidad, agrupación por trackingStatus y serie mensual.
func OrderStats(orders []*entity.Order, now time.Time) dto.OrderStats {
	revenue, profit, roiSum := decimal.Zero, decimal.Zero, decimal.Zero
	quantity, roiCount := 0, 0
	for _, o := range orders {
		revenue = revenue.Add(o.Revenue())
		profit = profit.Add(o.Profit())
		quantity += o.Quantity
		if o.ROI != nil {
			roiSum = roiSum.Add(*o.ROI)
			roiCount++
		}
	}
	avgROI := decimal.Zero
	if roiCount > 0 {
		avgROI = roiSum.Div(decimal.NewFromInt(int64(roiCount))).Round(2)
	}
	return dto.OrderStats{
		Total:            len(orders),
		RecentOrders:     CountSince(orders, func(o *entity.Order) time.Time { return o.OrderDate }, windowStart(now)),
		TotalRevenue:     revenue.Round(2),
		TotalProfit:      profit.Round(2),
		TotalQuantity:    quantity,
		AverageROI:       avgROI,
		ByTrackingStatus: GroupBy(orders, func(o *entity.Order) string { return o.TrackingStatus }),
		Monthly:          MonthlySeries(orders, now, monthlyWindow),
	}
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlySeries ingreso/ganancia por (año, mes) de pedidos en los últimos n meses
// calendario (incluido el actual), ascendente. Meses sin pedidos aparecen en 0.
func MonthlySeries(orders []*entity.Order, now time.Time, n int) []dto.MonthlyPoint {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	points := make([]dto.MonthlyPoint, n)
	index := make(map[monthKey]int, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i, 0)
		points[i] = dto.MonthlyPoint{Year: m.Year(), Month: int(m.Month()), Revenue: decimal.Zero, Profit: decimal.Zero}
		index[monthKey{m.Year(), m.Month()}] = i
	}
	for _, o := range orders {
		d := o.OrderDate.UTC()
		i, ok := index[monthKey{d.Year(), d.Month()}]
		if !ok {
			continue
		}
		points[i].Orders++
		points[i].Revenue = points[i].Revenue.Add(o.Revenue())
		points[i].Profit = points[i].Profit.Add(o.Profit())
	}
	return points
}

// TaskStats total y agrupaciones por estado y tipo.
func TaskStats(tasks []*entity.Task) dto.TaskStats {
	return dto.TaskStats{
		Total:    len(tasks),
		ByStatus: GroupBy(tasks, func(t *entity.Task) string { return t.Status }),
		ByType:   GroupBy(tasks, func(t *entity.Task) string { return t.Type }),
	}
}

// UserStats total, por rol y nuevos en 30 días.
func UserStats(users []*entity.User, now time.Time) dto.UserStats {
	return dto.UserStats{
		Total:        len(users),
		ByRole:       GroupBy(users, func(u *entity.User) string { return u.Role }),
		NewThisMonth: CountSince(users, func(u *entity.User) time.Time { return u.CreatedAt }, windowStart(now)),
	}
}

// TopProducts los n SKUs con más unidades vendidas. Orden estable por cantidad desc:
// a igual cantidad gana el SKU que apareció primero.
func TopProducts(orders []*entity.Order, n int) []dto.TopProduct {
	var list []dto.TopProduct
	index := make(map[string]int)
	for _, o := range orders {
		i, ok := index[o.SKU]
		if !ok {
			i = len(list)
			index[o.SKU] = i
			list = append(list, dto.TopProduct{SKU: o.SKU, Revenue: decimal.Zero})
		}
		if list[i].Name == "" {
			list[i].Name = o.Name
		}
		list[i].Quantity += o.Quantity
		list[i].Revenue = list[i].Revenue.Add(o.Revenue())
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Quantity > list[j].Quantity })
	if len(list) > n {
		list = list[:n]
	}
	if list == nil {
		list = []dto.TopProduct{}
	}
	return list
}

// DailySeries pedidos e ingreso por día de los últimos `days` días (incluido hoy), ascendente.
func DailySeries(orders []*entity.Order, now time.Time, days int) []dto.DailyPoint {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := today.AddDate(0, 0, -(days - 1))

	points := make([]dto.DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = dto.DailyPoint{Date: d, Revenue: decimal.Zero}
		index[d] = i
	}
	for _, o := range orders {
		i, ok := index[o.OrderDate.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		points[i].Orders++
		points[i].Revenue = points[i].Revenue.Add(o.Revenue())
	}
	return points
}

// TaskProgress cantidad y progreso promedio (2 decimales) por estado.
// Mismo orden que GroupBy.
func TaskProgress(tasks []*entity.Task) []dto.TaskProgressPoint {
	sums := make(map[string]int)
	for _, t := range tasks {
		sums[t.Status] += t.Progress
	}
	groups := GroupBy(tasks, func(t *entity.Task) string { return t.Status })
	out := make([]dto.TaskProgressPoint, 0, len(groups))
	for _, g := range groups {
		avg := float64(sums[g.Key]) / float64(g.Count)
		out = append(out, dto.TaskProgressPoint{
			Status:          g.Key,
			Count:           g.Count,
			AverageProgress: math.Round(avg*100) / 100,
		})
	}
	return out
}
