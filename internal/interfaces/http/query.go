package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate acepta YYYY-MM-DD o RFC3339. Con endOfDay, una fecha sin hora se lleva
// al último milisegundo del día para que el rango sea inclusivo.
func parseDate(raw string, endOfDay bool) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return &t, true
}

func parseDecimal(raw string) (*decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// parseOrderQuery lee los filtros de pedidos. Valores mal formados -> ValidationError con el campo.
func parseOrderQuery(c *fiber.Ctx) (dto.OrderQuery, error) {
	q := dto.OrderQuery{
		Search:         c.Query("search"),
		OrderNumber:    c.Query("orderNumber"),
		PONumber:       c.Query("poNumber"),
		TrackingStatus: c.Query("trackingStatus"),
		SKU:            c.Query("sku"),
		Account:        c.Query("account"),
	}
	fields := map[string]string{}

	dates := []struct {
		key      string
		endOfDay bool
		dst      **time.Time
	}{
		{"startDate", false, &q.StartDate},
		{"endDate", true, &q.EndDate},
		{"shipByStart", false, &q.ShipByStart},
		{"shipByEnd", true, &q.ShipByEnd},
	}
	for _, d := range dates {
		t, ok := parseDate(c.Query(d.key), d.endOfDay)
		if !ok {
			fields[d.key] = "date"
			continue
		}
		*d.dst = t
	}

	nums := []struct {
		key string
		dst **decimal.Decimal
	}{
		{"minProfit", &q.MinProfit},
		{"minROI", &q.MinROI},
	}
	for _, n := range nums {
		v, ok := parseDecimal(c.Query(n.key))
		if !ok {
			fields[n.key] = "decimal"
			continue
		}
		*n.dst = v
	}

	if q.StartDate != nil && q.EndDate != nil && q.EndDate.Before(*q.StartDate) {
		fields["endDate"] = "gtefield=startDate"
	}
	if q.ShipByStart != nil && q.ShipByEnd != nil && q.ShipByEnd.Before(*q.ShipByStart) {
		fields["shipByEnd"] = "gtefield=shipByStart"
	}
	if len(fields) > 0 {
		return q, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

// pageRequest page/limit de la query; la normalización la hace el caso de uso.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Page: c.QueryInt("page", 0), Limit: c.QueryInt("limit", 0)}
}
