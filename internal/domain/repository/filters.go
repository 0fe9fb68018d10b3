package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page parámetros de paginación (base 1).
type Page struct {
	Page  int
	Limit int
}

// Normalize aplica valores por defecto y el límite máximo.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset cantidad de documentos a saltar.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages ceil(total / limit).
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// AccountFilter filtros de igualdad para cuentas (vacío = sin filtro).
type AccountFilter struct {
	Status      string
	Marketplace string
}

// ProductFilter filtros para productos. Search busca sin distinguir mayúsculas en sku, upc y name.
type ProductFilter struct {
	SKU    string
	UPC    string
	Search string
}

// OrderFilter filtros para pedidos. Los rangos de fecha son inclusivos.
// Search busca sin distinguir mayúsculas en orderNumber, poNumber, sku y name.
type OrderFilter struct {
	Search         string
	OrderNumber    string
	PONumber       string
	TrackingStatus string
	SKU            string
	Account        string
	OrderDateFrom  *time.Time
	OrderDateTo    *time.Time
	ShipByFrom     *time.Time
	ShipByTo       *time.Time
	MinProfit      *decimal.Decimal
	MinROI         *decimal.Decimal
}

// TaskFilter filtros de igualdad para tareas.
type TaskFilter struct {
	Status  string
	Type    string
	Account string
}

// UserFilter filtros para usuarios. Search busca en fullName y email.
type UserFilter struct {
	Search string
	Role   string
}
