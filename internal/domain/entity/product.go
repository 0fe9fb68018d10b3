package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo publicado en los marketplaces.
type Product struct {
	ID           string
	SKU          string // único
	UPC          string // único
	WMID         string // id del ítem en Walmart
	Name         string
	SitePrice    decimal.Decimal // precio publicado en el sitio
	SellingPrice decimal.Decimal // precio de venta efectivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
