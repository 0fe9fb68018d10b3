package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Precios positivos.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,max=100"`
	UPC          string          `json:"upc" validate:"required,max=100"`
	WMID         string          `json:"wmid" validate:"required,max=100"`
	Name         string          `json:"name" validate:"required,max=300"`
	SitePrice    decimal.Decimal `json:"sitePrice" validate:"gt=0"`
	SellingPrice decimal.Decimal `json:"sellingPrice" validate:"gt=0"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	SKU          *string          `json:"sku,omitempty" validate:"omitnil,min=1,max=100"`
	UPC          *string          `json:"upc,omitempty" validate:"omitnil,min=1,max=100"`
	WMID         *string          `json:"wmid,omitempty" validate:"omitnil,min=1,max=100"`
	Name         *string          `json:"name,omitempty" validate:"omitnil,min=1,max=300"`
	SitePrice    *decimal.Decimal `json:"sitePrice,omitempty" validate:"omitnil,gt=0"`
	SellingPrice *decimal.Decimal `json:"sellingPrice,omitempty" validate:"omitnil,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	UPC          string          `json:"upc"`
	WMID         string          `json:"wmid"`
	Name         string          `json:"name"`
	SitePrice    decimal.Decimal `json:"sitePrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductQuery filtros de GET /products.
type ProductQuery struct {
	SKU    string `query:"sku"`
	UPC    string `query:"upc"`
	Search string `query:"search"`
}
