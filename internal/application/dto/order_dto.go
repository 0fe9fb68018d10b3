package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido.
// Si netProfit / roi no vienen se derivan de los precios (ver entity.Order.DeriveProfit).
type CreateOrderRequest struct {
	TrackingStatus          string           `json:"trackingStatus" validate:"required"`
	OrderNumEmail           string           `json:"orderNumEmail" validate:"required"`
	PONumber                string           `json:"poNumber" validate:"required"`
	OrderNumber             string           `json:"orderNumber" validate:"required"`
	OrderDate               time.Time        `json:"orderDate" validate:"required"`
	ShipBy                  time.Time        `json:"shipBy" validate:"required"`
	CustomerShippingAddress string           `json:"customerShippingAddress" validate:"required"`
	Quantity                int              `json:"quantity" validate:"required,min=1"`
	SKU                     string           `json:"sku" validate:"required"`
	SellingPrice            decimal.Decimal  `json:"sellingPrice" validate:"gte=0"`
	SourcingPrice           decimal.Decimal  `json:"sourcingPrice" validate:"gte=0"`
	WalmartFee              *decimal.Decimal `json:"walmartFee,omitempty" validate:"omitnil,gte=0"`
	NetProfit               *decimal.Decimal `json:"netProfit,omitempty" validate:"omitnil,gte=0"`
	ROI                     *decimal.Decimal `json:"roi,omitempty" validate:"omitnil,gte=0"`
	Commission              *decimal.Decimal `json:"commission,omitempty" validate:"omitnil,gte=0"`
	UPC                     string           `json:"upc,omitempty"`
	Name                    string           `json:"name,omitempty"`
	Account                 string           `json:"account,omitempty"`
}

// UpdateOrderRequest actualización parcial. No re-deriva netProfit / roi.
type UpdateOrderRequest struct {
	TrackingStatus          *string          `json:"trackingStatus,omitempty" validate:"omitnil,min=1"`
	OrderNumEmail           *string          `json:"orderNumEmail,omitempty" validate:"omitnil,min=1"`
	PONumber                *string          `json:"poNumber,omitempty" validate:"omitnil,min=1"`
	OrderNumber             *string          `json:"orderNumber,omitempty" validate:"omitnil,min=1"`
	OrderDate               *time.Time       `json:"orderDate,omitempty"`
	ShipBy                  *time.Time       `json:"shipBy,omitempty"`
	CustomerShippingAddress *string          `json:"customerShippingAddress,omitempty" validate:"omitnil,min=1"`
	Quantity                *int             `json:"quantity,omitempty" validate:"omitnil,min=1"`
	SKU                     *string          `json:"sku,omitempty" validate:"omitnil,min=1"`
	SellingPrice            *decimal.Decimal `json:"sellingPrice,omitempty" validate:"omitnil,gte=0"`
	SourcingPrice           *decimal.Decimal `json:"sourcingPrice,omitempty" validate:"omitnil,gte=0"`
	WalmartFee              *decimal.Decimal `json:"walmartFee,omitempty" validate:"omitnil,gte=0"`
	NetProfit               *decimal.Decimal `json:"netProfit,omitempty" validate:"omitnil,gte=0"`
	ROI                     *decimal.Decimal `json:"roi,omitempty" validate:"omitnil,gte=0"`
	Commission              *decimal.Decimal `json:"commission,omitempty" validate:"omitnil,gte=0"`
	UPC                     *string          `json:"upc,omitempty"`
	Name                    *string          `json:"name,omitempty"`
	Account                 *string          `json:"account,omitempty"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID                      string           `json:"id"`
	TrackingStatus          string           `json:"trackingStatus"`
	OrderNumEmail           string           `json:"orderNumEmail"`
	PONumber                string           `json:"poNumber"`
	OrderNumber             string           `json:"orderNumber"`
	OrderDate               time.Time        `json:"orderDate"`
	ShipBy                  time.Time        `json:"shipBy"`
	CustomerShippingAddress string           `json:"customerShippingAddress"`
	Quantity                int              `json:"quantity"`
	SKU                     string           `json:"sku"`
	SellingPrice            decimal.Decimal  `json:"sellingPrice"`
	SourcingPrice           decimal.Decimal  `json:"sourcingPrice"`
	WalmartFee              *decimal.Decimal `json:"walmartFee,omitempty"`
	NetProfit               *decimal.Decimal `json:"netProfit,omitempty"`
	ROI                     *decimal.Decimal `json:"roi,omitempty"`
	Commission              *decimal.Decimal `json:"commission,omitempty"`
	UPC                     string           `json:"upc,omitempty"`
	Name                    string           `json:"name,omitempty"`
	Account                 string           `json:"account,omitempty"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

// OrderListResponse respuesta paginada de GET /orders.
type OrderListResponse struct {
	Data []OrderResponse `json:"data"`
	Meta PageMeta        `json:"meta"`
}

// OrderQuery filtros de GET /orders y de los sub-recursos /orders/filter/*.
// Las fechas se reciben como texto (YYYY-MM-DD o RFC3339) y las parsea el handler.
type OrderQuery struct {
	Search         string
	OrderNumber    string
	PONumber       string
	TrackingStatus string
	SKU            string
	Account        string
	StartDate      *time.Time
	EndDate        *time.Time
	ShipByStart    *time.Time
	ShipByEnd      *time.Time
	MinProfit      *decimal.Decimal
	MinROI         *decimal.Decimal
}
