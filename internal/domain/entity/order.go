package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Order pedido recibido en un marketplace y surtido desde un proveedor (sourcing).
// Los montos opcionales son nil cuando no se informaron.
type Order struct {
	ID                      string
	TrackingStatus          string // texto libre del transportista
	OrderNumEmail           string
	PONumber                string
	OrderNumber             string
	OrderDate               time.Time
	ShipBy                  time.Time
	CustomerShippingAddress string
	Quantity                int
	SKU                     string
	UPC                     string
	Name                    string
	Account                 string // accName de la cuenta, por convención (sin FK)
	SellingPrice            decimal.Decimal
	SourcingPrice           decimal.Decimal
	WalmartFee              *decimal.Decimal
	NetProfit               *decimal.Decimal
	ROI                     *decimal.Decimal
	Commission              *decimal.Decimal
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DeriveProfit completa NetProfit y ROI cuando no se informaron:
//
//	netProfit = sellingPrice - sourcingPrice - walmartFee - commission
//	roi       = netProfit / sourcingPrice * 100 (2 decimales, sólo si sourcingPrice > 0)
//
// Los valores ya presentes no se tocan. netProfit y roi son >= 0: un pedido con pérdida
// queda sin netProfit ni roi derivados.
func (o *Order) DeriveProfit() {
	if o.NetProfit == nil {
		np := o.SellingPrice.Sub(o.SourcingPrice).Sub(valueOrZero(o.WalmartFee)).Sub(valueOrZero(o.Commission))
		if np.IsNegative() {
			return
		}
		o.NetProfit = &np
	}
	if o.ROI == nil && o.SourcingPrice.IsPositive() {
		roi := o.NetProfit.Div(o.SourcingPrice).Mul(hundred).Round(2)
		o.ROI = &roi
	}
}

// Revenue sellingPrice * quantity.
func (o *Order) Revenue() decimal.Decimal {
	return o.SellingPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Profit netProfit informado (o 0).
func (o *Order) Profit() decimal.Decimal {
	return valueOrZero(o.NetProfit)
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
