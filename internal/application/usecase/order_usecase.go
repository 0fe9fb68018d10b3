package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/internal/domain"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-admin-api/internal/domain/repository"
)

// OrderUseCase casos de uso para pedidos: CRUD, listado paginado y filtros por campo.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea un pedido. netProfit y roi se derivan si no vienen informados.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	ts := now()
	order := &entity.Order{
		ID:                      uuid.New().String(),
		TrackingStatus:          in.TrackingStatus,
		OrderNumEmail:           in.OrderNumEmail,
		PONumber:                in.PONumber,
		OrderNumber:             in.OrderNumber,
		OrderDate:               utcMillis(in.OrderDate),
		ShipBy:                  utcMillis(in.ShipBy),
		CustomerShippingAddress: in.CustomerShippingAddress,
		Quantity:                in.Quantity,
		SKU:                     in.SKU,
		UPC:                     in.UPC,
		Name:                    in.Name,
		Account:                 in.Account,
		SellingPrice:            in.SellingPrice,
		SourcingPrice:           in.SourcingPrice,
		WalmartFee:              in.WalmartFee,
		NetProfit:               in.NetProfit,
		ROI:                     in.ROI,
		Commission:              in.Commission,
		CreatedAt:               ts,
		UpdatedAt:               ts,
	}
	order.DeriveProfit()
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List listado paginado con búsqueda libre y filtros.
func (uc *OrderUseCase) List(ctx context.Context, q dto.OrderQuery, p dto.PageRequest) (*dto.OrderListResponse, error) {
	page := repository.Page{Page: p.Page, Limit: p.Limit}.Normalize()
	list, total, err := uc.repo.ListPaged(ctx, toOrderFilter(q), page)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Data: toOrderResponses(list),
		Meta: dto.PageMeta{Total: total, Page: page.Page, Limit: page.Limit, TotalPages: page.TotalPages(total)},
	}, nil
}

// Filter devuelve todos los pedidos que cumplen q, sin paginar (sub-rutas /orders/filter/*).
func (uc *OrderUseCase) Filter(ctx context.Context, q dto.OrderQuery) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx, toOrderFilter(q))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update aplica los campos presentes. No recalcula netProfit / roi.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&o.TrackingStatus, in.TrackingStatus)
	setString(&o.OrderNumEmail, in.OrderNumEmail)
	setString(&o.PONumber, in.PONumber)
	setString(&o.OrderNumber, in.OrderNumber)
	setString(&o.CustomerShippingAddress, in.CustomerShippingAddress)
	setString(&o.SKU, in.SKU)
	setString(&o.UPC, in.UPC)
	setString(&o.Name, in.Name)
	setString(&o.Account, in.Account)
	if in.OrderDate != nil {
		o.OrderDate = utcMillis(*in.OrderDate)
	}
	if in.ShipBy != nil {
		o.ShipBy = utcMillis(*in.ShipBy)
	}
	if in.Quantity != nil {
		o.Quantity = *in.Quantity
	}
	if in.SellingPrice != nil {
		o.SellingPrice = *in.SellingPrice
	}
	if in.SourcingPrice != nil {
		o.SourcingPrice = *in.SourcingPrice
	}
	if in.WalmartFee != nil {
		o.WalmartFee = in.WalmartFee
	}
	if in.NetProfit != nil {
		o.NetProfit = in.NetProfit
	}
	if in.ROI != nil {
		o.ROI = in.ROI
	}
	if in.Commission != nil {
		o.Commission = in.Commission
	}
	o.UpdatedAt = now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Delete elimina un pedido por ID.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func toOrderFilter(q dto.OrderQuery) repository.OrderFilter {
	return repository.OrderFilter{
		Search:         strings.TrimSpace(q.Search),
		OrderNumber:    q.OrderNumber,
		PONumber:       q.PONumber,
		TrackingStatus: q.TrackingStatus,
		SKU:            q.SKU,
		Account:        q.Account,
		OrderDateFrom:  q.StartDate,
		OrderDateTo:    q.EndDate,
		ShipByFrom:     q.ShipByStart,
		ShipByTo:       q.ShipByEnd,
		MinProfit:      q.MinProfit,
		MinROI:         q.MinROI,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                      o.ID,
		TrackingStatus:          o.TrackingStatus,
		OrderNumEmail:           o.OrderNumEmail,
		PONumber:                o.PONumber,
		OrderNumber:             o.OrderNumber,
		OrderDate:               o.OrderDate,
		ShipBy:                  o.ShipBy,
		CustomerShippingAddress: o.CustomerShippingAddress,
		Quantity:                o.Quantity,
		SKU:                     o.SKU,
		SellingPrice:            o.SellingPrice,
		SourcingPrice:           o.SourcingPrice,
		WalmartFee:              o.WalmartFee,
		NetProfit:               o.NetProfit,
		ROI:                     o.ROI,
		Commission:              o.Commission,
		UPC:                     o.UPC,
		Name:                    o.Name,
		Account:                 o.Account,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}
