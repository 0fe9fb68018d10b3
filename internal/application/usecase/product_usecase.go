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

// ProductUseCase casos de uso CRUD para productos. sku y upc son únicos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.UPC = strings.TrimSpace(in.UPC)
	if err := validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkUnique(ctx, "", in.SKU, in.UPC); err != nil {
		return nil, err
	}
	ts := now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		UPC:          in.UPC,
		WMID:         in.WMID,
		Name:         in.Name,
		SitePrice:    in.SitePrice,
		SellingPrice: in.SellingPrice,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// checkUnique verifica sku / upc contra otros productos (selfID se ignora).
func (uc *ProductUseCase) checkUnique(ctx context.Context, selfID, sku, upc string) error {
	if sku != "" {
		p, err := uc.repo.GetBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if p != nil && p.ID != selfID {
			return domain.Duplicate("sku")
		}
	}
	if upc != "" {
		p, err := uc.repo.GetByUPC(ctx, upc)
		if err != nil {
			return err
		}
		if p != nil && p.ID != selfID {
			return domain.Duplicate("upc")
		}
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos; sku/upc son igualdad, search es subcadena sin distinguir mayúsculas.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{SKU: q.SKU, UPC: q.UPC, Search: strings.TrimSpace(q.Search)})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza los campos presentes; re-verifica unicidad si cambian sku o upc.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	var newSKU, newUPC string
	if in.SKU != nil && strings.TrimSpace(*in.SKU) != product.SKU {
		newSKU = strings.TrimSpace(*in.SKU)
	}
	if in.UPC != nil && strings.TrimSpace(*in.UPC) != product.UPC {
		newUPC = strings.TrimSpace(*in.UPC)
	}
	if blank(in.SKU) {
		return nil, domain.NewValidationError("sku", "required")
	}
	if blank(in.UPC) {
		return nil, domain.NewValidationError("upc", "required")
	}
	if err := uc.checkUnique(ctx, product.ID, newSKU, newUPC); err != nil {
		return nil, err
	}
	if newSKU != "" {
		product.SKU = newSKU
	}
	if newUPC != "" {
		product.UPC = newUPC
	}
	if in.WMID != nil {
		product.WMID = *in.WMID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SitePrice != nil {
		product.SitePrice = *in.SitePrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	product.UpdatedAt = now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		UPC:          p.UPC,
		WMID:         p.WMID,
		Name:         p.Name,
		SitePrice:    p.SitePrice,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
