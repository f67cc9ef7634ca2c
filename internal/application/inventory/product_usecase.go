// Package inventory contiene los casos de uso del catálogo de productos y el reporte de stock.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// ProductUseCase casos de uso CRUD para productos. Stock es el stock inicial y solo cambia por edición.
type ProductUseCase struct {
	repo  repository.ProductRepository
	clock clock.Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, clk clock.Clock) *ProductUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &ProductUseCase{repo: repo, clock: clk}
}

// Create crea un producto activo.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if err := nonNegative(map[string]decimal.Decimal{
		"purchase_price": in.PurchasePrice,
		"sale_price":     in.SalePrice,
		"stock":          in.Stock,
		"min_stock":      in.MinStock,
	}); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          name,
		Category:      strings.TrimSpace(in.Category),
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Unit:          strings.TrimSpace(in.Unit),
		Stock:         in.Stock,
		MinStock:      in.MinStock,
		Status:        entity.ProductStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto de la empresa.
func (uc *ProductUseCase) Get(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos; search filtra por nombre o categoría.
func (uc *ProductUseCase) List(ctx context.Context, companyID, search string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update modifica los campos enviados.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Name = name
	}
	if in.Status != nil {
		if *in.Status != entity.ProductStatusActive && *in.Status != entity.ProductStatusInactive {
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *in.Status)
		}
		p.Status = *in.Status
	}
	for _, f := range []struct {
		name string
		src  *decimal.Decimal
		dst  *decimal.Decimal
	}{
		{"purchase_price", in.PurchasePrice, &p.PurchasePrice},
		{"sale_price", in.SalePrice, &p.SalePrice},
		{"stock", in.Stock, &p.Stock},
		{"min_stock", in.MinStock, &p.MinStock},
	} {
		if f.src == nil {
			continue
		}
		if f.src.IsNegative() {
			return nil, fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, f.name)
		}
		*f.dst = *f.src
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Unit != nil {
		p.Unit = strings.TrimSpace(*in.Unit)
	}
	p.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina el producto. Las facturas no lo referencian: solo se pierde el cruce de stock.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.load(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) load(ctx context.Context, companyID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func nonNegative(fields map[string]decimal.Decimal) error {
	for name, v := range fields {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Unit:          p.Unit,
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Status:        p.Status,
	}
}
