package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (catálogo).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Product, error)
	// ListAllByCompany devuelve el catálogo completo (sin paginar), para el reporte de stock.
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
