package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (tenant) y su estado de numeración.
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create inserta la empresa; si ya existe no hace nada (la fila existente gana).
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)

	// GetForUpdate lee la empresa bloqueando su fila hasta el fin de la transacción.
	// Solo tiene sentido dentro de TxRunner.RunDocuments: serializa la emisión de números.
	GetForUpdate(ctx context.Context, id string) (*entity.Company, error)

	// UpdateNumbering persiste formato, prefijo, contadores y años de la numeración.
	UpdateNumbering(ctx context.Context, companyID string, state entity.NumberingState) error

	// Update persiste plantilla y datos de cabecera (no toca la numeración).
	Update(ctx context.Context, company *entity.Company) error
}
