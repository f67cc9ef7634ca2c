package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del listado de facturas.
type InvoiceFilter struct {
	Status   string
	ClientID string
	Limit    int
	Offset   int
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create persiste cabecera y líneas (en el orden recibido).
	// Un número repetido para la misma empresa devuelve domain.ErrDuplicate.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, companyID string, filter InvoiceFilter) ([]*entity.Invoice, error)
	// Update reemplaza fechas, líneas y totales; el número no cambia.
	Update(ctx context.Context, invoice *entity.Invoice) error
	UpdateStatus(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
