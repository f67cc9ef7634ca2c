package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// QuoteFilter filtros opcionales del listado de devis.
type QuoteFilter struct {
	Status   string
	ClientID string
	Limit    int
	Offset   int
}

// QuoteRepository define el puerto de persistencia para Quote (devis) y sus líneas.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	List(ctx context.Context, companyID string, filter QuoteFilter) ([]*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	UpdateStatus(ctx context.Context, id, status string) error

	// MarkConverted pasa el devis a accepted solo si sigue en draft o sent.
	// Devuelve domain.ErrConflict si otra conversión ya lo aceptó.
	MarkConverted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
