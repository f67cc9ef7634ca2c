package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// LeaveFilter filtros opcionales del listado de ausencias.
type LeaveFilter struct {
	EmployeeID string
	Status     string
	Limit      int
	Offset     int
}

// LeaveRepository define el puerto de persistencia para LeaveRequest.
// Days se escribe en Create y nunca se modifica después.
type LeaveRepository interface {
	Create(ctx context.Context, leave *entity.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error)
	List(ctx context.Context, companyID string, filter LeaveFilter) ([]*entity.LeaveRequest, error)
	// Update persiste fechas, tipo, motivo e includeSaturdays; la columna days no se toca.
	Update(ctx context.Context, leave *entity.LeaveRequest) error
	UpdateStatus(ctx context.Context, id, status string) error
}
