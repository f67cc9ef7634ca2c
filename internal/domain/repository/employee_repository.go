package repository

import (
	"context"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
}
