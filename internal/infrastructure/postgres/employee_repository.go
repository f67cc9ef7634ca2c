package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, company_id, first_name, last_name, position, email, hire_date, status, created_at, updated_at`

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.FirstName, e.LastName, e.Position, e.Email, nullDate(e.HireDate),
		e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1
		ORDER BY last_name, first_name, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var hire *time.Time
	if err := row.Scan(
		&e.ID, &e.CompanyID, &e.FirstName, &e.LastName, &e.Position, &e.Email, &hire,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if hire != nil {
		e.HireDate = civil(*hire)
	}
	return &e, nil
}
