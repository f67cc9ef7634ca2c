package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

// LeaveRepo implementación de LeaveRepository.
type LeaveRepo struct {
	q Querier
}

// NewLeaveRepository construye el adaptador.
func NewLeaveRepository(q Querier) *LeaveRepo {
	return &LeaveRepo{q: q}
}

const leaveColumns = `
	id, company_id, employee_id, start_date, end_date, include_saturdays,
	type, status, days, reason, created_at, updated_at`

// Create persiste la solicitud con los días ya calculados.
func (r *LeaveRepo) Create(ctx context.Context, l *entity.LeaveRequest) error {
	query := `INSERT INTO leave_requests (` + leaveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyID, l.EmployeeID, l.StartDate, l.EndDate, l.IncludeSaturdays,
		l.Type, l.Status, l.Days, l.Reason, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert leave: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert leave: %w", err)
	}
	return nil
}

func (r *LeaveRepo) GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error) {
	l, err := scanLeave(r.q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave: %w", err)
	}
	return l, nil
}

func (r *LeaveRepo) List(ctx context.Context, companyID string, f repository.LeaveFilter) ([]*entity.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + ` FROM leave_requests
		WHERE company_id = $1
		  AND ($2 = '' OR employee_id = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY start_date DESC, id
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, f.EmployeeID, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()

	var list []*entity.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update no incluye la columna days.
func (r *LeaveRepo) Update(ctx context.Context, l *entity.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET start_date = $2, end_date = $3, include_saturdays = $4, type = $5, reason = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		l.ID, l.StartDate, l.EndDate, l.IncludeSaturdays, l.Type, l.Reason, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeaveRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE leave_requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLeave(row pgx.Row) (*entity.LeaveRequest, error) {
	var l entity.LeaveRequest
	if err := row.Scan(
		&l.ID, &l.CompanyID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.IncludeSaturdays,
		&l.Type, &l.Status, &l.Days, &l.Reason, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.StartDate, l.EndDate = civil(l.StartDate), civil(l.EndDate)
	return &l, nil
}
