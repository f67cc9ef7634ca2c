package hr_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

type employeeRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Employee
}

var _ repository.EmployeeRepository = (*employeeRepo)(nil)

func newEmployeeRepo(list ...entity.Employee) *employeeRepo {
	r := &employeeRepo{rows: map[string]entity.Employee{}}
	for _, e := range list {
		r.rows[e.ID] = e
	}
	return r
}

func (r *employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[e.ID] = *e
	return nil
}

func (r *employeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *employeeRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Employee
	for _, e := range r.rows {
		if e.CompanyID == companyID {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return page(out, limit, offset), nil
}

type leaveRepo struct {
	mu   sync.Mutex
	rows map[string]entity.LeaveRequest
}

var _ repository.LeaveRepository = (*leaveRepo)(nil)

func newLeaveRepo() *leaveRepo { return &leaveRepo{rows: map[string]entity.LeaveRequest{}} }

func (r *leaveRepo) Create(_ context.Context, l *entity.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[l.ID] = *l
	return nil
}

func (r *leaveRepo) GetByID(_ context.Context, id string) (*entity.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *leaveRepo) List(_ context.Context, companyID string, f repository.LeaveFilter) ([]*entity.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LeaveRequest
	for _, l := range r.rows {
		if l.CompanyID != companyID {
			continue
		}
		if f.EmployeeID != "" && l.EmployeeID != f.EmployeeID {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		l := l
		out = append(out, &l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return page(out, f.Limit, f.Offset), nil
}

// Update imita al repo SQL: la columna days no se modifica.
func (r *leaveRepo) Update(_ context.Context, l *entity.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.rows[l.ID]
	days := cur.Days
	cur = *l
	cur.Days = days
	r.rows[l.ID] = cur
	return nil
}

func (r *leaveRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.rows[id]
	l.Status = status
	r.rows[id] = l
	return nil
}

type fakeMetrics struct{ types []string }

func (m *fakeMetrics) LeaveRequested(t string) { m.types = append(m.types, t) }

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
