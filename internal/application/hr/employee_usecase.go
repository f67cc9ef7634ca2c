package hr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// EmployeeUseCase alta y consulta de empleados.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	clock clock.Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, clk clock.Clock) *EmployeeUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &EmployeeUseCase{repo: repo, clock: clk}
}

// Create registra un empleado activo.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: first_name y last_name son requeridos", domain.ErrInvalidInput)
	}
	var hire time.Time
	if s := strings.TrimSpace(in.HireDate); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: hire_date %q inválida", domain.ErrInvalidInput, s)
		}
		hire = t
	}
	now := uc.clock.Now()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		FirstName: first,
		LastName:  last,
		Position:  strings.TrimSpace(in.Position),
		Email:     strings.TrimSpace(in.Email),
		HireDate:  hire,
		Status:    entity.EmployeeStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Get obtiene un empleado de la empresa.
func (uc *EmployeeUseCase) Get(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	e, err := loadEmployee(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista empleados de la empresa.
func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

func loadEmployee(ctx context.Context, repo repository.EmployeeRepository, companyID, id string) (*entity.Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: employee_id requerido", domain.ErrInvalidInput)
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return e, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Position:  e.Position,
		Email:     e.Email,
		Status:    e.Status,
	}
	if !e.HireDate.IsZero() {
		resp.HireDate = e.HireDate.Format(dto.DateLayout)
	}
	return resp
}
