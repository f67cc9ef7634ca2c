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
	hrrules "github.com/jhoicas/Facturation-api/internal/domain/hr"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// LeaveUseCase solicitudes de ausencia. Los días hábiles se calculan al crear y no se
// recalculan al editar.
type LeaveUseCase struct {
	leaveRepo    repository.LeaveRepository
	employeeRepo repository.EmployeeRepository
	calc         *hrrules.WorkingDayCalculator
	metrics      Metrics
	clock        clock.Clock
}

// NewLeaveUseCase construye el caso de uso. metrics y clk pueden ser nil.
func NewLeaveUseCase(
	leaveRepo repository.LeaveRepository,
	employeeRepo repository.EmployeeRepository,
	calc *hrrules.WorkingDayCalculator,
	metrics Metrics,
	clk clock.Clock,
) *LeaveUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &LeaveUseCase{leaveRepo: leaveRepo, employeeRepo: employeeRepo, calc: calc, metrics: metrics, clock: clk}
}

// CreateLeave valida el rango (fin >= inicio), calcula los días hábiles y guarda la solicitud en pending.
func (uc *LeaveUseCase) CreateLeave(ctx context.Context, companyID string, in dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	employee, err := loadEmployee(ctx, uc.employeeRepo, companyID, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidLeaveType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de ausencia %q", domain.ErrInvalidInput, in.Type)
	}

	now := uc.clock.Now()
	leave := &entity.LeaveRequest{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		EmployeeID:       employee.ID,
		StartDate:        start,
		EndDate:          end,
		IncludeSaturdays: in.IncludeSaturdays,
		Type:             in.Type,
		Status:           entity.LeaveStatusPending,
		Days:             uc.calc.CountWorkingDays(start, end, in.IncludeSaturdays),
		Reason:           strings.TrimSpace(in.Reason),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}
	uc.metrics.LeaveRequested(leave.Type)
	return toLeaveResponse(leave, employee.FullName()), nil
}

// GetLeave obtiene una solicitud de la empresa.
func (uc *LeaveUseCase) GetLeave(ctx context.Context, companyID, id string) (*dto.LeaveResponse, error) {
	leave, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toLeaveResponse(leave, uc.employeeName(ctx, leave.EmployeeID)), nil
}

// ListLeaves lista solicitudes, opcionalmente por empleado y estado.
func (uc *LeaveUseCase) ListLeaves(ctx context.Context, companyID string, filter repository.LeaveFilter) ([]*dto.LeaveResponse, error) {
	if filter.Status != "" && !isLeaveStatus(filter.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, filter.Status)
	}
	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()
	filter.Limit, filter.Offset = page.Limit, page.Offset

	list, err := uc.leaveRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	out := make([]*dto.LeaveResponse, 0, len(list))
	for _, l := range list {
		name, ok := names[l.EmployeeID]
		if !ok {
			name = uc.employeeName(ctx, l.EmployeeID)
			names[l.EmployeeID] = name
		}
		out = append(out, toLeaveResponse(l, name))
	}
	return out, nil
}

// UpdateLeave edita fechas, tipo, motivo o includeSaturdays. Days conserva el valor calculado
// al crear la solicitud.
func (uc *LeaveUseCase) UpdateLeave(ctx context.Context, companyID, id string, in dto.UpdateLeaveRequest) (*dto.LeaveResponse, error) {
	leave, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	startStr, endStr := in.StartDate, in.EndDate
	if startStr == "" {
		startStr = leave.StartDate.Format(dto.DateLayout)
	}
	if endStr == "" {
		endStr = leave.EndDate.Format(dto.DateLayout)
	}
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	if in.Type != "" {
		if !entity.IsValidLeaveType(in.Type) {
			return nil, fmt.Errorf("%w: tipo de ausencia %q", domain.ErrInvalidInput, in.Type)
		}
		leave.Type = in.Type
	}
	if in.IncludeSaturdays != nil {
		leave.IncludeSaturdays = *in.IncludeSaturdays
	}
	if in.Reason != nil {
		leave.Reason = strings.TrimSpace(*in.Reason)
	}
	leave.StartDate, leave.EndDate = start, end
	leave.UpdatedAt = uc.clock.Now()

	if err := uc.leaveRepo.Update(ctx, leave); err != nil {
		return nil, err
	}
	return toLeaveResponse(leave, uc.employeeName(ctx, leave.EmployeeID)), nil
}

// UpdateStatus aprueba o rechaza. Solo una solicitud pending puede cambiar de estado.
func (uc *LeaveUseCase) UpdateStatus(ctx context.Context, companyID, id, status string) (*dto.LeaveResponse, error) {
	if status != entity.LeaveStatusApproved && status != entity.LeaveStatusRejected {
		return nil, fmt.Errorf("%w: estado %q (approved|rejected)", domain.ErrInvalidInput, status)
	}
	leave, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if leave.Status != entity.LeaveStatusPending {
		return nil, fmt.Errorf("%w: la solicitud ya está %s", domain.ErrInvalidTransition, leave.Status)
	}
	if err := uc.leaveRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	leave.Status = status
	return toLeaveResponse(leave, uc.employeeName(ctx, leave.EmployeeID)), nil
}

// Preview cuenta días hábiles y calendario de un rango, sin guardar nada.
// Un rango invertido no es error: devuelve 0 días y un aviso.
func (uc *LeaveUseCase) Preview(start, end time.Time, includeSaturdays bool) *dto.LeavePreviewResponse {
	resp := &dto.LeavePreviewResponse{
		StartDate:    start.Format(dto.DateLayout),
		EndDate:      end.Format(dto.DateLayout),
		WorkingDays:  uc.calc.CountWorkingDays(start, end, includeSaturdays),
		CalendarDays: uc.calc.CountCalendarDays(start, end),
		Holidays:     []string{},
	}
	if end.Before(start) {
		resp.Warning = "la fecha de fin es anterior a la fecha de inicio"
		return resp
	}
	for _, h := range uc.calc.HolidaysBetween(start, end) {
		label := fmt.Sprintf("%02d-%02d", int(h.Month), h.Day)
		if h.Name != "" {
			label += " " + h.Name
		}
		resp.Holidays = append(resp.Holidays, label)
	}
	return resp
}

func (uc *LeaveUseCase) load(ctx context.Context, companyID, id string) (*entity.LeaveRequest, error) {
	leave, err := uc.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener ausencia: %w", err)
	}
	if leave == nil {
		return nil, domain.ErrNotFound
	}
	if leave.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return leave, nil
}

func (uc *LeaveUseCase) employeeName(ctx context.Context, id string) string {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil || e == nil {
		return ""
	}
	return e.FullName()
}

// parseRange exige ambas fechas y fin >= inicio.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dto.DateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q inválida", domain.ErrInvalidInput, startStr)
	}
	end, err := time.Parse(dto.DateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q inválida", domain.ErrInvalidInput, endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: la fecha de fin es anterior a la fecha de inicio", domain.ErrInvalidInput)
	}
	return start, end, nil
}

func isLeaveStatus(s string) bool {
	switch s {
	case entity.LeaveStatusPending, entity.LeaveStatusApproved, entity.LeaveStatusRejected:
		return true
	}
	return false
}

func toLeaveResponse(l *entity.LeaveRequest, employeeName string) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		EmployeeName:     employeeName,
		StartDate:        l.StartDate.Format(dto.DateLayout),
		EndDate:          l.EndDate.Format(dto.DateLayout),
		IncludeSaturdays: l.IncludeSaturdays,
		Type:             l.Type,
		Status:           l.Status,
		Days:             l.Days,
		Reason:           l.Reason,
	}
}
