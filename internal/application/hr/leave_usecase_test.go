package hr_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/application/hr"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	hrrules "github.com/jhoicas/Facturation-api/internal/domain/hr"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

const company = "company-1"

type leaveFixture struct {
	uc      *hr.LeaveUseCase
	leaves  *leaveRepo
	metrics *fakeMetrics
}

func newLeaveFixture() *leaveFixture {
	employees := newEmployeeRepo(
		entity.Employee{ID: "emp-1", CompanyID: company, FirstName: "Salma", LastName: "Idrissi"},
		entity.Employee{ID: "emp-x", CompanyID: "other", FirstName: "Omar", LastName: "Tazi"},
	)
	leaves := newLeaveRepo()
	m := &fakeMetrics{}
	calc := hrrules.NewWorkingDayCalculator(hrrules.NewHolidayCalendar(hrrules.DefaultHolidays))
	clk := clock.NewFake(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	return &leaveFixture{
		uc:      hr.NewLeaveUseCase(leaves, employees, calc, m, clk),
		leaves:  leaves,
		metrics: m,
	}
}

func annual(start, end string, sat bool) dto.CreateLeaveRequest {
	return dto.CreateLeaveRequest{
		EmployeeID: "emp-1", StartDate: start, EndDate: end,
		IncludeSaturdays: sat, Type: entity.LeaveTypeAnnual,
	}
}

func TestCreateLeave_CalculaDiasHabiles(t *testing.T) {
	f := newLeaveFixture()
	resp, err := f.uc.CreateLeave(context.Background(), company, annual("2024-01-01", "2024-01-07", false))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, entity.LeaveStatusPending, resp.Status)
	assert.Equal(t, "Salma Idrissi", resp.EmployeeName)
	assert.Equal(t, []string{entity.LeaveTypeAnnual}, f.metrics.types)
}

func TestCreateLeave_ConSabadosYFestivo(t *testing.T) {
	f := newLeaveFixture()
	// 28 abr a 3 may 2025 con sábado: lun-sáb = 6, menos el 1 de mayo.
	resp, err := f.uc.CreateLeave(context.Background(), company, annual("2025-04-28", "2025-05-03", true))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Days)
}

func TestCreateLeave_RangoInvertido(t *testing.T) {
	f := newLeaveFixture()
	_, err := f.uc.CreateLeave(context.Background(), company, annual("2024-01-07", "2024-01-01", false))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.leaves.rows)
}

func TestCreateLeave_Validaciones(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()

	in := annual("2024-01-01", "", false)
	_, err := f.uc.CreateLeave(ctx, company, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = annual("2024-01-01", "2024-01-02", false)
	in.Type = "vacaciones"
	_, err = f.uc.CreateLeave(ctx, company, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = annual("2024-01-01", "2024-01-02", false)
	in.EmployeeID = "nope"
	_, err = f.uc.CreateLeave(ctx, company, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in.EmployeeID = "emp-x"
	_, err = f.uc.CreateLeave(ctx, company, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateLeave_NoRecalculaDias(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()
	created, err := f.uc.CreateLeave(ctx, company, annual("2024-01-01", "2024-01-07", false))
	require.NoError(t, err)

	reason := "viaje"
	sat := true
	updated, err := f.uc.UpdateLeave(ctx, company, created.ID, dto.UpdateLeaveRequest{
		EndDate: "2024-01-14", IncludeSaturdays: &sat, Reason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Days)
	assert.Equal(t, "2024-01-14", updated.EndDate)
	assert.True(t, updated.IncludeSaturdays)

	got, err := f.uc.GetLeave(ctx, company, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Days)
	assert.Equal(t, "viaje", got.Reason)
}

func TestUpdateLeave_FinAnteriorAlInicio(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()
	created, err := f.uc.CreateLeave(ctx, company, annual("2024-01-08", "2024-01-10", false))
	require.NoError(t, err)

	_, err = f.uc.UpdateLeave(ctx, company, created.ID, dto.UpdateLeaveRequest{EndDate: "2024-01-05"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_SoloDesdePending(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()
	created, err := f.uc.CreateLeave(ctx, company, annual("2024-01-01", "2024-01-03", false))
	require.NoError(t, err)

	approved, err := f.uc.UpdateStatus(ctx, company, created.ID, entity.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatusApproved, approved.Status)

	_, err = f.uc.UpdateStatus(ctx, company, created.ID, entity.LeaveStatusRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.UpdateStatus(ctx, company, created.ID, entity.LeaveStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListLeaves_Filtros(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()
	a, err := f.uc.CreateLeave(ctx, company, annual("2024-01-01", "2024-01-03", false))
	require.NoError(t, err)
	_, err = f.uc.CreateLeave(ctx, company, annual("2024-02-05", "2024-02-06", false))
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, company, a.ID, entity.LeaveStatusApproved)
	require.NoError(t, err)

	all, err := f.uc.ListLeaves(ctx, company, repository.LeaveFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.uc.ListLeaves(ctx, company, repository.LeaveFilter{Status: entity.LeaveStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2024-02-05", pending[0].StartDate)

	_, err = f.uc.ListLeaves(ctx, company, repository.LeaveFilter{Status: "closed"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetLeave_OtraEmpresa(t *testing.T) {
	f := newLeaveFixture()
	ctx := context.Background()
	created, err := f.uc.CreateLeave(ctx, company, annual("2024-01-01", "2024-01-03", false))
	require.NoError(t, err)

	_, err = f.uc.GetLeave(ctx, "other", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.uc.GetLeave(ctx, company, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreview(t *testing.T) {
	f := newLeaveFixture()
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }

	p := f.uc.Preview(day(time.August, 18), day(time.August, 22), false)
	assert.Equal(t, 3, p.WorkingDays)
	assert.Equal(t, 5, p.CalendarDays)
	assert.Equal(t, []string{"08-20 Révolution du Roi et du Peuple", "08-21 Fête de la Jeunesse"}, p.Holidays)
	assert.Empty(t, p.Warning)

	inv := f.uc.Preview(day(time.August, 22), day(time.August, 18), false)
	assert.Equal(t, 0, inv.WorkingDays)
	assert.Equal(t, 0, inv.CalendarDays)
	assert.NotEmpty(t, inv.Warning)
	assert.Empty(t, inv.Holidays)
}
