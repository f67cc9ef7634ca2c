package hr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/application/hr"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

func TestEmployee_CrearYListar(t *testing.T) {
	repo := newEmployeeRepo()
	uc := hr.NewEmployeeUseCase(repo, nil)
	ctx := context.Background()

	e, err := uc.Create(ctx, company, dto.CreateEmployeeRequest{
		FirstName: " Youssef ", LastName: "Alaoui", Position: "Comptable", HireDate: "2023-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Youssef Alaoui", e.FullName)
	assert.Equal(t, "2023-09-01", e.HireDate)
	assert.Equal(t, entity.EmployeeStatusActive, e.Status)

	list, err := uc.List(ctx, company, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := uc.List(ctx, "other", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestEmployee_Validaciones(t *testing.T) {
	uc := hr.NewEmployeeUseCase(newEmployeeRepo(), nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, company, dto.CreateEmployeeRequest{FirstName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, company, dto.CreateEmployeeRequest{FirstName: "Ana", LastName: "B", HireDate: "01/09/2023"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Get(ctx, company, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
