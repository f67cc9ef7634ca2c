package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
)

func TestClientUseCase_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := billing.NewClientUseCase(clientRepo{f.store}, f.clock)

	_, err := uc.Create(ctx, companyID, dto.CreateClientRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	created, err := uc.Create(ctx, companyID, dto.CreateClientRequest{Name: " Marjane ", ICE: "002233445000011"})
	require.NoError(t, err)
	assert.Equal(t, "Marjane", created.Name)

	updated, err := uc.Update(ctx, companyID, created.ID, dto.UpdateClientRequest{Phone: strPtr("+212 522 000000")})
	require.NoError(t, err)
	assert.Equal(t, "+212 522 000000", updated.Phone)
	assert.Equal(t, "002233445000011", updated.ICE)

	list, err := uc.List(ctx, companyID, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 2, "client-1 del fixture más el nuevo")

	_, err = uc.Get(ctx, companyID, "client-x")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(ctx, companyID, created.ID))
	_, err = uc.Get(ctx, companyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUseCase_NoSeBorraConFacturas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.invoices.CreateInvoice(ctx, companyID, dto.CreateInvoiceRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	uc := billing.NewClientUseCase(clientRepo{f.store}, f.clock)
	assert.ErrorIs(t, uc.Delete(ctx, companyID, "client-1"), domain.ErrConflict)
}
