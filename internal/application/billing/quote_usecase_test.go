package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

func TestCreateQuote_PrefijoDEVYContadorPropio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.invoices.CreateInvoice(ctx, companyID, dto.CreateInvoiceRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)
	assert.Equal(t, "DEV-2025-001", q.Number)
	assert.Equal(t, entity.QuoteStatusDraft, q.Status)
	assert.Equal(t, "2025-04-09", q.ValidUntil)

	st := f.store.companies[companyID].Numbering
	assert.Equal(t, 1, st.InvoiceCounter)
	assert.Equal(t, 1, st.QuoteCounter)
}

func TestConvertToInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	res, err := f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2025-001", res.Invoice.Number)
	assert.Equal(t, entity.InvoiceStatusDraft, res.Invoice.Status)
	assert.Equal(t, q.ID, res.Invoice.QuoteID)
	assert.Equal(t, q.Totals.TotalTTC.String(), res.Invoice.Totals.TotalTTC.String())
	assert.Equal(t, entity.QuoteStatusAccepted, f.store.quotes[q.ID].Status)

	_, err = f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict, "no se convierte dos veces")
}

func TestConvertToInvoice_RollbackSiFallaElDevis(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	f.store.failQuoteStatus = errDB
	_, err = f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	require.ErrorIs(t, err, errDB)

	assert.Empty(t, f.store.invoices, "la factura se revierte junto con el devis")
	assert.Zero(t, f.store.companies[companyID].Numbering.InvoiceCounter)
	assert.Equal(t, entity.QuoteStatusDraft, f.store.quotes[q.ID].Status)
}

func TestConvertToInvoice_ConversionConcurrenteNoDuplicaFactura(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	// otra conversión acepta el devis entre la lectura y la transacción
	f.store.beforeTx = func(s *memStore) {
		cur := s.quotes[q.ID]
		cur.Status = entity.QuoteStatusAccepted
		s.quotes[q.ID] = cur
	}
	_, err = f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	require.ErrorIs(t, err, domain.ErrConflict)

	assert.Empty(t, f.store.invoices, "no se crea una segunda factura")
	assert.Zero(t, f.store.companies[companyID].Numbering.InvoiceCounter, "no se consume número")
	assert.Equal(t, 1, f.metrics.failed[entity.DocumentInvoice])
}

func TestConvertToInvoice_EstadosNoConvertibles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	_, err = f.quotes.UpdateStatus(ctx, companyID, q.ID, entity.QuoteStatusRejected)
	require.NoError(t, err)

	_, err = f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestQuoteUpdateStatus_AcceptedSoloPorConversion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)

	_, err = f.quotes.UpdateStatus(ctx, companyID, q.ID, entity.QuoteStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	resp, err := f.quotes.UpdateStatus(ctx, companyID, q.ID, entity.QuoteStatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusSent, resp.Status)
}

func TestUpdateQuote_AceptadoNoSeModifica(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	q, err := f.quotes.CreateQuote(ctx, companyID, dto.CreateQuoteRequest{ClientID: "client-1", Items: sampleItems()})
	require.NoError(t, err)
	_, err = f.quotes.ConvertToInvoice(ctx, companyID, q.ID, dto.ConvertQuoteRequest{})
	require.NoError(t, err)

	_, err = f.quotes.UpdateQuote(ctx, companyID, q.ID, dto.UpdateQuoteRequest{Items: sampleItems()})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
