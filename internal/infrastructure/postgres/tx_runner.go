package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ billing.DocumentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunDocuments inicia una transacción (READ COMMITTED), ejecuta fn con los repos de empresa,
// facturas y devis atados a la tx y hace Commit o Rollback. El bloqueo de la fila de la empresa
// (GetForUpdate) vive hasta el Commit.
func (r *TxRunner) RunDocuments(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	quoteRepo repository.QuoteRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewInvoiceRepository(tx), NewQuoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
