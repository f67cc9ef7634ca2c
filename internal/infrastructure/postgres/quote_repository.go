package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `
	id, company_id, client_id, number, date, valid_until,
	subtotal, total_vat, total_ttc, total_in_words, status,
	created_at, updated_at`

// Create persiste la cabecera y las líneas del devis.
func (r *QuoteRepo) Create(ctx context.Context, qt *entity.Quote) error {
	if qt.ID == "" {
		qt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		qt.ID, qt.CompanyID, qt.ClientID, qt.Number, qt.Date, qt.ValidUntil,
		qt.Totals.Subtotal, qt.Totals.TotalVat, qt.Totals.TotalTTC, qt.TotalInWords, qt.Status,
		qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("quote number %s already exists: %w", qt.Number, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return quoteItems.insert(ctx, r.q, qt.ID, qt.Items)
}

// GetByID obtiene un devis completo (con líneas).
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	qt, err := scanQuote(r.q.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if qt.Items, err = quoteItems.load(ctx, r.q, qt.ID); err != nil {
		return nil, err
	}
	return qt, nil
}

// List devuelve cabeceras (sin líneas), más recientes primero.
func (r *QuoteRepo) List(ctx context.Context, companyID string, f repository.QuoteFilter) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + ` FROM quotes
		WHERE company_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR client_id = $3)
		ORDER BY date DESC, number DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, f.Status, f.ClientID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		qt, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, qt)
	}
	return list, rows.Err()
}

// Update reemplaza cliente, fechas, totales y líneas.
func (r *QuoteRepo) Update(ctx context.Context, qt *entity.Quote) error {
	query := `
		UPDATE quotes
		SET client_id = $2, date = $3, valid_until = $4,
		    subtotal = $5, total_vat = $6, total_ttc = $7, total_in_words = $8,
		    updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		qt.ID, qt.ClientID, qt.Date, qt.ValidUntil,
		qt.Totals.Subtotal, qt.Totals.TotalVat, qt.Totals.TotalTTC, qt.TotalInWords,
		qt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return quoteItems.replace(ctx, r.q, qt.ID, qt.Items)
}

// UpdateStatus cambia el estado del devis.
func (r *QuoteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE quotes SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkConverted acepta el devis de forma condicional. Con conversiones concurrentes
// la segunda espera el lock de la fila y, tras el commit de la primera, no encuentra
// un estado convertible.
func (r *QuoteRepo) MarkConverted(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE quotes SET status = $2, updated_at = now()
		WHERE id = $1 AND status IN ($3, $4)`,
		id, entity.QuoteStatusAccepted, entity.QuoteStatusDraft, entity.QuoteStatusSent,
	)
	if err != nil {
		return fmt.Errorf("mark quote converted: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: el devis ya fue convertido", domain.ErrConflict)
	}
	return nil
}

// Delete elimina el devis. Una factura convertida conserva sus datos (quote_id queda NULL).
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var qt entity.Quote
	err := row.Scan(
		&qt.ID, &qt.CompanyID, &qt.ClientID, &qt.Number, &qt.Date, &qt.ValidUntil,
		&qt.Totals.Subtotal, &qt.Totals.TotalVat, &qt.Totals.TotalTTC, &qt.TotalInWords, &qt.Status,
		&qt.CreatedAt, &qt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	qt.Date, qt.ValidUntil = civil(qt.Date), civil(qt.ValidUntil)
	return &qt, nil
}
