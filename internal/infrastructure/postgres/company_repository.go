package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `
	id, name, ice, address, phone, email, template,
	numbering_format, numbering_prefix, invoice_counter, quote_counter,
	last_invoice_year, last_quote_year, created_at, updated_at`

// Create persiste una nueva empresa con su estado de numeración inicial.
// Si el id ya existe no hace nada: la fila existente conserva su contador.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING`
	n := c.Numbering
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.ICE, c.Address, c.Phone, c.Email, c.Template,
		string(n.Format), n.Prefix, n.InvoiceCounter, n.QuoteCounter,
		n.LastInvoiceYear, n.LastQuoteYear, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.get(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetForUpdate igual que GetByID pero con SELECT ... FOR UPDATE: la fila queda bloqueada
// hasta Commit/Rollback, así dos documentos nunca leen el mismo contador.
func (r *CompanyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Company, error) {
	return r.get(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1 FOR UPDATE`, id)
}

func (r *CompanyRepo) get(ctx context.Context, query, id string) (*entity.Company, error) {
	var c entity.Company
	var format string
	n := &c.Numbering
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ICE, &c.Address, &c.Phone, &c.Email, &c.Template,
		&format, &n.Prefix, &n.InvoiceCounter, &n.QuoteCounter,
		&n.LastInvoiceYear, &n.LastQuoteYear, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	n.Format = entity.NumberingFormat(format)
	return &c, nil
}

// UpdateNumbering persiste formato, prefijo, contadores y años.
func (r *CompanyRepo) UpdateNumbering(ctx context.Context, companyID string, n entity.NumberingState) error {
	query := `
		UPDATE companies
		SET numbering_format  = $2,
		    numbering_prefix  = $3,
		    invoice_counter   = $4,
		    quote_counter     = $5,
		    last_invoice_year = $6,
		    last_quote_year   = $7,
		    updated_at        = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		companyID, string(n.Format), n.Prefix, n.InvoiceCounter, n.QuoteCounter,
		n.LastInvoiceYear, n.LastQuoteYear,
	)
	if err != nil {
		return fmt.Errorf("update numbering: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza cabecera y plantilla (la numeración no se toca).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, ice = $3, address = $4, phone = $5, email = $6, template = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.ICE, c.Address, c.Phone, c.Email, c.Template, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
