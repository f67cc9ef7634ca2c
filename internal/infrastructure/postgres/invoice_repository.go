package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Create y Update escriben cabecera y líneas: llamarlos dentro de una transacción.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, company_id, client_id, number, date, due_date,
	subtotal, total_vat, total_ttc, total_in_words, status,
	payment_method, collection_date, collection_type, quote_id,
	created_at, updated_at`

// Create persiste la cabecera y las líneas de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.ClientID, inv.Number, inv.Date, inv.DueDate,
		inv.Totals.Subtotal, inv.Totals.TotalVat, inv.Totals.TotalTTC, inv.TotalInWords, inv.Status,
		inv.PaymentMethod, inv.CollectionDate, inv.CollectionType, nullIfEmpty(inv.QuoteID),
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number %s already exists: %w", inv.Number, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return invoiceItems.insert(ctx, r.q, inv.ID, inv.Items)
}

// GetByID obtiene una factura completa (con líneas) por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv.Items, err = invoiceItems.load(ctx, r.q, inv.ID); err != nil {
		return nil, err
	}
	return inv, nil
}

// List devuelve cabeceras (sin líneas), más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR client_id = $3)
		ORDER BY date DESC, number DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, f.Status, f.ClientID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update reemplaza cliente, fechas, totales y líneas. El número no cambia.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET client_id = $2, date = $3, due_date = $4,
		    subtotal = $5, total_vat = $6, total_ttc = $7, total_in_words = $8,
		    updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		inv.ID, inv.ClientID, inv.Date, inv.DueDate,
		inv.Totals.Subtotal, inv.Totals.TotalVat, inv.Totals.TotalTTC, inv.TotalInWords,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return invoiceItems.replace(ctx, r.q, inv.ID, inv.Items)
}

// UpdateStatus persiste estado, medio de pago y datos de cobro.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2, payment_method = $3, collection_date = $4, collection_type = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		inv.ID, inv.Status, inv.PaymentMethod, inv.CollectionDate, inv.CollectionType, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var collection *time.Time
	var quoteID *string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.Number, &inv.Date, &inv.DueDate,
		&inv.Totals.Subtotal, &inv.Totals.TotalVat, &inv.Totals.TotalTTC, &inv.TotalInWords, &inv.Status,
		&inv.PaymentMethod, &collection, &inv.CollectionType, &quoteID,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Date, inv.DueDate = civil(inv.Date), civil(inv.DueDate)
	if collection != nil {
		c := civil(*collection)
		inv.CollectionDate = &c
	}
	if quoteID != nil {
		inv.QuoteID = *quoteID
	}
	return &inv, nil
}
