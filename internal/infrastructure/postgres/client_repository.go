package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_id, name, ice, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.ICE, c.Address, c.Phone, c.Email, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, company_id, name, ice, address, phone, email, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.ICE, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByCompany lista clientes de la empresa ordenados por nombre; search filtra por nombre o ICE.
func (r *ClientRepo) ListByCompany(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, company_id, name, ice, address, phone, email, created_at, updated_at
		FROM clients
		WHERE company_id = $1 AND ($2 = '' OR name ILIKE $3 OR ice ILIKE $3)
		ORDER BY name, id LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, companyID, search, like(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.ICE, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, ice = $3, address = $4, phone = $5, email = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Name, c.ICE, c.Address, c.Phone, c.Email, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el cliente. Con facturas o devis asociados devuelve domain.ErrConflict.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene documentos", domain.ErrConflict)
		}
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
