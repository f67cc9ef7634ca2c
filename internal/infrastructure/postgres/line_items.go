package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
)

// itemTable tabla de líneas de un tipo de documento. Nombres fijos, nunca entrada de usuario.
type itemTable struct {
	name   string // invoice_items | quote_items
	parent string // invoice_id | quote_id
}

var (
	invoiceItems = itemTable{name: "invoice_items", parent: "invoice_id"}
	quoteItems   = itemTable{name: "quote_items", parent: "quote_id"}
)

// insert persiste las líneas conservando el orden recibido en la columna position.
func (t itemTable) insert(ctx context.Context, q Querier, docID string, items []entity.LineItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, position, description, quantity, unit_price, vat_rate, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, t.name, t.parent)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		li := items[i]
		if _, err := q.Exec(ctx, query,
			li.ID, docID, i, li.Description, li.Quantity, li.UnitPrice, li.VatRate, li.Unit,
		); err != nil {
			return fmt.Errorf("insert %s: %w", t.name, err)
		}
	}
	return nil
}

// replace borra y vuelve a insertar todas las líneas del documento.
func (t itemTable) replace(ctx context.Context, q Querier, docID string, items []entity.LineItem) error {
	if _, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, t.parent), docID); err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	return t.insert(ctx, q, docID, items)
}

// load devuelve las líneas en su orden original.
func (t itemTable) load(ctx context.Context, q Querier, docID string) ([]entity.LineItem, error) {
	query := fmt.Sprintf(`
		SELECT id, description, quantity, unit_price, vat_rate, unit
		FROM %s WHERE %s = $1 ORDER BY position`, t.name, t.parent)
	rows, err := q.Query(ctx, query, docID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	var items []entity.LineItem
	for rows.Next() {
		var li entity.LineItem
		if err := rows.Scan(&li.ID, &li.Description, &li.Quantity, &li.UnitPrice, &li.VatRate, &li.Unit); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		items = append(items, li)
	}
	return items, rows.Err()
}
