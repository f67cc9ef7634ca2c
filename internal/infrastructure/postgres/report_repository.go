package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

var (
	_ repository.ReportRepository = (*ReportRepo)(nil)
	_ repository.StockRepository  = (*ReportRepo)(nil)
)

// ReportRepo consultas de solo lectura para reportes y stock.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalsByStatus cantidad y TTC de facturas agrupadas por estado.
func (r *ReportRepo) TotalsByStatus(ctx context.Context, companyID string) ([]repository.StatusTotal, error) {
	const query = `
	SELECT status, COUNT(*), COALESCE(SUM(total_ttc), 0)
	FROM invoices
	WHERE company_id = $1
	GROUP BY status`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("reports.TotalsByStatus: %w", err)
	}
	defer rows.Close()

	var out []repository.StatusTotal
	for rows.Next() {
		var s repository.StatusTotal
		if err := rows.Scan(&s.Status, &s.Count, &s.Total); err != nil {
			return nil, fmt.Errorf("reports.TotalsByStatus scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MonthlyPaidSales TTC de facturas pagadas agrupado por mes de la fecha de factura.
func (r *ReportRepo) MonthlyPaidSales(ctx context.Context, companyID string, from time.Time) ([]repository.MonthlySales, error) {
	const query = `
	SELECT date_trunc('month', date)::date AS month, SUM(total_ttc)
	FROM invoices
	WHERE company_id = $1
	  AND status     = $2
	  AND date      >= $3
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.q.Query(ctx, query, companyID, entity.InvoiceStatusPaid, from)
	if err != nil {
		return nil, fmt.Errorf("reports.MonthlyPaidSales: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlySales
	for rows.Next() {
		var m repository.MonthlySales
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("reports.MonthlyPaidSales scan: %w", err)
		}
		m.Month = civil(m.Month)
		out = append(out, m)
	}
	return out, rows.Err()
}

// RevenueByClient los `limit` clientes con más ingresos pagados.
func (r *ReportRepo) RevenueByClient(ctx context.Context, companyID string, limit int) ([]repository.ClientRevenue, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COUNT(i.id)                                                    AS invoices,
	    COALESCE(SUM(i.total_ttc) FILTER (WHERE i.status = $2), 0)     AS paid_total
	FROM clients c
	JOIN invoices i ON i.client_id = c.id
	WHERE c.company_id = $1
	GROUP BY c.id, c.name
	ORDER BY paid_total DESC, c.name
	LIMIT $3`

	rows, err := r.q.Query(ctx, query, companyID, entity.InvoiceStatusPaid, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.RevenueByClient: %w", err)
	}
	defer rows.Close()

	var out []repository.ClientRevenue
	for rows.Next() {
		var c repository.ClientRevenue
		if err := rows.Scan(&c.ClientID, &c.ClientName, &c.Invoices, &c.Total); err != nil {
			return nil, fmt.Errorf("reports.RevenueByClient scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SoldQuantities suma las cantidades de todas las líneas de factura por descripción normalizada.
func (r *ReportRepo) SoldQuantities(ctx context.Context, companyID string) ([]repository.SoldQuantity, error) {
	const query = `
	SELECT lower(trim(it.description)), SUM(it.quantity)
	FROM invoice_items it
	JOIN invoices i ON i.id = it.invoice_id
	WHERE i.company_id = $1
	GROUP BY 1`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("stock.SoldQuantities: %w", err)
	}
	defer rows.Close()

	var out []repository.SoldQuantity
	for rows.Next() {
		var s repository.SoldQuantity
		if err := rows.Scan(&s.Description, &s.Quantity); err != nil {
			return nil, fmt.Errorf("stock.SoldQuantities scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
