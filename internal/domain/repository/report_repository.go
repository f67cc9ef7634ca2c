package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatusTotal suma TTC de las facturas en un estado.
type StatusTotal struct {
	Status string
	Count  int
	Total  decimal.Decimal
}

// MonthlySales ventas (TTC) de facturas pagadas en un mes.
type MonthlySales struct {
	Month time.Time // primer día del mes, UTC
	Total decimal.Decimal
}

// ClientRevenue ingresos (TTC de facturas pagadas) por cliente; Invoices cuenta todas sus facturas.
type ClientRevenue struct {
	ClientID   string
	ClientName string
	Invoices   int
	Total      decimal.Decimal
}

// SoldQuantity cantidad vendida en facturas, agrupada por descripción de línea.
type SoldQuantity struct {
	Description string
	Quantity    decimal.Decimal
}

// ReportRepository consultas de lectura para reportes. Las implementaciones son read-only.
type ReportRepository interface {
	TotalsByStatus(ctx context.Context, companyID string) ([]StatusTotal, error)
	// MonthlyPaidSales devuelve un registro por mes con ventas desde `from` (incluido).
	// Los meses sin ventas no aparecen; el use case rellena con cero.
	MonthlyPaidSales(ctx context.Context, companyID string, from time.Time) ([]MonthlySales, error)
	RevenueByClient(ctx context.Context, companyID string, limit int) ([]ClientRevenue, error)
}

// StockRepository cantidades vendidas, fuente del reporte de stock.
type StockRepository interface {
	// SoldQuantities suma quantity de las líneas de factura de la empresa por descripción.
	SoldQuantities(ctx context.Context, companyID string) ([]SoldQuantity, error)
}
