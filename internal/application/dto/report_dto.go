package dto

import "github.com/shopspring/decimal"

// StatusTotalDTO total TTC y cantidad de facturas en un estado.
type StatusTotalDTO struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthlySalesDTO ventas de un mes ("2025-03").
type MonthlySalesDTO struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// ClientRevenueDTO ingresos por cliente.
type ClientRevenueDTO struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Invoices   int             `json:"invoices"`
	Total      decimal.Decimal `json:"total"`
}

// ReportSummaryDTO respuesta de GET /api/reports/summary.
type ReportSummaryDTO struct {
	Currency        string             `json:"currency"`
	Paid            StatusTotalDTO     `json:"paid"`
	Unpaid          StatusTotalDTO     `json:"unpaid"`
	Collected       StatusTotalDTO     `json:"collected"`
	MonthlySales    []MonthlySalesDTO  `json:"monthly_sales"`
	RevenueByClient []ClientRevenueDTO `json:"revenue_by_client"`
	LowStockCount   int                `json:"low_stock_count"`
}
