// Package analytics contiene los casos de uso de reportes de negocio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

const (
	DefaultMonths  = 6
	MaxMonths      = 24
	topClientLimit = 10
)

// LowStockCounter fuente del contador de stock bajo (inventory.StockUseCase).
type LowStockCounter interface {
	LowStockCount(ctx context.Context, companyID string) (int, error)
}

// ReportUseCase genera el resumen de facturación de la empresa.
//
// Fuente de datos: ReportRepository (consultas read-only) y el reporte de stock.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	stock      LowStockCounter
	currency   string
	clock      clock.Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, stock LowStockCounter, currency string, clk clock.Clock) *ReportUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &ReportUseCase{reportRepo: reportRepo, stock: stock, currency: currency, clock: clk}
}

// Summary construye el ReportSummaryDTO. months <= 0 usa DefaultMonths; se acota a MaxMonths.
//
// Cuatro consultas en paralelo:
//  1. TotalsByStatus       → Paid, Unpaid, Collected
//  2. MonthlyPaidSales     → MonthlySales (meses sin ventas en cero)
//  3. RevenueByClient(10)  → RevenueByClient
//  4. LowStockCount        → LowStockCount
func (uc *ReportUseCase) Summary(ctx context.Context, companyID string, months int) (*dto.ReportSummaryDTO, error) {
	if months <= 0 {
		months = DefaultMonths
	}
	if months > MaxMonths {
		months = MaxMonths
	}
	now := uc.clock.Now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := current.AddDate(0, -(months - 1), 0)

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type totalsResult struct {
		rows []repository.StatusTotal
		err  error
	}
	type salesResult struct {
		rows []repository.MonthlySales
		err  error
	}
	type clientsResult struct {
		rows []repository.ClientRevenue
		err  error
	}
	type stockResult struct {
		low int
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	salesCh := make(chan salesResult, 1)
	clientsCh := make(chan clientsResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		rows, err := uc.reportRepo.TotalsByStatus(ctx, companyID)
		totalsCh <- totalsResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.MonthlyPaidSales(ctx, companyID, from)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.RevenueByClient(ctx, companyID, topClientLimit)
		clientsCh <- clientsResult{rows, err}
	}()
	go func() {
		if uc.stock == nil {
			stockCh <- stockResult{}
			return
		}
		low, err := uc.stock.LowStockCount(ctx, companyID)
		stockCh <- stockResult{low, err}
	}()

	totals := <-totalsCh
	sales := <-salesCh
	clients := <-clientsCh
	stock := <-stockCh

	if totals.err != nil {
		return nil, fmt.Errorf("reporte: totales por estado: %w", totals.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("reporte: ventas mensuales: %w", sales.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("reporte: ingresos por cliente: %w", clients.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("reporte: stock bajo: %w", stock.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	out := &dto.ReportSummaryDTO{
		Currency:        uc.currency,
		Paid:            statusTotal(totals.rows, entity.InvoiceStatusPaid),
		Unpaid:          statusTotal(totals.rows, entity.InvoiceStatusUnpaid),
		Collected:       statusTotal(totals.rows, entity.InvoiceStatusCollected),
		MonthlySales:    fillMonths(sales.rows, from, months),
		RevenueByClient: make([]dto.ClientRevenueDTO, 0, len(clients.rows)),
		LowStockCount:   stock.low,
	}
	for _, c := range clients.rows {
		out.RevenueByClient = append(out.RevenueByClient, dto.ClientRevenueDTO{
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
			Invoices:   c.Invoices,
			Total:      c.Total.Round(2),
		})
	}
	return out, nil
}

func statusTotal(rows []repository.StatusTotal, status string) dto.StatusTotalDTO {
	for _, r := range rows {
		if r.Status == status {
			return dto.StatusTotalDTO{Count: r.Count, Total: r.Total.Round(2)}
		}
	}
	return dto.StatusTotalDTO{Total: decimal.Zero}
}

// fillMonths devuelve exactamente `months` entradas desde `from`, en orden, con cero donde no hubo ventas.
func fillMonths(rows []repository.MonthlySales, from time.Time, months int) []dto.MonthlySalesDTO {
	byMonth := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		k := r.Month.UTC().Format("2006-01")
		byMonth[k] = byMonth[k].Add(r.Total)
	}
	out := make([]dto.MonthlySalesDTO, 0, months)
	for i := 0; i < months; i++ {
		k := from.AddDate(0, i, 0).Format("2006-01")
		out = append(out, dto.MonthlySalesDTO{Month: k, Total: byMonth[k].Round(2)})
	}
	return out
}
