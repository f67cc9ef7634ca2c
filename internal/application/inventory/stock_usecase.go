package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	stockrules "github.com/jhoicas/Facturation-api/internal/domain/inventory"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// StockUseCase reporte de stock: stock inicial menos lo facturado, por producto.
type StockUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	currency    string
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository, currency string) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, stockRepo: stockRepo, currency: currency}
}

// Report cruza las cantidades facturadas con el catálogo por nombre (MatchKey).
// Las líneas sin producto correspondiente se ignoran. Ordenado por nombre.
func (uc *StockUseCase) Report(ctx context.Context, companyID string) (*dto.StockReportDTO, error) {
	products, err := uc.productRepo.ListAllByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("stock: productos: %w", err)
	}
	sold, err := uc.stockRepo.SoldQuantities(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("stock: cantidades vendidas: %w", err)
	}
	index := stockrules.SoldIndex{}
	for _, s := range sold {
		index.Add(s.Description, s.Quantity)
	}

	report := &dto.StockReportDTO{
		Items:      make([]dto.StockItemDTO, 0, len(products)),
		TotalValue: decimal.Zero,
		Currency:   uc.currency,
	}
	for _, p := range products {
		level := stockrules.ComputeStockLevel(p.Stock, index.For(p.Name), p.MinStock, p.PurchasePrice)
		if level.Low {
			report.LowCount++
		}
		report.TotalValue = report.TotalValue.Add(level.Value)
		report.Items = append(report.Items, dto.StockItemDTO{
			ProductID:  p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Unit:       p.Unit,
			Initial:    level.Initial,
			Sold:       level.Sold,
			Remaining:  level.Remaining,
			MinStock:   level.MinStock,
			LowStock:   level.Low,
			StockValue: level.Value,
		})
	}
	sort.SliceStable(report.Items, func(i, j int) bool {
		return stockrules.MatchKey(report.Items[i].Name) < stockrules.MatchKey(report.Items[j].Name)
	})
	return report, nil
}

// LowStockCount número de productos en o por debajo del stock mínimo.
func (uc *StockUseCase) LowStockCount(ctx context.Context, companyID string) (int, error) {
	r, err := uc.Report(ctx, companyID)
	if err != nil {
		return 0, err
	}
	return r.LowCount, nil
}
