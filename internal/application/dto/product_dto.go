package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Unit          string          `json:"unit,omitempty"`
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"min_stock"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se modifican.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	Stock         *decimal.Decimal `json:"stock,omitempty"`
	MinStock      *decimal.Decimal `json:"min_stock,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Unit          string          `json:"unit,omitempty"`
	Stock         decimal.Decimal `json:"stock"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Status        string          `json:"status"`
}

// StockItemDTO fila del reporte de stock.
type StockItemDTO struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category,omitempty"`
	Unit       string          `json:"unit,omitempty"`
	Initial    decimal.Decimal `json:"initial_stock"`
	Sold       decimal.Decimal `json:"sold"`
	Remaining  decimal.Decimal `json:"remaining"`
	MinStock   decimal.Decimal `json:"min_stock"`
	LowStock   bool            `json:"low_stock"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// StockReportDTO respuesta de GET /api/stock.
type StockReportDTO struct {
	Items      []StockItemDTO  `json:"items"`
	LowCount   int             `json:"low_stock_count"`
	TotalValue decimal.Decimal `json:"total_value"`
	Currency   string          `json:"currency"`
}
