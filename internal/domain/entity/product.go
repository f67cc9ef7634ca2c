package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un artículo del catálogo.
// Stock es el stock inicial: nunca se descuenta, lo vendido se calcula desde las facturas.
type Product struct {
	ID            string
	CompanyID     string
	Name          string
	Category      string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Unit          string
	Stock         decimal.Decimal
	MinStock      decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
