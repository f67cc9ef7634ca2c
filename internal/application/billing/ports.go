package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// DocumentTxRunner ejecuta fn dentro de una transacción con los repos de empresa, facturas y devis
// atados a ella. Si fn retorna error se hace rollback y ningún número queda consumido.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		invoiceRepo repository.InvoiceRepository,
		quoteRepo repository.QuoteRepository,
	) error) error
}

// DocumentRenderer genera la representación imprimible (PDF) de un documento ya calculado.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *RenderModel) ([]byte, error)
}

// Metrics contadores de emisión de documentos. Ver infrastructure/metrics.
type Metrics interface {
	DocumentIssued(kind entity.DocumentKind)
	NumberingFailed(kind entity.DocumentKind)
}

type nopMetrics struct{}

func (nopMetrics) DocumentIssued(entity.DocumentKind)  {}
func (nopMetrics) NumberingFailed(entity.DocumentKind) {}

// Settings valores por defecto de facturación (ver config.BusinessConfig).
type Settings struct {
	Currency          string
	InvoicePrefix     string
	PaymentDays       int
	QuoteValidityDays int
}

// DefaultSettings MAD, FAC, 30 días de pago y de validez.
func DefaultSettings() Settings {
	return Settings{Currency: "MAD", InvoicePrefix: entity.DefaultInvoicePrefix, PaymentDays: 30, QuoteValidityDays: 30}
}

// RenderParty emisor o destinatario impreso en la cabecera.
type RenderParty struct {
	Name    string
	ICE     string
	Address string
	Phone   string
	Email   string
}

// RenderLine línea impresa.
type RenderLine struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	VatRate     decimal.Decimal
	Total       decimal.Decimal
}

// RenderVatGroup grupo de IVA con monto ya redondeado a 2 decimales.
type RenderVatGroup struct {
	Rate      decimal.Decimal
	VatAmount decimal.Decimal
	Members   []string
}

// RenderModel todo lo que el renderer necesita; no calcula nada por su cuenta.
type RenderModel struct {
	Kind      entity.DocumentKind
	Title     string // FACTURE | DEVIS
	Template  string
	Number    string
	Date      string
	DateLabel string // "Échéance" o "Valable jusqu'au"
	DateExtra string
	Status    string
	Company   RenderParty
	Client    RenderParty
	Items     []RenderLine
	VatGroups []RenderVatGroup
	// ShowVatMembers lista los productos de cada grupo solo si hay más de una tasa.
	ShowVatMembers bool
	Subtotal       decimal.Decimal
	TotalVat       decimal.Decimal
	TotalTTC       decimal.Decimal
	Currency       string
	AmountInWords  string
}
