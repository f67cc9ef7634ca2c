package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Facturation-api/internal/domain"
	billingrules "github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// PDFUseCase arma el modelo de impresión de facturas y devis y delega el dibujo al renderer.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	quoteRepo   repository.QuoteRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	renderer    DocumentRenderer
	settings    Settings
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	quoteRepo repository.QuoteRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	renderer DocumentRenderer,
	settings Settings,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		quoteRepo:   quoteRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		renderer:    renderer,
		settings:    settings,
	}
}

// InvoicePDF genera el PDF de la factura.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece a la empresa del token.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	model, err := uc.baseModel(ctx, companyID, inv.ClientID, inv.Items)
	if err != nil {
		return nil, "", err
	}
	model.Kind = entity.DocumentInvoice
	model.Title = "FACTURE"
	model.Number = inv.Number
	model.Date = formatDate(inv.Date)
	model.DateLabel = "Échéance"
	model.DateExtra = formatDate(inv.DueDate)
	model.Status = inv.Status
	model.Subtotal, model.TotalVat, model.TotalTTC = inv.Totals.Subtotal, inv.Totals.TotalVat, inv.Totals.TotalTTC
	model.AmountInWords = inv.TotalInWords

	pdf, err := uc.renderer.Render(ctx, model)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fileName("facture", inv.Number), nil
}

// QuotePDF genera el PDF del devis.
func (uc *PDFUseCase) QuotePDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	q, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener devis: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	if q.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	model, err := uc.baseModel(ctx, companyID, q.ClientID, q.Items)
	if err != nil {
		return nil, "", err
	}
	model.Kind = entity.DocumentQuote
	model.Title = "DEVIS"
	model.Number = q.Number
	model.Date = formatDate(q.Date)
	model.DateLabel = "Valable jusqu'au"
	model.DateExtra = formatDate(q.ValidUntil)
	model.Status = q.Status
	model.Subtotal, model.TotalVat, model.TotalTTC = q.Totals.Subtotal, q.Totals.TotalVat, q.Totals.TotalTTC
	model.AmountInWords = q.TotalInWords

	pdf, err := uc.renderer.Render(ctx, model)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fileName("devis", q.Number), nil
}

// baseModel carga emisor y cliente y calcula líneas y grupos de IVA.
func (uc *PDFUseCase) baseModel(ctx context.Context, companyID, clientID string, items []entity.LineItem) (*RenderModel, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		company = &entity.Company{ID: companyID, Template: entity.Template1}
	}
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		client = &entity.Client{ID: clientID}
	}

	_, groups := billingrules.Aggregate(items)
	model := &RenderModel{
		Template:       company.Template,
		Company:        RenderParty{Name: company.Name, ICE: company.ICE, Address: company.Address, Phone: company.Phone, Email: company.Email},
		Client:         RenderParty{Name: client.Name, ICE: client.ICE, Address: client.Address, Phone: client.Phone, Email: client.Email},
		Items:          make([]RenderLine, 0, len(items)),
		VatGroups:      make([]RenderVatGroup, 0, len(groups)),
		ShowVatMembers: len(groups) > 1,
		Currency:       uc.settings.Currency,
	}
	for _, it := range items {
		model.Items = append(model.Items, RenderLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			VatRate:     it.VatRate,
			Total:       it.Total().Round(billingrules.MoneyPlaces),
		})
	}
	for _, g := range groups {
		model.VatGroups = append(model.VatGroups, RenderVatGroup{
			Rate:      g.Rate,
			VatAmount: g.VatAmount.Round(billingrules.MoneyPlaces),
			Members:   g.MemberDescriptions,
		})
	}
	return model, nil
}

// fileName "facture_FAC-2025-001.pdf"; las barras de format3/format4 se reemplazan.
func fileName(kind, number string) string {
	safe := strings.NewReplacer("/", "-", "\\", "-", " ", "_").Replace(number)
	return fmt.Sprintf("%s_%s.pdf", kind, safe)
}
