package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	billingrules "github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// InvoiceUseCase crea, consulta y modifica facturas.
// La creación calcula totales, consume el número del tenant y persiste la factura en una sola transacción.
type InvoiceUseCase struct {
	txRunner    DocumentTxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	settings    Settings
	metrics     Metrics
	clock       clock.Clock
}

// NewInvoiceUseCase construye el caso de uso. metrics y clk pueden ser nil.
func NewInvoiceUseCase(
	txRunner DocumentTxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	settings Settings,
	metrics Metrics,
	clk clock.Clock,
) *InvoiceUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		settings:    settings,
		metrics:     metrics,
		clock:       clk,
	}
}

// CreateInvoice valida las líneas, calcula totales y emite la factura con el siguiente número.
// El número solo se devuelve si la transacción hizo commit.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	client, err := loadClient(ctx, uc.clientRepo, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	now := uc.clock.Now()
	date, err := parseDate(in.Date, civilDay(now))
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(in.DueDate, date.AddDate(0, 0, uc.settings.PaymentDays))
	if err != nil {
		return nil, err
	}
	if dueDate.Before(date) {
		return nil, fmt.Errorf("%w: la fecha de vencimiento es anterior a la fecha de la factura", domain.ErrInvalidInput)
	}

	totals, groups := billingrules.ComputeTotalsWithGroups(items)
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ClientID:      client.ID,
		Date:          date,
		DueDate:       dueDate,
		Items:         items,
		Totals:        totals,
		TotalInWords:  billingrules.AmountInWords(totals.TotalTTC),
		Status:        entity.InvoiceStatusUnpaid,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunDocuments(ctx, func(
		companyRepo repository.CompanyRepository,
		invoiceRepo repository.InvoiceRepository,
		_ repository.QuoteRepository,
	) error {
		number, err := issueNumber(ctx, companyRepo, companyID, entity.DocumentInvoice, now.Year(), uc.settings, now)
		if err != nil {
			return err
		}
		inv.Number = number
		return invoiceRepo.Create(ctx, inv)
	})
	if err != nil {
		uc.metrics.NumberingFailed(entity.DocumentInvoice)
		return nil, err
	}
	uc.metrics.DocumentIssued(entity.DocumentInvoice)

	return uc.toResponse(inv, client.Name, groups), nil
}

// GetInvoice obtiene una factura con líneas y desglose de IVA.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	_, groups := billingrules.Aggregate(inv.Items)
	return uc.toResponse(inv, clientName(ctx, uc.clientRepo, inv.ClientID), groups), nil
}

// ListInvoices lista las facturas de la empresa (más recientes primero).
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, companyID string, filter repository.InvoiceFilter) ([]dto.InvoiceSummary, error) {
	if filter.Status != "" && !entity.IsValidInvoiceStatus(filter.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, filter.Status)
	}
	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()
	filter.Limit, filter.Offset = page.Limit, page.Offset

	list, err := uc.invoiceRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	out := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		name, ok := names[inv.ClientID]
		if !ok {
			name = clientName(ctx, uc.clientRepo, inv.ClientID)
			names[inv.ClientID] = name
		}
		out = append(out, dto.InvoiceSummary{
			ID:         inv.ID,
			Number:     inv.Number,
			ClientID:   inv.ClientID,
			ClientName: name,
			Date:       formatDate(inv.Date),
			DueDate:    formatDate(inv.DueDate),
			Status:     inv.Status,
			TotalTTC:   inv.Totals.TotalTTC,
		})
	}
	return out, nil
}

// UpdateInvoice reemplaza cliente, fechas y líneas; recalcula totales. El número no cambia.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, companyID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.ClientID != "" && in.ClientID != inv.ClientID {
		client, err := loadClient(ctx, uc.clientRepo, companyID, in.ClientID)
		if err != nil {
			return nil, err
		}
		inv.ClientID = client.ID
	}
	if in.PaymentMethod != "" {
		if !entity.IsValidPaymentMethod(in.PaymentMethod) {
			return nil, fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
		}
		inv.PaymentMethod = in.PaymentMethod
	}
	if inv.Date, err = parseDate(in.Date, inv.Date); err != nil {
		return nil, err
	}
	if inv.DueDate, err = parseDate(in.DueDate, inv.DueDate); err != nil {
		return nil, err
	}
	if inv.DueDate.Before(inv.Date) {
		return nil, fmt.Errorf("%w: la fecha de vencimiento es anterior a la fecha de la factura", domain.ErrInvalidInput)
	}

	totals, groups := billingrules.ComputeTotalsWithGroups(items)
	inv.Items = items
	inv.Totals = totals
	inv.TotalInWords = billingrules.AmountInWords(totals.TotalTTC)
	inv.UpdatedAt = uc.clock.Now()

	err = uc.txRunner.RunDocuments(ctx, func(
		_ repository.CompanyRepository,
		invoiceRepo repository.InvoiceRepository,
		_ repository.QuoteRepository,
	) error {
		return invoiceRepo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, clientName(ctx, uc.clientRepo, inv.ClientID), groups), nil
}

// UpdateStatus cambia estado, medio de pago y datos de cobro.
// Los datos de cobro (fecha, tipo cheque/effet) solo se conservan en estado collected.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, companyID, id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	if !entity.IsValidInvoiceStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	if !entity.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	inv, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	inv.Status = in.Status
	if in.PaymentMethod != "" {
		inv.PaymentMethod = in.PaymentMethod
	}
	inv.CollectionDate = nil
	inv.CollectionType = ""
	if in.Status == entity.InvoiceStatusCollected {
		ct := strings.TrimSpace(in.CollectionType)
		if ct == "" {
			ct = inv.PaymentMethod
		}
		if ct != entity.PaymentCheque && ct != entity.PaymentEffet {
			return nil, fmt.Errorf("%w: collection_type debe ser cheque o effet", domain.ErrInvalidInput)
		}
		cd, err := parseDate(in.CollectionDate, civilDay(now))
		if err != nil {
			return nil, err
		}
		inv.CollectionType = ct
		inv.CollectionDate = &cd
	}
	inv.UpdatedAt = now

	if err := uc.invoiceRepo.UpdateStatus(ctx, inv); err != nil {
		return nil, err
	}
	_, groups := billingrules.Aggregate(inv.Items)
	return uc.toResponse(inv, clientName(ctx, uc.clientRepo, inv.ClientID), groups), nil
}

// DeleteInvoice elimina la factura. El contador no retrocede: el número queda sin reutilizar.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, companyID, id string) error {
	if _, err := uc.load(ctx, companyID, id); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(ctx, id)
}

func (uc *InvoiceUseCase) load(ctx context.Context, companyID, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, clientName string, groups []billingrules.VatGroup) *dto.InvoiceResponse {
	return invoiceResponse(inv, clientName, groups, uc.settings.Currency)
}

func invoiceResponse(inv *entity.Invoice, clientName string, groups []billingrules.VatGroup, currency string) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		CompanyID:      inv.CompanyID,
		ClientID:       inv.ClientID,
		ClientName:     clientName,
		Number:         inv.Number,
		Date:           formatDate(inv.Date),
		DueDate:        formatDate(inv.DueDate),
		Status:         inv.Status,
		PaymentMethod:  inv.PaymentMethod,
		CollectionType: inv.CollectionType,
		QuoteID:        inv.QuoteID,
		Items:          itemResponses(inv.Items),
		VatGroups:      vatGroupResponses(groups),
		Totals:         totalsResponse(inv.Totals, inv.TotalInWords, currency),
	}
	if inv.CollectionDate != nil {
		resp.CollectionDate = formatDate(*inv.CollectionDate)
	}
	return resp
}
