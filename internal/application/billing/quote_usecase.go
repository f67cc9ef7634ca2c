package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	billingrules "github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// QuoteUseCase casos de uso de devis, incluida la conversión a factura.
type QuoteUseCase struct {
	txRunner   DocumentTxRunner
	quoteRepo  repository.QuoteRepository
	clientRepo repository.ClientRepository
	settings   Settings
	metrics    Metrics
	clock      clock.Clock
}

// NewQuoteUseCase construye el caso de uso. metrics y clk pueden ser nil.
func NewQuoteUseCase(
	txRunner DocumentTxRunner,
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	settings Settings,
	metrics Metrics,
	clk clock.Clock,
) *QuoteUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &QuoteUseCase{
		txRunner:   txRunner,
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		settings:   settings,
		metrics:    metrics,
		clock:      clk,
	}
}

// CreateQuote emite un devis con prefijo DEV y su propio contador anual.
func (uc *QuoteUseCase) CreateQuote(ctx context.Context, companyID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	client, err := loadClient(ctx, uc.clientRepo, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	date, err := parseDate(in.Date, civilDay(now))
	if err != nil {
		return nil, err
	}
	validUntil, err := parseDate(in.ValidUntil, date.AddDate(0, 0, uc.settings.QuoteValidityDays))
	if err != nil {
		return nil, err
	}
	if validUntil.Before(date) {
		return nil, fmt.Errorf("%w: valid_until es anterior a la fecha del devis", domain.ErrInvalidInput)
	}

	totals, groups := billingrules.ComputeTotalsWithGroups(items)
	q := &entity.Quote{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ClientID:     client.ID,
		Date:         date,
		ValidUntil:   validUntil,
		Items:        items,
		Totals:       totals,
		TotalInWords: billingrules.AmountInWords(totals.TotalTTC),
		Status:       entity.QuoteStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunDocuments(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.InvoiceRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		number, err := issueNumber(ctx, companyRepo, companyID, entity.DocumentQuote, now.Year(), uc.settings, now)
		if err != nil {
			return err
		}
		q.Number = number
		return quoteRepo.Create(ctx, q)
	})
	if err != nil {
		uc.metrics.NumberingFailed(entity.DocumentQuote)
		return nil, err
	}
	uc.metrics.DocumentIssued(entity.DocumentQuote)
	return uc.toResponse(q, client.Name, groups), nil
}

// GetQuote obtiene un devis con líneas y desglose de IVA.
func (uc *QuoteUseCase) GetQuote(ctx context.Context, companyID, id string) (*dto.QuoteResponse, error) {
	q, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	_, groups := billingrules.Aggregate(q.Items)
	return uc.toResponse(q, clientName(ctx, uc.clientRepo, q.ClientID), groups), nil
}

// ListQuotes lista los devis de la empresa.
func (uc *QuoteUseCase) ListQuotes(ctx context.Context, companyID string, filter repository.QuoteFilter) ([]dto.QuoteSummary, error) {
	if filter.Status != "" && !entity.IsValidQuoteStatus(filter.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, filter.Status)
	}
	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()
	filter.Limit, filter.Offset = page.Limit, page.Offset

	list, err := uc.quoteRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteSummary, 0, len(list))
	for _, q := range list {
		out = append(out, dto.QuoteSummary{
			ID:         q.ID,
			Number:     q.Number,
			ClientID:   q.ClientID,
			ClientName: clientName(ctx, uc.clientRepo, q.ClientID),
			Date:       formatDate(q.Date),
			ValidUntil: formatDate(q.ValidUntil),
			Status:     q.Status,
			TotalTTC:   q.Totals.TotalTTC,
		})
	}
	return out, nil
}

// UpdateQuote reemplaza cliente, fechas y líneas. Un devis aceptado ya no se modifica.
func (uc *QuoteUseCase) UpdateQuote(ctx context.Context, companyID, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if q.Status == entity.QuoteStatusAccepted {
		return nil, fmt.Errorf("%w: el devis ya fue aceptado", domain.ErrConflict)
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.ClientID != "" && in.ClientID != q.ClientID {
		client, err := loadClient(ctx, uc.clientRepo, companyID, in.ClientID)
		if err != nil {
			return nil, err
		}
		q.ClientID = client.ID
	}
	if q.Date, err = parseDate(in.Date, q.Date); err != nil {
		return nil, err
	}
	if q.ValidUntil, err = parseDate(in.ValidUntil, q.ValidUntil); err != nil {
		return nil, err
	}
	if q.ValidUntil.Before(q.Date) {
		return nil, fmt.Errorf("%w: valid_until es anterior a la fecha del devis", domain.ErrInvalidInput)
	}

	totals, groups := billingrules.ComputeTotalsWithGroups(items)
	q.Items = items
	q.Totals = totals
	q.TotalInWords = billingrules.AmountInWords(totals.TotalTTC)
	q.UpdatedAt = uc.clock.Now()

	err = uc.txRunner.RunDocuments(ctx, func(
		_ repository.CompanyRepository,
		_ repository.InvoiceRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		return quoteRepo.Update(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(q, clientName(ctx, uc.clientRepo, q.ClientID), groups), nil
}

// UpdateStatus cambia el estado del devis. "accepted" solo se alcanza convirtiendo a factura.
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, companyID, id, status string) (*dto.QuoteResponse, error) {
	if !entity.IsValidQuoteStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	q, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if status == entity.QuoteStatusAccepted || q.Status == entity.QuoteStatusAccepted {
		return nil, fmt.Errorf("%w: use la conversión a factura", domain.ErrInvalidTransition)
	}
	if err := uc.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	q.Status = status
	_, groups := billingrules.Aggregate(q.Items)
	return uc.toResponse(q, clientName(ctx, uc.clientRepo, q.ClientID), groups), nil
}

// DeleteQuote elimina el devis.
func (uc *QuoteUseCase) DeleteQuote(ctx context.Context, companyID, id string) error {
	if _, err := uc.load(ctx, companyID, id); err != nil {
		return err
	}
	return uc.quoteRepo.Delete(ctx, id)
}

// ConvertToInvoice crea una factura numerada (estado draft, quote_id enlazado) con las líneas
// del devis y marca el devis como accepted, todo en la misma transacción. El estado se
// vuelve a comprobar dentro de la transacción: si otra conversión ganó, nada se persiste.
func (uc *QuoteUseCase) ConvertToInvoice(ctx context.Context, companyID, id string, in dto.ConvertQuoteRequest) (*dto.ConvertQuoteResponse, error) {
	q, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	switch q.Status {
	case entity.QuoteStatusAccepted:
		return nil, fmt.Errorf("%w: el devis ya fue convertido", domain.ErrConflict)
	case entity.QuoteStatusRejected, entity.QuoteStatusExpired:
		return nil, fmt.Errorf("%w: un devis %s no se puede convertir", domain.ErrInvalidTransition, q.Status)
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

	items := make([]entity.LineItem, len(q.Items))
	for i, it := range q.Items {
		it.ID = uuid.New().String()
		items[i] = it
	}
	totals, groups := billingrules.ComputeTotalsWithGroups(items)
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ClientID:     q.ClientID,
		Date:         date,
		DueDate:      dueDate,
		Items:        items,
		Totals:       totals,
		TotalInWords: billingrules.AmountInWords(totals.TotalTTC),
		Status:       entity.InvoiceStatusDraft,
		QuoteID:      q.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunDocuments(ctx, func(
		companyRepo repository.CompanyRepository,
		invoiceRepo repository.InvoiceRepository,
		quoteRepo repository.QuoteRepository,
	) error {
		number, err := issueNumber(ctx, companyRepo, companyID, entity.DocumentInvoice, now.Year(), uc.settings, now)
		if err != nil {
			return err
		}
		inv.Number = number
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		return quoteRepo.MarkConverted(ctx, q.ID)
	})
	if err != nil {
		uc.metrics.NumberingFailed(entity.DocumentInvoice)
		return nil, err
	}
	uc.metrics.DocumentIssued(entity.DocumentInvoice)

	name := clientName(ctx, uc.clientRepo, q.ClientID)
	return &dto.ConvertQuoteResponse{
		Invoice:     *invoiceResponse(inv, name, groups, uc.settings.Currency),
		QuoteID:     q.ID,
		QuoteStatus: entity.QuoteStatusAccepted,
	}, nil
}

func (uc *QuoteUseCase) load(ctx context.Context, companyID, id string) (*entity.Quote, error) {
	q, err := uc.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener devis: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return q, nil
}

func (uc *QuoteUseCase) toResponse(q *entity.Quote, clientName string, groups []billingrules.VatGroup) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ID:         q.ID,
		CompanyID:  q.CompanyID,
		ClientID:   q.ClientID,
		ClientName: clientName,
		Number:     q.Number,
		Date:       formatDate(q.Date),
		ValidUntil: formatDate(q.ValidUntil),
		Status:     q.Status,
		Items:      itemResponses(q.Items),
		VatGroups:  vatGroupResponses(groups),
		Totals:     totalsResponse(q.Totals, q.TotalInWords, uc.settings.Currency),
	}
}
