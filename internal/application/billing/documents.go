package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	billingrules "github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// ── helpers compartidos por facturas y devis ─────────────────────────────────

// buildItems valida las líneas recibidas y las convierte en entidades.
// Cantidad, precio y tasa negativos se rechazan aquí: billing.ComputeTotals no valida.
func buildItems(in []dto.LineItemRequest) ([]entity.LineItem, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: el documento necesita al menos una línea", domain.ErrInvalidInput)
	}
	items := make([]entity.LineItem, 0, len(in))
	for i, li := range in {
		desc := strings.TrimSpace(li.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: línea %d sin descripción", domain.ErrInvalidInput, i+1)
		}
		if li.Quantity.IsNegative() || li.UnitPrice.IsNegative() || li.VatRate.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d con cantidad, precio o IVA negativo", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.LineItem{
			ID:          uuid.New().String(),
			Description: desc,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			VatRate:     li.VatRate,
			Unit:        strings.TrimSpace(li.Unit),
		})
	}
	return items, nil
}

// parseDate interpreta "2006-01-02"; vacío devuelve def.
func parseDate(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q inválida (formato AAAA-MM-DD)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// civilDay trunca a la fecha civil (UTC, 00:00).
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

// issueNumber consume el siguiente número del tenant dentro de la transacción en curso.
// La fila de la empresa queda bloqueada hasta el commit; si la empresa aún no existe se
// provisiona con la numeración por defecto.
func issueNumber(
	ctx context.Context,
	companyRepo repository.CompanyRepository,
	companyID string,
	kind entity.DocumentKind,
	year int,
	settings Settings,
	now time.Time,
) (string, error) {
	company, err := lockCompany(ctx, companyRepo, companyID, settings, now)
	if err != nil {
		return "", fmt.Errorf("leer numeración: %w", err)
	}
	number, next := billingrules.NextNumber(kind, company.Numbering, year)
	if err := companyRepo.UpdateNumbering(ctx, companyID, next); err != nil {
		return "", fmt.Errorf("guardar numeración: %w", err)
	}
	return number, nil
}

func newCompany(id string, settings Settings, now time.Time) *entity.Company {
	return &entity.Company{
		ID:       id,
		Template: entity.Template1,
		Numbering: entity.NumberingState{
			Format: entity.NumberingFormat2,
			Prefix: settings.InvoicePrefix,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// loadClient valida que el cliente exista y pertenezca a la empresa.
func loadClient(ctx context.Context, repo repository.ClientRepository, companyID, clientID string) (*entity.Client, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, fmt.Errorf("%w: client_id requerido", domain.ErrInvalidInput)
	}
	client, err := repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func clientName(ctx context.Context, repo repository.ClientRepository, id string) string {
	c, err := repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return ""
	}
	return c.Name
}

func itemResponses(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			VatRate:     it.VatRate,
			Unit:        it.Unit,
			Total:       it.Total().Round(billingrules.MoneyPlaces),
		})
	}
	return out
}

func vatGroupResponses(groups []billingrules.VatGroup) []dto.VatGroupResponse {
	out := make([]dto.VatGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.VatGroupResponse{
			Rate:      g.Rate,
			VatAmount: g.VatAmount.Round(billingrules.MoneyPlaces),
			Products:  g.MemberDescriptions,
		})
	}
	return out
}

func totalsResponse(t entity.DocumentTotals, words, currency string) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:     t.Subtotal,
		TotalVat:     t.TotalVat,
		TotalTTC:     t.TotalTTC,
		TotalInWords: words,
		Currency:     currency,
	}
}

// lockCompany bloquea la fila de la empresa y la provisiona si falta. Tras el insert se
// vuelve a leer: si otra transacción la creó primero, se usa su fila y su contador.
func lockCompany(
	ctx context.Context,
	companyRepo repository.CompanyRepository,
	companyID string,
	settings Settings,
	now time.Time,
) (*entity.Company, error) {
	company, err := companyRepo.GetForUpdate(ctx, companyID)
	if err != nil || company != nil {
		return company, err
	}
	if err := companyRepo.Create(ctx, newCompany(companyID, settings, now)); err != nil {
		return nil, fmt.Errorf("provisionar empresa: %w", err)
	}
	company, err = companyRepo.GetForUpdate(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	return company, nil
}
