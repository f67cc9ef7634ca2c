package billing

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	billingrules "github.com/jhoicas/Facturation-api/internal/domain/billing"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/pkg/clock"
)

// SettingsUseCase configuración del tenant: numeración, plantilla y datos de cabecera.
type SettingsUseCase struct {
	txRunner    DocumentTxRunner
	companyRepo repository.CompanyRepository
	settings    Settings
	clock       clock.Clock
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(txRunner DocumentTxRunner, companyRepo repository.CompanyRepository, settings Settings, clk clock.Clock) *SettingsUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	return &SettingsUseCase{txRunner: txRunner, companyRepo: companyRepo, settings: settings, clock: clk}
}

// GetNumbering devuelve el estado de numeración y la vista previa de los próximos números
// (sin consumir contadores).
func (uc *SettingsUseCase) GetNumbering(ctx context.Context, companyID string) (*dto.NumberingSettingsResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("obtener empresa: %w", err)
	}
	if company == nil {
		company = newCompany(companyID, uc.settings, uc.clock.Now())
	}
	return uc.numberingResponse(company), nil
}

// UpdateNumbering cambia formato, prefijo (máx. 5 caracteres) y/o plantilla.
// Los contadores no se tocan; se hace bajo el mismo bloqueo que la emisión.
func (uc *SettingsUseCase) UpdateNumbering(ctx context.Context, companyID string, in dto.UpdateNumberingRequest) (*dto.NumberingSettingsResponse, error) {
	format := entity.NumberingFormat(strings.TrimSpace(in.Format))
	if format != "" && !format.IsValid() {
		return nil, fmt.Errorf("%w: formato %q desconocido", domain.ErrInvalidInput, in.Format)
	}
	var prefix string
	if in.Prefix != nil {
		prefix = strings.TrimSpace(*in.Prefix)
		if utf8.RuneCountInString(prefix) > entity.MaxPrefixLength {
			return nil, fmt.Errorf("%w: el prefijo admite máximo %d caracteres", domain.ErrInvalidInput, entity.MaxPrefixLength)
		}
	}
	if in.Template != "" && !entity.IsValidTemplate(in.Template) {
		return nil, fmt.Errorf("%w: plantilla %q desconocida", domain.ErrInvalidInput, in.Template)
	}

	now := uc.clock.Now()
	var updated *entity.Company
	err := uc.txRunner.RunDocuments(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.InvoiceRepository,
		_ repository.QuoteRepository,
	) error {
		company, err := lockCompany(ctx, companyRepo, companyID, uc.settings, now)
		if err != nil {
			return err
		}
		state := company.Numbering
		if format != "" {
			state.Format = format
		}
		if in.Prefix != nil {
			state.Prefix = prefix
		}
		if err := companyRepo.UpdateNumbering(ctx, companyID, state); err != nil {
			return err
		}
		company.Numbering = state
		if in.Template != "" && in.Template != company.Template {
			company.Template = in.Template
			company.UpdatedAt = now
			if err := companyRepo.Update(ctx, company); err != nil {
				return err
			}
		}
		updated = company
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.numberingResponse(updated), nil
}

// GetCompany datos de cabecera impresos en los documentos.
func (uc *SettingsUseCase) GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("obtener empresa: %w", err)
	}
	if company == nil {
		company = newCompany(companyID, uc.settings, uc.clock.Now())
	}
	return companyResponse(company), nil
}

// UpdateCompany actualiza nombre, ICE, dirección y contacto. Campos nil no se modifican.
func (uc *SettingsUseCase) UpdateCompany(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	now := uc.clock.Now()
	var updated *entity.Company
	err := uc.txRunner.RunDocuments(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.InvoiceRepository,
		_ repository.QuoteRepository,
	) error {
		company, err := lockCompany(ctx, companyRepo, companyID, uc.settings, now)
		if err != nil {
			return err
		}
		applyString(&company.Name, in.Name)
		applyString(&company.ICE, in.ICE)
		applyString(&company.Address, in.Address)
		applyString(&company.Phone, in.Phone)
		applyString(&company.Email, in.Email)
		company.UpdatedAt = now
		updated = company
		return companyRepo.Update(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return companyResponse(updated), nil
}

func (uc *SettingsUseCase) numberingResponse(c *entity.Company) *dto.NumberingSettingsResponse {
	year := uc.clock.Now().Year()
	st := c.Numbering
	format := st.Format
	if !format.IsValid() {
		format = entity.NumberingFormat2
	}
	return &dto.NumberingSettingsResponse{
		Format:          string(format),
		Prefix:          st.Prefix,
		Template:        c.Template,
		InvoiceCounter:  st.InvoiceCounter,
		QuoteCounter:    st.QuoteCounter,
		LastInvoiceYear: st.LastInvoiceYear,
		LastQuoteYear:   st.LastQuoteYear,
		NextInvoice:     billingrules.PreviewNumber(entity.DocumentInvoice, st, year),
		NextQuote:       billingrules.PreviewNumber(entity.DocumentQuote, st, year),
		WillReset:       st.InvoiceCounter > 0 && billingrules.WillReset(entity.DocumentInvoice, st, year),
	}
}

func companyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		ICE:      c.ICE,
		Address:  c.Address,
		Phone:    c.Phone,
		Email:    c.Email,
		Template: c.Template,
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
