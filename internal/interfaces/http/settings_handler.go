package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
)

type settingsService interface {
	GetNumbering(ctx context.Context, companyID string) (*dto.NumberingSettingsResponse, error)
	UpdateNumbering(ctx context.Context, companyID string, in dto.UpdateNumberingRequest) (*dto.NumberingSettingsResponse, error)
	GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error)
	UpdateCompany(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
}

// SettingsHandler parámetros de la empresa: numeración, plantilla y datos de cabecera.
type SettingsHandler struct {
	uc settingsService
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc settingsService) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetNumbering godoc
// @Summary      Estado de numeración y vista previa de los próximos números
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NumberingSettingsResponse
// @Router       /api/settings/numbering [get]
func (h *SettingsHandler) GetNumbering(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetNumbering(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateNumbering godoc
// @Summary      Cambiar formato, prefijo (máx. 5) o plantilla
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNumberingRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.NumberingSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/numbering [put]
func (h *SettingsHandler) UpdateNumbering(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateNumberingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateNumbering(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCompany godoc
// @Summary      Datos de cabecera de la empresa
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/settings/company [get]
func (h *SettingsHandler) GetCompany(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetCompany(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCompany godoc
// @Summary      Actualizar datos de cabecera
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/company [put]
func (h *SettingsHandler) UpdateCompany(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCompany(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
