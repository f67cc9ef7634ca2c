package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

type quoteService interface {
	CreateQuote(ctx context.Context, companyID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	GetQuote(ctx context.Context, companyID, id string) (*dto.QuoteResponse, error)
	ListQuotes(ctx context.Context, companyID string, filter repository.QuoteFilter) ([]dto.QuoteSummary, error)
	UpdateQuote(ctx context.Context, companyID, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) (*dto.QuoteResponse, error)
	DeleteQuote(ctx context.Context, companyID, id string) error
	ConvertToInvoice(ctx context.Context, companyID, id string, in dto.ConvertQuoteRequest) (*dto.ConvertQuoteResponse, error)
}

// QuoteHandler maneja las peticiones HTTP de devis (protegido).
type QuoteHandler struct {
	uc  quoteService
	pdf pdfService
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc quoteService, pdf pdfService) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear devis (numeración DEV propia)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Cliente, fechas y líneas"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateQuote(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar devis
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "draft | sent | accepted | rejected | expired"
// @Param        client_id  query  string  false  "Filtro por cliente"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {array}  dto.QuoteSummary
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListQuotes(c.Context(), companyID, repository.QuoteFilter{
		Status:   c.Query("status"),
		ClientID: c.Query("client_id"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de devis
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del devis"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetQuote(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar líneas y fechas del devis
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del devis"
// @Param        body  body  dto.UpdateQuoteRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateQuote(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del devis (accepted solo vía conversión)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del devis"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), companyID, c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar devis
// @Tags         quotes
// @Security     Bearer
// @Param        id   path  string  true  "ID del devis"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.uc.DeleteQuote(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convert godoc
// @Summary      Convertir devis en factura numerada (marca el devis como accepted)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true   "ID del devis"
// @Param        body  body  dto.ConvertQuoteRequest  false  "Fechas de la factura"
// @Success      201   {object}  dto.ConvertQuoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.ConvertQuoteRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.ConvertToInvoice(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPDF godoc
// @Summary      Descargar el devis en PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del devis"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) GetPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdf, filename, err := h.pdf.QuotePDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}
