package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

type invoiceService interface {
	CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, companyID string, filter repository.InvoiceFilter) ([]dto.InvoiceSummary, error)
	UpdateInvoice(ctx context.Context, companyID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	UpdateStatus(ctx context.Context, companyID, id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, companyID, id string) error
}

type pdfService interface {
	InvoicePDF(ctx context.Context, companyID, id string) ([]byte, string, error)
	QuotePDF(ctx context.Context, companyID, id string) ([]byte, string, error)
}

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc  invoiceService
	pdf pdfService
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc invoiceService, pdf pdfService) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Crear factura (asigna el siguiente número de la empresa)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Cliente, fechas y líneas"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateInvoice(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "draft | sent | unpaid | paid | collected"
// @Param        client_id  query  string  false  "Filtro por cliente"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {array}  dto.InvoiceSummary
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListInvoices(c.Context(), companyID, repository.InvoiceFilter{
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
// @Summary      Detalle de factura con desglose de IVA
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetInvoice(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar líneas y fechas (totales recalculados, número sin cambios)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Nuevos datos"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateInvoice(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado, forma de pago o datos de cobro
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceStatusRequest  true  "Estado y cobro"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura (el contador no retrocede)
// @Tags         invoices
// @Security     Bearer
// @Param        id   path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.uc.DeleteInvoice(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) GetPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdf, filename, err := h.pdf.InvoicePDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
