package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

type leaveService interface {
	CreateLeave(ctx context.Context, companyID string, in dto.CreateLeaveRequest) (*dto.LeaveResponse, error)
	GetLeave(ctx context.Context, companyID, id string) (*dto.LeaveResponse, error)
	ListLeaves(ctx context.Context, companyID string, filter repository.LeaveFilter) ([]*dto.LeaveResponse, error)
	UpdateLeave(ctx context.Context, companyID, id string, in dto.UpdateLeaveRequest) (*dto.LeaveResponse, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) (*dto.LeaveResponse, error)
	Preview(start, end time.Time, includeSaturdays bool) *dto.LeavePreviewResponse
}

// LeaveHandler maneja las solicitudes de ausencia (protegido).
type LeaveHandler struct {
	uc leaveService
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(uc leaveService) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar ausencia (días hábiles calculados y congelados)
// @Tags         hr
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaveRequest  true  "Empleado, rango y tipo"
// @Success      201   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leaves [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateLeave(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ausencias
// @Tags         hr
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  string  false  "Filtro por empleado"
// @Param        status       query  string  false  "pending | approved | rejected"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {array}  dto.LeaveResponse
// @Router       /api/leaves [get]
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListLeaves(c.Context(), companyID, repository.LeaveFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     c.Query("status"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una ausencia
// @Tags         hr
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.LeaveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leaves/{id} [get]
func (h *LeaveHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetLeave(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar fechas, tipo o motivo (days no se recalcula)
// @Tags         hr
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateLeaveRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leaves/{id} [put]
func (h *LeaveHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateLeave(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Aprobar o rechazar (solo desde pending)
// @Tags         hr
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la solicitud"
// @Param        body  body  dto.UpdateStatusRequest  true  "approved | rejected"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leaves/{id}/status [patch]
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
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

// Preview godoc
// @Summary      Días hábiles y naturales de un rango, antes de solicitar
// @Tags         hr
// @Security     Bearer
// @Produce      json
// @Param        start              query  string  true   "YYYY-MM-DD"
// @Param        end                query  string  true   "YYYY-MM-DD"
// @Param        include_saturdays  query  bool    false  "Contar sábados como hábiles"
// @Success      200  {object}  dto.LeavePreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leaves/preview [get]
func (h *LeaveHandler) Preview(c *fiber.Ctx) error {
	start, errStart := time.Parse(dto.DateLayout, c.Query("start"))
	end, errEnd := time.Parse(dto.DateLayout, c.Query("end"))
	if errStart != nil || errEnd != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end requeridos (YYYY-MM-DD)"})
	}
	return c.JSON(h.uc.Preview(start, end, c.QueryBool("include_saturdays", false)))
}
