package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
)

type employeeService interface {
	Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Get(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.EmployeeResponse, error)
}

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido).
type EmployeeHandler struct {
	uc employeeService
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc employeeService) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         hr
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         hr
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         hr
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.List(c.Context(), companyID, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
