package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturation-api/internal/application/dto"
)

type reportService interface {
	Summary(ctx context.Context, companyID string, months int) (*dto.ReportSummaryDTO, error)
}

// ReportHandler expone el resumen de facturación del tenant.
type ReportHandler struct {
	uc reportService
}

// NewReportHandler construye el handler.
func NewReportHandler(uc reportService) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Totales por estado, ventas pagadas por mes, ingresos por cliente y stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses hacia atrás (máx. 24)"  default(6)
// @Success      200     {object}  dto.ReportSummaryDTO
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Summary(c.Context(), companyID, c.QueryInt("months", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
