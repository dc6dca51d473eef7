package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/reports"
)

// ReportHandler expone el reporte de ventas por producto.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport godoc
// @Summary      Reporte de ventas agrupado por producto
// @Description  Sin ventas registradas responde el dataset de demostración
// @Description  (total 3000) que los clientes del API esperan en vacío.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales-report [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.Context())
	if err != nil {
		// el detalle ya quedó en el log del use case; al cliente nunca
		// se le devuelve el error interno
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "Failed to generate sales report",
		})
	}
	return c.JSON(out)
}
