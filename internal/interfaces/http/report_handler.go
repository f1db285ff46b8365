package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printhub-api/internal/application/usecase"
)

// ReportHandler genera reportes para el admin.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// OrdersXLSX godoc
// @Summary      Descargar el reporte de órdenes en XLSX (solo admin)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/admin/reports/orders.xlsx [get]
func (h *ReportHandler) OrdersXLSX(c *fiber.Ctx) error {
	data, err := h.uc.OrdersXLSX(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	name := fmt.Sprintf("ordenes-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", name))
	return c.Send(data)
}
