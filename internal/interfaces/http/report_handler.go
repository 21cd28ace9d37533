package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/report"
)

// ReportHandler entrega reportes descargables (protegido).
type ReportHandler struct {
	lowStockUC *report.LowStockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(lowStockUC *report.LowStockReportUseCase) *ReportHandler {
	return &ReportHandler{lowStockUC: lowStockUC}
}

// LowStockPDF godoc
// @Summary      Reporte PDF de productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	data, err := h.lowStockUC.GeneratePDF()
	if err != nil {
		return respondError(c, err)
	}
	filename := "stock_bajo_" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
