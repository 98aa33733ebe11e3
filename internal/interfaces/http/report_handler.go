package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/manufactura-api/internal/application/usecase"
)

// ReportHandler maneja las vistas agregadas de reporting (protegido).
// Todas operan sobre un snapshot: no se garantiza que reflejen mutaciones
// confirmadas después de tomarlo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      KPIs globales del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummary
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Agregados por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryRollup
// @Router       /api/reports/categories [get]
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Top-N de productos por valor de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(10)
// @Success      200    {array}  dto.TopProduct
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	out, err := h.uc.TopProducts(limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de bajo stock con severidad, porcentaje y faltante
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlert
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts()
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Reporte PDF del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.InventoryPDF(c.Context())
	if err != nil {
		return renderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdfBytes)
}
