package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/catalog"
)

// AlertHandler maneja las consultas de alertas de stock bajo.
type AlertHandler struct {
	alertsUC *catalog.LowStockAlertsUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alertsUC *catalog.LowStockAlertsUseCase) *AlertHandler {
	return &AlertHandler{alertsUC: alertsUC}
}

// LowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	// Una empresa desconocida o sin bodegas responde 200 con lista vacía, no 404.
	out, err := h.alertsUC.Execute(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
