package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen operativo de la empresa (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard
// Sirve desde cache cuando hay un valor vigente; como mucho una
// reconstrucción en vuelo por empresa.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
