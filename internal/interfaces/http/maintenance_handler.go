package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// MaintenanceHandler maneja las peticiones HTTP de visitas de mantenimiento (protegido).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Create POST /api/maintenances
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if !parseBody(c, &in) {
		return nil
	}
	m, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// List GET /api/maintenances?status=&clientId=&from=&to=&limit=&offset=
// from/to en RFC 3339 acotan scheduled_date.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	clientID, _ := strconv.ParseInt(c.Query("clientId", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	f := repository.MaintenanceFilter{
		ClientID: clientID,
		Status:   c.Query("status"),
		From:     queryTime(c, "from"),
		To:       queryTime(c, "to"),
		Limit:    limit,
		Offset:   offset,
	}
	list, err := h.uc.List(c.Context(), GetCompanyID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/maintenances/:id
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	m, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// Update PATCH /api/maintenances/:id
// Al pasar a completed genera el informe de servicio y, si la visita es
// recurrente, la siguiente visita programada.
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateMaintenanceRequest
	if !parseBody(c, &in) {
		return nil
	}
	m, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

// GetServiceReport GET /api/maintenances/:id/report
func (h *MaintenanceHandler) GetServiceReport(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	report, err := h.uc.GetServiceReport(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Delete DELETE /api/maintenances/:id
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// queryTime parsea un query param RFC 3339; nil si está ausente o malformado.
func queryTime(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
