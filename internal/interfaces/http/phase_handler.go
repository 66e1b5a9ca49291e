package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// PhaseHandler maneja las peticiones HTTP de fases de obra (protegido).
type PhaseHandler struct {
	uc *usecase.PhaseUseCase
}

// NewPhaseHandler construye el handler.
func NewPhaseHandler(uc *usecase.PhaseUseCase) *PhaseHandler {
	return &PhaseHandler{uc: uc}
}

// Create POST /api/projects/:id/phases
func (h *PhaseHandler) Create(c *fiber.Ctx) error {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.CreatePhaseRequest
	if !parseBody(c, &in) {
		return nil
	}
	phase, err := h.uc.Create(c.Context(), GetCompanyID(c), projectID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(phase)
}

// ListByProject GET /api/projects/:id/phases, ordenadas por sort_order.
func (h *PhaseHandler) ListByProject(c *fiber.Ctx) error {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	list, err := h.uc.ListByProject(c.Context(), GetCompanyID(c), projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/project-phases/:id
func (h *PhaseHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	phase, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(phase)
}

// Update PATCH /api/project-phases/:id aplica solo los campos presentes.
func (h *PhaseHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdatePhaseRequest
	if !parseBody(c, &in) {
		return nil
	}
	phase, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(phase)
}

// Delete DELETE /api/project-phases/:id
func (h *PhaseHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
