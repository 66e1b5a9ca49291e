package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// RepairHandler maneja las peticiones HTTP de reparaciones (protegido).
type RepairHandler struct {
	uc *usecase.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *usecase.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// Create POST /api/repairs
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairRequest
	if !parseBody(c, &in) {
		return nil
	}
	repair, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(repair)
}

// List GET /api/repairs?clientId=&projectId=&status=&priority=&limit=&offset=
func (h *RepairHandler) List(c *fiber.Ctx) error {
	clientID, _ := strconv.ParseInt(c.Query("clientId", "0"), 10, 64)
	projectID, _ := strconv.ParseInt(c.Query("projectId", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	f := repository.RepairFilter{
		ClientID:  clientID,
		ProjectID: projectID,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Limit:     limit,
		Offset:    offset,
	}
	list, err := h.uc.List(c.Context(), GetCompanyID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/repairs/:id
func (h *RepairHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	repair, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(repair)
}

// Update PATCH /api/repairs/:id
func (h *RepairHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateRepairRequest
	if !parseBody(c, &in) {
		return nil
	}
	repair, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(repair)
}

// Delete DELETE /api/repairs/:id
func (h *RepairHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
