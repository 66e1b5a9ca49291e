package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/internal/application/dto"
)

// CommsHandler maneja las peticiones HTTP de proveedores de comunicaciones y
// del buzón agregado (protegido).
type CommsHandler struct {
	uc *comms.UseCase
}

// NewCommsHandler construye el handler.
func NewCommsHandler(uc *comms.UseCase) *CommsHandler {
	return &CommsHandler{uc: uc}
}

// ── Providers ─────────────────────────────────────────────────────────────────

// CreateProvider POST /api/communication-providers
func (h *CommsHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	p, err := h.uc.CreateProvider(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListProviders GET /api/communication-providers
func (h *CommsHandler) ListProviders(c *fiber.Ctx) error {
	list, err := h.uc.ListProviders(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetProvider GET /api/communication-providers/:id
func (h *CommsHandler) GetProvider(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	p, err := h.uc.GetProvider(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// UpdateProvider PATCH /api/communication-providers/:id
func (h *CommsHandler) UpdateProvider(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	p, err := h.uc.UpdateProvider(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// DeleteProvider DELETE /api/communication-providers/:id
// Los mensajes ya sincronizados se conservan.
func (h *CommsHandler) DeleteProvider(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteProvider(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Messages ──────────────────────────────────────────────────────────────────

// ListEmails GET /api/emails?providerId=&limit=&offset=
func (h *CommsHandler) ListEmails(c *fiber.Ctx) error {
	providerID, _ := strconv.ParseInt(c.Query("providerId", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListEmails(c.Context(), GetCompanyID(c), providerID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Send POST /api/emails/send
func (h *CommsHandler) Send(c *fiber.Ctx) error {
	var in dto.SendEmailRequest
	if !parseBody(c, &in) {
		return nil
	}
	msg, err := h.uc.Send(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// Sync POST /api/emails/sync sincroniza los proveedores activos de la empresa.
func (h *CommsHandler) Sync(c *fiber.Ctx) error {
	res, err := h.uc.SyncCompany(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
