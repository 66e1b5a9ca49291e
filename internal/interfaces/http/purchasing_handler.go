package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// PurchasingHandler maneja las peticiones HTTP de órdenes de compra e inventario (protegido).
type PurchasingHandler struct {
	uc *usecase.PurchasingUseCase
}

// NewPurchasingHandler construye el handler.
func NewPurchasingHandler(uc *usecase.PurchasingUseCase) *PurchasingHandler {
	return &PurchasingHandler{uc: uc}
}

// ── Purchase orders ───────────────────────────────────────────────────────────

// CreatePurchaseOrder POST /api/business/purchase-orders
func (h *PurchasingHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	po, err := h.uc.CreatePurchaseOrder(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(po)
}

// ListPurchaseOrders GET /api/business/purchase-orders?status=&limit=&offset=
func (h *PurchasingHandler) ListPurchaseOrders(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListPurchaseOrders(c.Context(), GetCompanyID(c), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetPurchaseOrder GET /api/business/purchase-orders/:id
func (h *PurchasingHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	po, err := h.uc.GetPurchaseOrder(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}

// UpdatePurchaseOrder PATCH /api/business/purchase-orders/:id
// Una orden cancelada no admite más cambios (409).
func (h *PurchasingHandler) UpdatePurchaseOrder(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdatePurchaseOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	po, err := h.uc.UpdatePurchaseOrder(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}

// DeletePurchaseOrder DELETE /api/business/purchase-orders/:id
func (h *PurchasingHandler) DeletePurchaseOrder(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeletePurchaseOrder(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

// CreateInventoryItem POST /api/business/inventory
func (h *PurchasingHandler) CreateInventoryItem(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.CreateInventoryItem(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListInventory GET /api/business/inventory?limit=&offset=
func (h *PurchasingHandler) ListInventory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListInventory(c.Context(), GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetInventoryItem GET /api/business/inventory/:id
func (h *PurchasingHandler) GetInventoryItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	item, err := h.uc.GetInventoryItem(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// UpdateInventoryItem PATCH /api/business/inventory/:id. El SKU es inmutable.
func (h *PurchasingHandler) UpdateInventoryItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateInventoryItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.UpdateInventoryItem(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteInventoryItem DELETE /api/business/inventory/:id
func (h *PurchasingHandler) DeleteInventoryItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteInventoryItem(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
