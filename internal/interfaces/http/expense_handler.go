package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// ExpenseHandler maneja las peticiones HTTP de gastos y proveedores comerciales (protegido).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// ── Expenses ──────────────────────────────────────────────────────────────────

// CreateExpense POST /api/business/expenses
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if !parseBody(c, &in) {
		return nil
	}
	expense, err := h.uc.CreateExpense(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ListExpenses GET /api/business/expenses?category=&limit=&offset=
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListExpenses(c.Context(), GetCompanyID(c), c.Query("category"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetExpense GET /api/business/expenses/:id
func (h *ExpenseHandler) GetExpense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	expense, err := h.uc.GetExpense(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

// UpdateExpense PATCH /api/business/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateExpenseRequest
	if !parseBody(c, &in) {
		return nil
	}
	expense, err := h.uc.UpdateExpense(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

// DeleteExpense DELETE /api/business/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteExpense(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Vendors ───────────────────────────────────────────────────────────────────

// CreateVendor POST /api/business/vendors
func (h *ExpenseHandler) CreateVendor(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if !parseBody(c, &in) {
		return nil
	}
	vendor, err := h.uc.CreateVendor(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// ListVendors GET /api/business/vendors?q=&limit=&offset=
func (h *ExpenseHandler) ListVendors(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListVendors(c.Context(), GetCompanyID(c), c.Query("q"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetVendor GET /api/business/vendors/:id
func (h *ExpenseHandler) GetVendor(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	vendor, err := h.uc.GetVendor(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendor)
}

// UpdateVendor PATCH /api/business/vendors/:id
func (h *ExpenseHandler) UpdateVendor(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateVendorRequest
	if !parseBody(c, &in) {
		return nil
	}
	vendor, err := h.uc.UpdateVendor(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendor)
}

// DeleteVendor DELETE /api/business/vendors/:id
func (h *ExpenseHandler) DeleteVendor(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteVendor(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
