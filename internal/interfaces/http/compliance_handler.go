package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// ComplianceHandler maneja las peticiones HTTP de licencias y pólizas (protegido).
type ComplianceHandler struct {
	uc *usecase.ComplianceUseCase
}

// NewComplianceHandler construye el handler.
func NewComplianceHandler(uc *usecase.ComplianceUseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// ── Licenses ──────────────────────────────────────────────────────────────────

// CreateLicense POST /api/business/licenses
func (h *ComplianceHandler) CreateLicense(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
	if !parseBody(c, &in) {
		return nil
	}
	lic, err := h.uc.CreateLicense(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lic)
}

// ListLicenses GET /api/business/licenses?expiringDays=&limit=&offset=
// expiringDays>0 limita a las que vencen dentro de esa ventana.
func (h *ComplianceHandler) ListLicenses(c *fiber.Ctx) error {
	expiringDays, _ := strconv.Atoi(c.Query("expiringDays", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListLicenses(c.Context(), GetCompanyID(c), expiringDays, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetLicense GET /api/business/licenses/:id
func (h *ComplianceHandler) GetLicense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	lic, err := h.uc.GetLicense(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lic)
}

// UpdateLicense PATCH /api/business/licenses/:id
func (h *ComplianceHandler) UpdateLicense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateLicenseRequest
	if !parseBody(c, &in) {
		return nil
	}
	lic, err := h.uc.UpdateLicense(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lic)
}

// DeleteLicense DELETE /api/business/licenses/:id
func (h *ComplianceHandler) DeleteLicense(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteLicense(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Insurance ─────────────────────────────────────────────────────────────────

// CreateInsurance POST /api/business/insurance
func (h *ComplianceHandler) CreateInsurance(c *fiber.Ctx) error {
	var in dto.CreateInsuranceRequest
	if !parseBody(c, &in) {
		return nil
	}
	pol, err := h.uc.CreateInsurance(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pol)
}

// ListInsurance GET /api/business/insurance?expiringDays=&limit=&offset=
func (h *ComplianceHandler) ListInsurance(c *fiber.Ctx) error {
	expiringDays, _ := strconv.Atoi(c.Query("expiringDays", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListInsurance(c.Context(), GetCompanyID(c), expiringDays, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetInsurance GET /api/business/insurance/:id
func (h *ComplianceHandler) GetInsurance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	pol, err := h.uc.GetInsurance(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pol)
}

// UpdateInsurance PATCH /api/business/insurance/:id
func (h *ComplianceHandler) UpdateInsurance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateInsuranceRequest
	if !parseBody(c, &in) {
		return nil
	}
	pol, err := h.uc.UpdateInsurance(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pol)
}

// DeleteInsurance DELETE /api/business/insurance/:id
func (h *ComplianceHandler) DeleteInsurance(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.DeleteInsurance(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
