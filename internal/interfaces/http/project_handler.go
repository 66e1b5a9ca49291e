package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ProjectHandler maneja las peticiones HTTP de obras/proyectos (protegido).
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if !parseBody(c, &in) {
		return nil
	}
	project, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// List GET /api/projects?clientId=&status=&includeArchived=&limit=&offset=
// Los proyectos archivados se excluyen salvo includeArchived=true.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	clientID, _ := strconv.ParseInt(c.Query("clientId", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	f := repository.ProjectFilter{
		ClientID:        clientID,
		Status:          c.Query("status"),
		IncludeArchived: c.QueryBool("includeArchived", false),
		Limit:           limit,
		Offset:          offset,
	}
	list, err := h.uc.List(c.Context(), GetCompanyID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	project, err := h.uc.GetByID(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// Update PATCH /api/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateProjectRequest
	if !parseBody(c, &in) {
		return nil
	}
	project, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// ToggleArchive POST /api/projects/:id/archive
func (h *ProjectHandler) ToggleArchive(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	resp, err := h.uc.ToggleArchive(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeletionPreview GET /api/projects/:id/deletion-preview
// Cuenta lo que el borrado eliminaría o desvincularía, sin tocar nada.
func (h *ProjectHandler) DeletionPreview(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	preview, err := h.uc.DeletionPreview(c.Context(), GetCompanyID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(preview)
}

// Delete DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
