package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
)

// DocumentHandler maneja las peticiones HTTP de documentos de obra (protegido).
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload POST /api/projects/:id/documents (multipart)
//
// El límite de 50 MB se verifica sobre el tamaño declarado del multipart,
// antes de abrir el archivo y antes de cualquier llamada al object store.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart 'file' requerido"})
	}
	if fileHeader.Size > usecase.MaxDocumentSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el máximo de 50 MB"})
	}

	in := dto.UploadDocumentRequest{
		Title:        c.FormValue("title"),
		DocumentType: c.FormValue("document_type"),
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	doc, err := h.uc.Upload(c.Context(), GetCompanyID(c), projectID, GetUserID(c), in,
		fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// SignUpload POST /api/projects/:id/documents/sign-upload
// Emite una URL firmada PUT para subir directo al bucket sin pasar por el API.
func (h *DocumentHandler) SignUpload(c *fiber.Ctx) error {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.SignUploadRequest
	if !parseBody(c, &in) {
		return nil
	}
	resp, err := h.uc.SignUpload(c.Context(), GetCompanyID(c), projectID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListByProject GET /api/projects/:id/documents?documentType=
// El filtro por tipo es exacto; vacío o "all" devuelve todo.
func (h *DocumentHandler) ListByProject(c *fiber.Ctx) error {
	projectID, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	docType := c.Query("documentType")
	if docType == "all" {
		docType = ""
	}
	list, err := h.uc.ListByProject(c.Context(), GetCompanyID(c), projectID, docType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PATCH /api/documents/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateDocumentRequest
	if !parseBody(c, &in) {
		return nil
	}
	doc, err := h.uc.Update(c.Context(), GetCompanyID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doc)
}

// Delete DELETE /api/documents/:id borra el registro y el objeto del bucket.
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
