package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
)

// ReportHandler maneja el informe mensual de negocio y sus exportaciones (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly GET /api/business/reports?month=2026-08
// Sin month se usa el mes en curso.
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	at, ok := queryMonth(c)
	if !ok {
		return nil
	}
	report, err := h.uc.Monthly(c.Context(), GetCompanyID(c), at)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Export GET /api/business/reports/export?month= descarga el informe en XLSX.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	return h.download(c, "xlsx")
}

// ExportPDF GET /api/business/reports/pdf?month= descarga el informe en PDF.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.download(c, "pdf")
}

func (h *ReportHandler) download(c *fiber.Ctx, format string) error {
	at, ok := queryMonth(c)
	if !ok {
		return nil
	}
	content, contentType, ext, err := h.uc.Export(c.Context(), GetCompanyID(c), at, format)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("informe-%s.%s", at.Format("2006-01"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// queryMonth parsea ?month=YYYY-MM; el mes en curso si está ausente.
// Si está malformado escribe la respuesta 400 y retorna false.
func queryMonth(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), true
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe tener formato YYYY-MM"})
		return time.Time{}, false
	}
	return t, true
}
