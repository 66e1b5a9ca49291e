// Package excel exporta el informe mensual de negocio a XLSX con Excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
)

const sheetName = "Informe"

var _ reports.Exporter = (*ReportExporter)(nil)

// ReportExporter genera el informe mensual como libro XLSX de una hoja.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

// ContentType devuelve el MIME de los libros XLSX.
func (e *ReportExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension devuelve la extensión sin punto.
func (e *ReportExporter) FileExtension() string { return "xlsx" }

// Export genera el libro y devuelve sus bytes.
func (e *ReportExporter) Export(report *dto.BusinessReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	// Encabezado del periodo
	f.SetCellValue(sheetName, "A1", report.CompanyName)
	f.SetCellStyle(sheetName, "A1", "A1", bold)
	f.SetCellValue(sheetName, "A2", "Periodo")
	f.SetCellValue(sheetName, "B2", fmt.Sprintf("%s – %s",
		report.PeriodStart.Format("02/01/2006"), report.PeriodEnd.Format("02/01/2006")))

	// Resumen financiero
	f.SetCellValue(sheetName, "A4", "Ingresos por reparaciones")
	f.SetCellValue(sheetName, "B4", report.RepairRevenue.InexactFloat64())
	f.SetCellValue(sheetName, "A5", "Gastos totales")
	f.SetCellValue(sheetName, "B5", report.TotalExpenses.InexactFloat64())
	f.SetCellValue(sheetName, "A6", "Resultado neto")
	f.SetCellValue(sheetName, "B6", report.NetResult.InexactFloat64())
	f.SetCellStyle(sheetName, "A6", "B6", bold)
	f.SetCellValue(sheetName, "A7", "Órdenes de compra abiertas")
	f.SetCellValue(sheetName, "B7", report.OpenPurchaseOrders)

	// Gastos por categoría
	rowNo := 9
	f.SetCellValue(sheetName, cell("A", rowNo), "Gastos por categoría")
	f.SetCellStyle(sheetName, cell("A", rowNo), cell("A", rowNo), bold)
	rowNo++
	for _, c := range report.ExpensesByCategory {
		f.SetCellValue(sheetName, cell("A", rowNo), c.Category)
		f.SetCellValue(sheetName, cell("B", rowNo), c.Total.InexactFloat64())
		rowNo++
	}

	// Licencias por vencer
	rowNo++
	f.SetCellValue(sheetName, cell("A", rowNo), "Licencias por vencer")
	f.SetCellStyle(sheetName, cell("A", rowNo), cell("A", rowNo), bold)
	rowNo++
	for _, l := range report.ExpiringLicenses {
		f.SetCellValue(sheetName, cell("A", rowNo), l.Name)
		f.SetCellValue(sheetName, cell("B", rowNo), l.Number)
		if l.ExpiryDate != nil {
			f.SetCellValue(sheetName, cell("C", rowNo), l.ExpiryDate.Format("02/01/2006"))
		}
		rowNo++
	}

	// Pólizas por vencer
	rowNo++
	f.SetCellValue(sheetName, cell("A", rowNo), "Pólizas por vencer")
	f.SetCellStyle(sheetName, cell("A", rowNo), cell("A", rowNo), bold)
	rowNo++
	for _, p := range report.ExpiringPolicies {
		f.SetCellValue(sheetName, cell("A", rowNo), p.Carrier)
		f.SetCellValue(sheetName, cell("B", rowNo), p.PolicyNumber)
		if p.ExpiryDate != nil {
			f.SetCellValue(sheetName, cell("C", rowNo), p.ExpiryDate.Format("02/01/2006"))
		}
		rowNo++
	}

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "C", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col string, row int) string { return fmt.Sprintf("%s%d", col, row) }
