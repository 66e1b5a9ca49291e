// Package pdf genera el informe mensual de negocio como documento A4 con Maroto v2.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.Exporter = (*ReportExporter)(nil)

// ReportExporter genera el informe mensual como PDF.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

// ContentType devuelve el MIME de los PDF.
func (e *ReportExporter) ContentType() string { return "application/pdf" }

// FileExtension devuelve la extensión sin punto.
func (e *ReportExporter) FileExtension() string { return "pdf" }

// Export genera el documento y devuelve sus bytes.
func (e *ReportExporter) Export(report *dto.BusinessReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe mensual de negocio", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)

	m.AddRows(sectionTitleRow("Gastos por categoría"))
	for _, c := range report.ExpensesByCategory {
		m.AddRows(amountRow(c.Category, c.Total))
	}
	if len(report.ExpensesByCategory) == 0 {
		m.AddRows(emptyRow("Sin gastos en el periodo"))
	}

	m.AddRows(sectionTitleRow("Licencias por vencer"))
	for _, l := range report.ExpiringLicenses {
		m.AddRows(expiryRow(l.Name+" · "+l.Number, l.ExpiryDate))
	}
	if len(report.ExpiringLicenses) == 0 {
		m.AddRows(emptyRow("Sin licencias próximas a vencer"))
	}

	m.AddRows(sectionTitleRow("Pólizas por vencer"))
	for _, p := range report.ExpiringPolicies {
		m.AddRows(expiryRow(p.Carrier+" · "+p.PolicyNumber, p.ExpiryDate))
	}
	if len(report.ExpiringPolicies) == 0 {
		m.AddRows(emptyRow("Sin pólizas próximas a vencer"))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.BusinessReportDTO) core.Row {
	periodo := fmt.Sprintf("%s – %s",
		report.PeriodStart.Format("02/01/2006"), report.PeriodEnd.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New(report.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe mensual de negocio", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Periodo", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(periodo, props.Text{
				Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func summaryRows(report *dto.BusinessReportDTO) []core.Row {
	return []core.Row{
		amountRow("Ingresos por reparaciones", report.RepairRevenue),
		amountRow("Gastos totales", report.TotalExpenses),
		boldAmountRow("Resultado neto", report.NetResult),
		row.New(6).Add(
			col.New(8).Add(text.New("Órdenes de compra abiertas", props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", report.OpenPurchaseOrders), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
		),
	}
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func amountRow(label string, amount decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New("$ "+amount.StringFixed(2), props.Text{
			Size: 9, Align: align.Right, Top: 1,
		})),
	)
}

func boldAmountRow(label string, amount decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(4).Add(text.New("$ "+amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
	)
}

func expiryRow(label string, expiry *time.Time) core.Row {
	fecha := "-"
	if expiry != nil {
		fecha = expiry.Format("02/01/2006")
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(fecha, props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}
