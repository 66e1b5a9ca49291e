// Package reports arma el reporte financiero mensual y lo exporta
// a Excel o PDF.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// Ventana de vencimientos incluida en el reporte.
const expiryWindowDays = 60

// Exporter serializa un reporte a un formato descargable.
type Exporter interface {
	Export(report *dto.BusinessReportDTO) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// UseCase genera el reporte financiero de un periodo.
type UseCase struct {
	companyRepo   repository.CompanyRepository
	dashRepo      repository.DashboardRepository
	licenseRepo   repository.LicenseRepository
	insuranceRepo repository.InsuranceRepository
	exporters     map[string]Exporter // por formato: xlsx, pdf
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	dashRepo repository.DashboardRepository,
	licenseRepo repository.LicenseRepository,
	insuranceRepo repository.InsuranceRepository,
	exporters map[string]Exporter,
) *UseCase {
	return &UseCase{
		companyRepo:   companyRepo,
		dashRepo:      dashRepo,
		licenseRepo:   licenseRepo,
		insuranceRepo: insuranceRepo,
		exporters:     exporters,
	}
}

// Monthly arma el reporte del mes que contiene la fecha indicada.
func (uc *UseCase) Monthly(ctx context.Context, companyID int64, at time.Time) (*dto.BusinessReportDTO, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	periodStart := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	revenue, err := uc.dashRepo.GetRepairRevenue(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte: ingresos por reparaciones: %w", err)
	}
	expenseTotals, err := uc.dashRepo.GetExpenseTotals(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte: gastos por categoría: %w", err)
	}
	openPOs, err := uc.dashRepo.CountOpenPurchaseOrders(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte: órdenes de compra abiertas: %w", err)
	}

	expiryBefore := time.Now().AddDate(0, 0, expiryWindowDays)
	licenses, err := uc.licenseRepo.ListExpiring(ctx, companyID, expiryBefore)
	if err != nil {
		return nil, fmt.Errorf("reporte: licencias por vencer: %w", err)
	}
	policies, err := uc.insuranceRepo.ListExpiring(ctx, companyID, expiryBefore)
	if err != nil {
		return nil, fmt.Errorf("reporte: pólizas por vencer: %w", err)
	}

	totalExpenses := decimal.Zero
	byCategory := make([]dto.CategoryTotalDTO, 0, len(expenseTotals))
	for _, t := range expenseTotals {
		totalExpenses = totalExpenses.Add(t.Total)
		byCategory = append(byCategory, dto.CategoryTotalDTO{Category: t.Category, Total: t.Total.Round(2)})
	}

	report := &dto.BusinessReportDTO{
		CompanyName:        company.Name,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		RepairRevenue:      revenue.Round(2),
		TotalExpenses:      totalExpenses.Round(2),
		NetResult:          revenue.Sub(totalExpenses).Round(2),
		ExpensesByCategory: byCategory,
		OpenPurchaseOrders: openPOs,
		ExpiringLicenses:   make([]dto.LicenseResponse, 0, len(licenses)),
		ExpiringPolicies:   make([]dto.InsuranceResponse, 0, len(policies)),
	}
	for _, l := range licenses {
		report.ExpiringLicenses = append(report.ExpiringLicenses, dto.LicenseResponse{
			ID:         l.ID,
			CompanyID:  l.CompanyID,
			Name:       l.Name,
			Number:     l.Number,
			Authority:  l.Authority,
			IssueDate:  l.IssueDate,
			ExpiryDate: l.ExpiryDate,
			CreatedAt:  l.CreatedAt,
			UpdatedAt:  l.UpdatedAt,
		})
	}
	for _, p := range policies {
		report.ExpiringPolicies = append(report.ExpiringPolicies, dto.InsuranceResponse{
			ID:            p.ID,
			CompanyID:     p.CompanyID,
			PolicyNumber:  p.PolicyNumber,
			Carrier:       p.Carrier,
			CoverageType:  p.CoverageType,
			Premium:       p.Premium,
			EffectiveDate: p.EffectiveDate,
			ExpiryDate:    p.ExpiryDate,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	return report, nil
}

// Export genera el reporte del mes y lo serializa en el formato pedido
// (xlsx o pdf). Devuelve el contenido, el content type y la extensión.
func (uc *UseCase) Export(ctx context.Context, companyID int64, at time.Time, format string) ([]byte, string, string, error) {
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: formato de reporte %q", domain.ErrInvalidInput, format)
	}
	report, err := uc.Monthly(ctx, companyID, at)
	if err != nil {
		return nil, "", "", err
	}
	content, err := exporter.Export(report)
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: exportar %s: %w", format, err)
	}
	return content, exporter.ContentType(), exporter.FileExtension(), nil
}
