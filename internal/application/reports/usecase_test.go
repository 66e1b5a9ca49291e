package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/reports"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	company *entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.company = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if r.company == nil || r.company.ID != id {
		return nil, nil
	}
	return r.company, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	if r.company == nil {
		return nil, nil
	}
	return []*entity.Company{r.company}, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.company = c
	return nil
}

type fakeFinanceRepo struct {
	revenue  decimal.Decimal
	expenses []repository.ExpenseByCategory
	openPOs  int
}

func (r *fakeFinanceRepo) CountActiveClients(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

func (r *fakeFinanceRepo) CountMaintenancesDue(_ context.Context, _ int64, _, _ time.Time) (int, error) {
	return 0, nil
}

func (r *fakeFinanceRepo) CountOpenRepairs(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

func (r *fakeFinanceRepo) GetRepairRevenue(_ context.Context, _ int64, _, _ time.Time) (decimal.Decimal, error) {
	return r.revenue, nil
}

func (r *fakeFinanceRepo) GetExpenseTotals(_ context.Context, _ int64, _, _ time.Time) ([]repository.ExpenseByCategory, error) {
	return r.expenses, nil
}

func (r *fakeFinanceRepo) CountOpenPurchaseOrders(_ context.Context, _ int64) (int, error) {
	return r.openPOs, nil
}

type fakeLicenseRepo struct {
	expiring []*entity.License
}

func (r *fakeLicenseRepo) Create(_ context.Context, _ *entity.License) error { return nil }

func (r *fakeLicenseRepo) GetByID(_ context.Context, _, _ int64) (*entity.License, error) {
	return nil, nil
}

func (r *fakeLicenseRepo) ListByCompany(_ context.Context, _ int64, _, _ int) ([]*entity.License, error) {
	return nil, nil
}

func (r *fakeLicenseRepo) ListExpiring(_ context.Context, _ int64, _ time.Time) ([]*entity.License, error) {
	return r.expiring, nil
}

func (r *fakeLicenseRepo) Update(_ context.Context, _ *entity.License) error { return nil }

func (r *fakeLicenseRepo) Delete(_ context.Context, _, _ int64) error { return nil }

type fakeInsuranceRepo struct {
	expiring []*entity.Insurance
}

func (r *fakeInsuranceRepo) Create(_ context.Context, _ *entity.Insurance) error { return nil }

func (r *fakeInsuranceRepo) GetByID(_ context.Context, _, _ int64) (*entity.Insurance, error) {
	return nil, nil
}

func (r *fakeInsuranceRepo) ListByCompany(_ context.Context, _ int64, _, _ int) ([]*entity.Insurance, error) {
	return nil, nil
}

func (r *fakeInsuranceRepo) ListExpiring(_ context.Context, _ int64, _ time.Time) ([]*entity.Insurance, error) {
	return r.expiring, nil
}

func (r *fakeInsuranceRepo) Update(_ context.Context, _ *entity.Insurance) error { return nil }

func (r *fakeInsuranceRepo) Delete(_ context.Context, _, _ int64) error { return nil }

// stubExporter serializa el nombre de la empresa; suficiente para el flujo.
type stubExporter struct {
	calls int
}

func (e *stubExporter) Export(report *dto.BusinessReportDTO) ([]byte, error) {
	e.calls++
	return []byte(report.CompanyName), nil
}

func (e *stubExporter) ContentType() string { return "application/test" }

func (e *stubExporter) FileExtension() string { return "test" }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func buildReportsUC(exporters map[string]reports.Exporter) *reports.UseCase {
	companies := &fakeCompanyRepo{company: &entity.Company{ID: 1, Name: "AquaPro Piscinas"}}
	finance := &fakeFinanceRepo{
		revenue: decimal.NewFromInt(2_000_000),
		expenses: []repository.ExpenseByCategory{
			{Category: "chemicals", Total: decimal.NewFromInt(450_000)},
			{Category: "payroll", Total: decimal.NewFromInt(1_100_000)},
		},
		openPOs: 2,
	}
	expiry := time.Now().AddDate(0, 0, 30)
	licenses := &fakeLicenseRepo{expiring: []*entity.License{
		{ID: 1, CompanyID: 1, Name: "Licencia sanitaria", ExpiryDate: &expiry},
	}}
	policies := &fakeInsuranceRepo{expiring: []*entity.Insurance{
		{ID: 1, CompanyID: 1, PolicyNumber: "POL-881", Carrier: "Sura", ExpiryDate: &expiry},
	}}
	return reports.NewUseCase(companies, finance, licenses, policies, exporters)
}

func TestMonthly_CalculaResultadoNeto(t *testing.T) {
	uc := buildReportsUC(nil)

	at := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	report, err := uc.Monthly(context.Background(), 1, at)
	require.NoError(t, err)

	assert.Equal(t, "AquaPro Piscinas", report.CompanyName)
	assert.Equal(t, time.July, report.PeriodStart.Month())
	assert.Equal(t, 1, report.PeriodStart.Day())
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(1_550_000)))
	assert.True(t, report.NetResult.Equal(decimal.NewFromInt(450_000)),
		"neto = ingresos - gastos")
	require.Len(t, report.ExpiringLicenses, 1)
	require.Len(t, report.ExpiringPolicies, 1)
	assert.Equal(t, 2, report.OpenPurchaseOrders)
}

func TestMonthly_EmpresaInexistente(t *testing.T) {
	uc := buildReportsUC(nil)

	_, err := uc.Monthly(context.Background(), 99, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := buildReportsUC(map[string]reports.Exporter{"xlsx": &stubExporter{}})

	_, _, _, err := uc.Export(context.Background(), 1, time.Now(), "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_UsaElExporterDelFormato(t *testing.T) {
	xlsx := &stubExporter{}
	uc := buildReportsUC(map[string]reports.Exporter{"xlsx": xlsx})

	content, contentType, ext, err := uc.Export(context.Background(), 1, time.Now(), "xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, xlsx.calls)
	assert.Equal(t, []byte("AquaPro Piscinas"), content)
	assert.Equal(t, "application/test", contentType)
	assert.Equal(t, "test", ext)
}
