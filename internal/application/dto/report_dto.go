package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessReportDTO resumen financiero mensual de la empresa.
type BusinessReportDTO struct {
	CompanyName        string             `json:"company_name"`
	PeriodStart        time.Time          `json:"period_start"`
	PeriodEnd          time.Time          `json:"period_end"`
	RepairRevenue      decimal.Decimal    `json:"repair_revenue"`
	TotalExpenses      decimal.Decimal    `json:"total_expenses"`
	NetResult          decimal.Decimal    `json:"net_result"`
	ExpensesByCategory []CategoryTotalDTO `json:"expenses_by_category"`
	OpenPurchaseOrders int                `json:"open_purchase_orders"`
	ExpiringLicenses   []LicenseResponse   `json:"expiring_licenses"`
	ExpiringPolicies   []InsuranceResponse `json:"expiring_policies"`
}
