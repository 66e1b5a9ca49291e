package dto

import "github.com/shopspring/decimal"

// CategoryTotalDTO gasto total de una categoría en el periodo.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardSummaryDTO resumen operativo y financiero de la empresa.
type DashboardSummaryDTO struct {
	ActiveClients      int                `json:"active_clients"`
	VisitsDueThisWeek  int                `json:"visits_due_this_week"`
	OpenRepairs        int                `json:"open_repairs"`
	OpenPurchaseOrders int                `json:"open_purchase_orders"`
	MonthRevenue       decimal.Decimal    `json:"month_revenue"`
	MonthExpenses      decimal.Decimal    `json:"month_expenses"`
	ExpensesByCategory []CategoryTotalDTO `json:"expenses_by_category"`
}
