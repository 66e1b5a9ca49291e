package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseByCategory total de gasto agrupado por categoría.
type ExpenseByCategory struct {
	Category string
	Total    decimal.Decimal
}

// DashboardRepository consultas read-only para el dashboard y los reportes.
// No escribe nunca; las cifras salen de las tablas operativas.
type DashboardRepository interface {
	CountActiveClients(ctx context.Context, companyID int64) (int, error)
	CountMaintenancesDue(ctx context.Context, companyID int64, from, to time.Time) (int, error)
	CountOpenRepairs(ctx context.Context, companyID int64) (int, error)
	// GetRepairRevenue suma el costo de reparaciones completadas en el rango.
	GetRepairRevenue(ctx context.Context, companyID int64, from, to time.Time) (decimal.Decimal, error)
	GetExpenseTotals(ctx context.Context, companyID int64, from, to time.Time) ([]ExpenseByCategory, error)
	CountOpenPurchaseOrders(ctx context.Context, companyID int64) (int, error)
}
