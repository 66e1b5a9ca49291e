package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only para el dashboard y los reportes.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas de dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountActiveClients cuenta los clientes activos de la empresa.
func (r *DashboardRepo) CountActiveClients(ctx context.Context, companyID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM clients WHERE company_id = $1 AND status = 'active'`,
		companyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active clients: %w", err)
	}
	return n, nil
}

// CountMaintenancesDue cuenta visitas programadas en el rango.
func (r *DashboardRepo) CountMaintenancesDue(ctx context.Context, companyID int64, from, to time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM maintenances
		 WHERE company_id = $1 AND status = 'scheduled' AND scheduled_date >= $2 AND scheduled_date < $3`,
		companyID, from, to,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count maintenances due: %w", err)
	}
	return n, nil
}

// CountOpenRepairs cuenta reparaciones no cerradas.
func (r *DashboardRepo) CountOpenRepairs(ctx context.Context, companyID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM repairs
		 WHERE company_id = $1 AND status NOT IN ('completed', 'cancelled')`,
		companyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open repairs: %w", err)
	}
	return n, nil
}

// GetRepairRevenue suma el costo de reparaciones completadas en el rango.
func (r *DashboardRepo) GetRepairRevenue(ctx context.Context, companyID int64, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(sum(cost), 0) FROM repairs
		 WHERE company_id = $1 AND status = 'completed'
		   AND completed_date >= $2 AND completed_date <= $3`,
		companyID, from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repair revenue: %w", err)
	}
	return total, nil
}

// GetExpenseTotals agrupa el gasto del rango por categoría.
func (r *DashboardRepo) GetExpenseTotals(ctx context.Context, companyID int64, from, to time.Time) ([]repository.ExpenseByCategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT category, COALESCE(sum(amount), 0)
		 FROM expenses
		 WHERE company_id = $1 AND date >= $2 AND date <= $3
		 GROUP BY category ORDER BY category`,
		companyID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("expense totals: %w", err)
	}
	defer rows.Close()
	var totals []repository.ExpenseByCategory
	for rows.Next() {
		var t repository.ExpenseByCategory
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("scan expense total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CountOpenPurchaseOrders cuenta órdenes en draft o sent.
func (r *DashboardRepo) CountOpenPurchaseOrders(ctx context.Context, companyID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM purchase_orders
		 WHERE company_id = $1 AND status IN ('draft', 'sent')`,
		companyID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open purchase orders: %w", err)
	}
	return n, nil
}
