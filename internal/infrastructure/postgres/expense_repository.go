package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, company_id, vendor_id, category, description, amount, date, created_at, updated_at`

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto y asigna su ID.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (company_id, vendor_id, category, description, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.CompanyID, e.VendorID, e.Category, e.Description, e.Amount, e.Date, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto de la empresa.
func (r *ExpenseRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE company_id = $1 AND id = $2`
	var e entity.Expense
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&e.ID, &e.CompanyID, &e.VendorID, &e.Category, &e.Description,
		&e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// ListByCompany lista gastos, opcionalmente por categoría.
func (r *ExpenseRepo) ListByCompany(ctx context.Context, companyID int64, category string, limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + `
		FROM expenses
		WHERE company_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.VendorID, &e.Category, &e.Description,
			&e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un gasto de la empresa.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	query := `
		UPDATE expenses SET vendor_id = $3, category = $4, description = $5, amount = $6,
			date = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		e.CompanyID, e.ID, e.VendorID, e.Category, e.Description, e.Amount, e.Date, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete elimina un gasto de la empresa.
func (r *ExpenseRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
