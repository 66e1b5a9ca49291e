package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, company_id, vendor_id, project_id, order_number, status,
	total, order_date, expected_date, notes, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden y asigna su ID.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (company_id, vendor_id, project_id, order_number, status,
			total, order_date, expected_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		po.CompanyID, po.VendorID, po.ProjectID, po.OrderNumber, po.Status,
		po.Total, po.OrderDate, po.ExpectedDate, po.Notes, po.CreatedAt, po.UpdatedAt,
	).Scan(&po.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de la empresa.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE company_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, id), "get purchase order")
}

// GetByOrderNumber obtiene una orden por su número dentro de la empresa.
func (r *PurchaseOrderRepo) GetByOrderNumber(ctx context.Context, companyID int64, orderNumber string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE company_id = $1 AND order_number = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, orderNumber), "get purchase order by number")
}

// ListByCompany lista órdenes, opcionalmente por estado.
func (r *PurchaseOrderRepo) ListByCompany(ctx context.Context, companyID int64, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY order_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.CompanyID, &po.VendorID, &po.ProjectID, &po.OrderNumber, &po.Status,
			&po.Total, &po.OrderDate, &po.ExpectedDate, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &po)
	}
	return list, rows.Err()
}

// Update actualiza una orden de la empresa.
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $3, total = $4, expected_date = $5, notes = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		po.CompanyID, po.ID, po.Status, po.Total, po.ExpectedDate, po.Notes, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// Delete elimina una orden de la empresa.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) scanOne(row pgx.Row, op string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.CompanyID, &po.VendorID, &po.ProjectID, &po.OrderNumber, &po.Status,
		&po.Total, &po.OrderDate, &po.ExpectedDate, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &po, nil
}
