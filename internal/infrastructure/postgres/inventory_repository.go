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

var _ repository.InventoryItemRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, company_id, sku, name, quantity, reorder_point, unit_cost, location, created_at, updated_at`

// InventoryRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un ítem y asigna su ID.
func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (company_id, sku, name, quantity, reorder_point, unit_cost, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		it.CompanyID, it.SKU, it.Name, it.Quantity, it.ReorderPoint,
		it.UnitCost, it.Location, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem de la empresa.
func (r *InventoryRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE company_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, id), "get inventory item")
}

// GetByCompanyAndSKU obtiene un ítem por SKU dentro de la empresa.
func (r *InventoryRepo) GetByCompanyAndSKU(ctx context.Context, companyID int64, sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE company_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, sku), "get inventory item by sku")
}

// ListByCompany lista el inventario de la empresa.
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.Quantity,
			&it.ReorderPoint, &it.UnitCost, &it.Location, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un ítem de la empresa. El SKU no cambia.
func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $3, quantity = $4, reorder_point = $5,
			unit_cost = $6, location = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		it.CompanyID, it.ID, it.Name, it.Quantity, it.ReorderPoint,
		it.UnitCost, it.Location, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina un ítem de la empresa.
func (r *InventoryRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.Quantity,
		&it.ReorderPoint, &it.UnitCost, &it.Location, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
