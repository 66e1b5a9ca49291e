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

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, company_id, name, contact_name, email, phone, category, status, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor y asigna su ID.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (company_id, name, contact_name, email, phone, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.CompanyID, v.Name, v.ContactName, v.Email, v.Phone, v.Category, v.Status,
		v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor de la empresa.
func (r *VendorRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE company_id = $1 AND id = $2`
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&v.ID, &v.CompanyID, &v.Name, &v.ContactName, &v.Email, &v.Phone,
		&v.Category, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// ListByCompany lista proveedores; search llega normalizado y se compara con unaccent.
func (r *VendorRepo) ListByCompany(ctx context.Context, companyID int64, search string, limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + `
		FROM vendors
		WHERE company_id = $1 AND ($2 = '' OR lower(unaccent(name)) LIKE '%' || $2 || '%')
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Name, &v.ContactName, &v.Email, &v.Phone,
			&v.Category, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor de la empresa.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $3, contact_name = $4, email = $5, phone = $6,
			category = $7, status = $8, updated_at = $9
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		v.CompanyID, v.ID, v.Name, v.ContactName, v.Email, v.Phone,
		v.Category, v.Status, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor de la empresa.
func (r *VendorRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
