package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

const licenseColumns = `id, company_id, name, number, authority, issue_date, expiry_date, created_at, updated_at`

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

// Create persiste una licencia y asigna su ID.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) error {
	query := `
		INSERT INTO licenses (company_id, name, number, authority, issue_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.CompanyID, l.Name, l.Number, l.Authority, l.IssueDate, l.ExpiryDate,
		l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia de la empresa.
func (r *LicenseRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE company_id = $1 AND id = $2`
	var l entity.License
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Number, &l.Authority,
		&l.IssueDate, &l.ExpiryDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// ListByCompany lista las licencias de la empresa.
func (r *LicenseRepo) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + ` FROM licenses WHERE company_id = $1 ORDER BY expiry_date NULLS LAST LIMIT $2 OFFSET $3`
	return r.scanList(ctx, query, companyID, limit, offset)
}

// ListExpiring lista licencias con vencimiento antes de before.
func (r *LicenseRepo) ListExpiring(ctx context.Context, companyID int64, before time.Time) ([]*entity.License, error) {
	query := `SELECT ` + licenseColumns + `
		FROM licenses
		WHERE company_id = $1 AND expiry_date IS NOT NULL AND expiry_date <= $2
		ORDER BY expiry_date`
	return r.scanList(ctx, query, companyID, before)
}

// Update actualiza una licencia de la empresa.
func (r *LicenseRepo) Update(ctx context.Context, l *entity.License) error {
	query := `
		UPDATE licenses SET name = $3, number = $4, authority = $5, issue_date = $6,
			expiry_date = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		l.CompanyID, l.ID, l.Name, l.Number, l.Authority, l.IssueDate, l.ExpiryDate, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// Delete elimina una licencia de la empresa.
func (r *LicenseRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM licenses WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}

func (r *LicenseRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.License, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.License
	for rows.Next() {
		var l entity.License
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.Name, &l.Number, &l.Authority,
			&l.IssueDate, &l.ExpiryDate, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
