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

var _ repository.InsuranceRepository = (*InsuranceRepo)(nil)

const insuranceColumns = `id, company_id, policy_number, carrier, coverage_type, premium,
	effective_date, expiry_date, created_at, updated_at`

// InsuranceRepo implementación del puerto InsuranceRepository sobre PostgreSQL.
type InsuranceRepo struct {
	q Querier
}

// NewInsuranceRepository construye el adaptador de persistencia para pólizas.
func NewInsuranceRepository(q Querier) *InsuranceRepo {
	return &InsuranceRepo{q: q}
}

// Create persiste una póliza y asigna su ID.
func (r *InsuranceRepo) Create(ctx context.Context, p *entity.Insurance) error {
	query := `
		INSERT INTO insurance_policies (company_id, policy_number, carrier, coverage_type, premium,
			effective_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.CompanyID, p.PolicyNumber, p.Carrier, p.CoverageType, p.Premium,
		p.EffectiveDate, p.ExpiryDate, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert insurance policy: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza de la empresa.
func (r *InsuranceRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurance_policies WHERE company_id = $1 AND id = $2`
	var p entity.Insurance
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&p.ID, &p.CompanyID, &p.PolicyNumber, &p.Carrier, &p.CoverageType, &p.Premium,
		&p.EffectiveDate, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance policy: %w", err)
	}
	return &p, nil
}

// ListByCompany lista las pólizas de la empresa.
func (r *InsuranceRepo) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + ` FROM insurance_policies WHERE company_id = $1 ORDER BY expiry_date NULLS LAST LIMIT $2 OFFSET $3`
	return r.scanList(ctx, query, companyID, limit, offset)
}

// ListExpiring lista pólizas con vencimiento antes de before.
func (r *InsuranceRepo) ListExpiring(ctx context.Context, companyID int64, before time.Time) ([]*entity.Insurance, error) {
	query := `SELECT ` + insuranceColumns + `
		FROM insurance_policies
		WHERE company_id = $1 AND expiry_date IS NOT NULL AND expiry_date <= $2
		ORDER BY expiry_date`
	return r.scanList(ctx, query, companyID, before)
}

// Update actualiza una póliza de la empresa.
func (r *InsuranceRepo) Update(ctx context.Context, p *entity.Insurance) error {
	query := `
		UPDATE insurance_policies SET policy_number = $3, carrier = $4, coverage_type = $5,
			premium = $6, effective_date = $7, expiry_date = $8, updated_at = $9
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		p.CompanyID, p.ID, p.PolicyNumber, p.Carrier, p.CoverageType,
		p.Premium, p.EffectiveDate, p.ExpiryDate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insurance policy: %w", err)
	}
	return nil
}

// Delete elimina una póliza de la empresa.
func (r *InsuranceRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM insurance_policies WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete insurance policy: %w", err)
	}
	return nil
}

func (r *InsuranceRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.Insurance, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurance policies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insurance
	for rows.Next() {
		var p entity.Insurance
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.PolicyNumber, &p.Carrier, &p.CoverageType, &p.Premium,
			&p.EffectiveDate, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan insurance policy: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
