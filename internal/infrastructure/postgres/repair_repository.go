package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

const repairColumns = `id, company_id, client_id, project_id, technician_id, title, description,
	priority, status, reported_date, completed_date, cost, created_at, updated_at`

// RepairRepo implementación del puerto RepairRepository sobre PostgreSQL.
type RepairRepo struct {
	q Querier
}

// NewRepairRepository construye el adaptador de persistencia para reparaciones.
func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

// Create persiste una reparación y asigna su ID.
func (r *RepairRepo) Create(ctx context.Context, rep *entity.Repair) error {
	query := `
		INSERT INTO repairs (company_id, client_id, project_id, technician_id, title, description,
			priority, status, reported_date, completed_date, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		rep.CompanyID, rep.ClientID, rep.ProjectID, rep.TechnicianID,
		rep.Title, rep.Description, rep.Priority, rep.Status,
		rep.ReportedDate, rep.CompletedDate, rep.Cost, rep.CreatedAt, rep.UpdatedAt,
	).Scan(&rep.ID)
	if err != nil {
		return fmt.Errorf("insert repair: %w", err)
	}
	return nil
}

// GetByID obtiene una reparación de la empresa.
func (r *RepairRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Repair, error) {
	query := `SELECT ` + repairColumns + ` FROM repairs WHERE company_id = $1 AND id = $2`
	var rep entity.Repair
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&rep.ID, &rep.CompanyID, &rep.ClientID, &rep.ProjectID, &rep.TechnicianID,
		&rep.Title, &rep.Description, &rep.Priority, &rep.Status,
		&rep.ReportedDate, &rep.CompletedDate, &rep.Cost, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair: %w", err)
	}
	return &rep, nil
}

// ListByCompany lista reparaciones según el filtro.
func (r *RepairRepo) ListByCompany(ctx context.Context, companyID int64, f repository.RepairFilter) ([]*entity.Repair, error) {
	query := `SELECT ` + repairColumns + `
		FROM repairs
		WHERE company_id = $1
		  AND ($2 = 0 OR client_id = $2)
		  AND ($3 = 0 OR project_id = $3)
		  AND ($4 = '' OR status = $4)
		  AND ($5 = '' OR priority = $5)
		ORDER BY reported_date DESC LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(ctx, query, companyID, f.ClientID, f.ProjectID, f.Status, f.Priority, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repair
	for rows.Next() {
		var rep entity.Repair
		if err := rows.Scan(
			&rep.ID, &rep.CompanyID, &rep.ClientID, &rep.ProjectID, &rep.TechnicianID,
			&rep.Title, &rep.Description, &rep.Priority, &rep.Status,
			&rep.ReportedDate, &rep.CompletedDate, &rep.Cost, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan repair: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// Update actualiza una reparación de la empresa.
func (r *RepairRepo) Update(ctx context.Context, rep *entity.Repair) error {
	query := `
		UPDATE repairs SET technician_id = $3, title = $4, description = $5, priority = $6,
			status = $7, completed_date = $8, cost = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		rep.CompanyID, rep.ID, rep.TechnicianID, rep.Title, rep.Description,
		rep.Priority, rep.Status, rep.CompletedDate, rep.Cost, rep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repair: %w", err)
	}
	return nil
}

// Delete elimina una reparación de la empresa.
func (r *RepairRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM repairs WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete repair: %w", err)
	}
	return nil
}
