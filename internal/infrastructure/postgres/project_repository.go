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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, company_id, client_id, name, description, status,
	start_date, end_date, budget, percent_complete, is_archived, created_at, updated_at`

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nuevo proyecto y asigna su ID.
func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (company_id, client_id, name, description, status,
			start_date, end_date, budget, percent_complete, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		project.CompanyID, project.ClientID, project.Name, project.Description,
		project.Status, project.StartDate, project.EndDate, project.Budget,
		project.PercentComplete, project.IsArchived, project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto de la empresa (incluye archivados).
func (r *ProjectRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE company_id = $1 AND id = $2`
	var p entity.Project
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&p.ID, &p.CompanyID, &p.ClientID, &p.Name, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.Budget, &p.PercentComplete, &p.IsArchived,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ListByCompany lista proyectos según el filtro. Los archivados quedan fuera
// salvo que IncludeArchived sea true.
func (r *ProjectRepo) ListByCompany(ctx context.Context, companyID int64, f repository.ProjectFilter) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE company_id = $1
		  AND ($2 = 0 OR client_id = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4 OR NOT is_archived)
		ORDER BY created_at DESC LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(ctx, query, companyID, f.ClientID, f.Status, f.IncludeArchived, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.ClientID, &p.Name, &p.Description, &p.Status,
			&p.StartDate, &p.EndDate, &p.Budget, &p.PercentComplete, &p.IsArchived,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto de la empresa.
func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects SET name = $3, description = $4, status = $5, start_date = $6,
			end_date = $7, budget = $8, percent_complete = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		project.CompanyID, project.ID, project.Name, project.Description,
		project.Status, project.StartDate, project.EndDate, project.Budget,
		project.PercentComplete, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// SetArchived cambia el estado de archivado.
func (r *ProjectRepo) SetArchived(ctx context.Context, companyID, id int64, archived bool) error {
	query := `UPDATE projects SET is_archived = $3, updated_at = now() WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query, companyID, id, archived)
	if err != nil {
		return fmt.Errorf("set project archived: %w", err)
	}
	return nil
}

// DeletionPreview cuenta los registros relacionados que caerían con el proyecto.
func (r *ProjectRepo) DeletionPreview(ctx context.Context, companyID, id int64) (*entity.DeletionPreview, error) {
	query := `
		SELECT
			(SELECT count(*) FROM project_phases ph JOIN projects p ON p.id = ph.project_id
				WHERE p.company_id = $1 AND ph.project_id = $2),
			(SELECT count(*) FROM project_documents d JOIN projects p ON p.id = d.project_id
				WHERE p.company_id = $1 AND d.project_id = $2),
			(SELECT count(*) FROM repairs WHERE company_id = $1 AND project_id = $2),
			(SELECT count(*) FROM maintenances WHERE company_id = $1 AND project_id = $2),
			(SELECT count(*) FROM purchase_orders po
				WHERE po.company_id = $1 AND po.project_id = $2)`
	var preview entity.DeletionPreview
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&preview.Phases, &preview.Documents, &preview.Repairs,
		&preview.Maintenances, &preview.PurchaseOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("project deletion preview: %w", err)
	}
	return &preview, nil
}

// Delete elimina el proyecto. Fases y documentos caen por cascada en DB;
// reparaciones, visitas y órdenes quedan sin proyecto (SET NULL).
func (r *ProjectRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM projects WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
