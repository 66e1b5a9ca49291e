package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.PhaseRepository = (*PhaseRepo)(nil)

const phaseColumns = `id, project_id, name, description, status, start_date, end_date,
	percent_complete, sort_order, created_at, updated_at`

// PhaseRepo implementación del puerto PhaseRepository sobre PostgreSQL.
type PhaseRepo struct {
	q Querier
}

// NewPhaseRepository construye el adaptador de persistencia para fases.
func NewPhaseRepository(q Querier) *PhaseRepo {
	return &PhaseRepo{q: q}
}

// Create persiste una nueva fase y asigna su ID.
func (r *PhaseRepo) Create(ctx context.Context, phase *entity.ProjectPhase) error {
	query := `
		INSERT INTO project_phases (project_id, name, description, status, start_date, end_date,
			percent_complete, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		phase.ProjectID, phase.Name, phase.Description, phase.Status,
		phase.StartDate, phase.EndDate, phase.PercentComplete, phase.SortOrder,
		phase.CreatedAt, phase.UpdatedAt,
	).Scan(&phase.ID)
	if err != nil {
		return fmt.Errorf("insert phase: %w", err)
	}
	return nil
}

// GetByID obtiene una fase por ID.
func (r *PhaseRepo) GetByID(ctx context.Context, id int64) (*entity.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + ` FROM project_phases WHERE id = $1`
	var p entity.ProjectPhase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProjectID, &p.Name, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.PercentComplete, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get phase: %w", err)
	}
	return &p, nil
}

// ListByProject lista las fases del proyecto en orden.
func (r *PhaseRepo) ListByProject(ctx context.Context, projectID int64) ([]*entity.ProjectPhase, error) {
	query := `SELECT ` + phaseColumns + ` FROM project_phases WHERE project_id = $1 ORDER BY sort_order, id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectPhase
	for rows.Next() {
		var p entity.ProjectPhase
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.Name, &p.Description, &p.Status,
			&p.StartDate, &p.EndDate, &p.PercentComplete, &p.SortOrder,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan phase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una fase.
func (r *PhaseRepo) Update(ctx context.Context, phase *entity.ProjectPhase) error {
	query := `
		UPDATE project_phases SET name = $2, description = $3, status = $4, start_date = $5,
			end_date = $6, percent_complete = $7, sort_order = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		phase.ID, phase.Name, phase.Description, phase.Status,
		phase.StartDate, phase.EndDate, phase.PercentComplete, phase.SortOrder,
		phase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update phase: %w", err)
	}
	return nil
}

// Delete elimina una fase.
func (r *PhaseRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM project_phases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete phase: %w", err)
	}
	return nil
}
