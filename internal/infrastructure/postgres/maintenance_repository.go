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

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

const maintenanceColumns = `id, company_id, client_id, project_id, technician_id,
	scheduled_date, completed_date, frequency, status,
	ph, chlorine_ppm, alkalinity_ppm, cyanuric_ppm,
	filter_cleaned, equipment_ok, notes, created_at, updated_at`

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL.
// Las lecturas de agua son columnas numéricas propias, no texto en notas.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para visitas.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// Create persiste una visita y asigna su ID.
func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.Maintenance) error {
	query := `
		INSERT INTO maintenances (company_id, client_id, project_id, technician_id,
			scheduled_date, completed_date, frequency, status,
			ph, chlorine_ppm, alkalinity_ppm, cyanuric_ppm,
			filter_cleaned, equipment_ok, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.CompanyID, m.ClientID, m.ProjectID, m.TechnicianID,
		m.ScheduledDate, m.CompletedDate, m.Frequency, m.Status,
		m.Readings.PH, m.Readings.ChlorinePPM, m.Readings.AlkalinityPPM, m.Readings.CyanuricPPM,
		m.FilterCleaned, m.EquipmentOK, m.Notes, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// GetByID obtiene una visita de la empresa.
func (r *MaintenanceRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE company_id = $1 AND id = $2`
	m, err := scanMaintenance(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return m, nil
}

// ListByCompany lista visitas según el filtro.
func (r *MaintenanceRepo) ListByCompany(ctx context.Context, companyID int64, f repository.MaintenanceFilter) ([]*entity.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + `
		FROM maintenances
		WHERE company_id = $1
		  AND ($2 = 0 OR client_id = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4::timestamptz IS NULL OR scheduled_date >= $4)
		  AND ($5::timestamptz IS NULL OR scheduled_date <= $5)
		ORDER BY scheduled_date LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(ctx, query, companyID, f.ClientID, f.Status, f.From, f.To, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update actualiza una visita de la empresa.
func (r *MaintenanceRepo) Update(ctx context.Context, m *entity.Maintenance) error {
	query := `
		UPDATE maintenances SET technician_id = $3, scheduled_date = $4, completed_date = $5,
			frequency = $6, status = $7, ph = $8, chlorine_ppm = $9, alkalinity_ppm = $10,
			cyanuric_ppm = $11, filter_cleaned = $12, equipment_ok = $13, notes = $14, updated_at = $15
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		m.CompanyID, m.ID, m.TechnicianID, m.ScheduledDate, m.CompletedDate,
		m.Frequency, m.Status,
		m.Readings.PH, m.Readings.ChlorinePPM, m.Readings.AlkalinityPPM, m.Readings.CyanuricPPM,
		m.FilterCleaned, m.EquipmentOK, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return nil
}

// Delete elimina una visita de la empresa.
func (r *MaintenanceRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM maintenances WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return nil
}

// MarkOverdue pasa a "overdue" las visitas "scheduled" anteriores a before y
// devuelve las afectadas.
func (r *MaintenanceRepo) MarkOverdue(ctx context.Context, before time.Time) ([]*entity.Maintenance, error) {
	query := `
		UPDATE maintenances SET status = 'overdue', updated_at = now()
		WHERE status = 'scheduled' AND scheduled_date < $1
		RETURNING ` + maintenanceColumns
	rows, err := r.q.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("mark maintenances overdue: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overdue maintenance: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMaintenance(row pgx.Row) (*entity.Maintenance, error) {
	var m entity.Maintenance
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.ClientID, &m.ProjectID, &m.TechnicianID,
		&m.ScheduledDate, &m.CompletedDate, &m.Frequency, &m.Status,
		&m.Readings.PH, &m.Readings.ChlorinePPM, &m.Readings.AlkalinityPPM, &m.Readings.CyanuricPPM,
		&m.FilterCleaned, &m.EquipmentOK, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
