package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.ServiceReportRepository = (*ServiceReportRepo)(nil)

// ServiceReportRepo implementación del puerto ServiceReportRepository sobre PostgreSQL.
type ServiceReportRepo struct {
	q Querier
}

// NewServiceReportRepository construye el adaptador de persistencia para informes.
func NewServiceReportRepository(q Querier) *ServiceReportRepo {
	return &ServiceReportRepo{q: q}
}

// Create persiste un informe de servicio y asigna su ID.
func (r *ServiceReportRepo) Create(ctx context.Context, report *entity.ServiceReport) error {
	query := `
		INSERT INTO service_reports (maintenance_id, summary, ph, chlorine_ppm,
			alkalinity_ppm, cyanuric_ppm, chemicals_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		report.MaintenanceID, report.Summary,
		report.Readings.PH, report.Readings.ChlorinePPM,
		report.Readings.AlkalinityPPM, report.Readings.CyanuricPPM,
		report.ChemicalsUsed, report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("insert service report: %w", err)
	}
	return nil
}

// GetByMaintenance obtiene el informe de una visita.
func (r *ServiceReportRepo) GetByMaintenance(ctx context.Context, maintenanceID int64) (*entity.ServiceReport, error) {
	query := `
		SELECT id, maintenance_id, summary, ph, chlorine_ppm, alkalinity_ppm, cyanuric_ppm,
			chemicals_used, created_at
		FROM service_reports WHERE maintenance_id = $1`
	var rep entity.ServiceReport
	err := r.q.QueryRow(ctx, query, maintenanceID).Scan(
		&rep.ID, &rep.MaintenanceID, &rep.Summary,
		&rep.Readings.PH, &rep.Readings.ChlorinePPM, &rep.Readings.AlkalinityPPM, &rep.Readings.CyanuricPPM,
		&rep.ChemicalsUsed, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service report: %w", err)
	}
	return &rep, nil
}
