package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// MaintenanceFilter filtros para el listado de visitas.
type MaintenanceFilter struct {
	ClientID int64 // 0 = todos
	Status   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// MaintenanceRepository define el puerto de persistencia para Maintenance.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.Maintenance) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Maintenance, error)
	ListByCompany(ctx context.Context, companyID int64, f MaintenanceFilter) ([]*entity.Maintenance, error)
	Update(ctx context.Context, m *entity.Maintenance) error
	Delete(ctx context.Context, companyID, id int64) error
	// MarkOverdue pasa a "overdue" las visitas "scheduled" anteriores a before.
	// Devuelve las visitas afectadas para generar la siguiente recurrencia.
	MarkOverdue(ctx context.Context, before time.Time) ([]*entity.Maintenance, error)
}

// ServiceReportRepository define el puerto de persistencia para ServiceReport.
type ServiceReportRepository interface {
	Create(ctx context.Context, r *entity.ServiceReport) error
	GetByMaintenance(ctx context.Context, maintenanceID int64) (*entity.ServiceReport, error)
}
