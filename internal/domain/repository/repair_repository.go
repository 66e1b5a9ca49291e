package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// RepairFilter filtros para el listado de reparaciones.
type RepairFilter struct {
	ClientID  int64 // 0 = todos
	ProjectID int64
	Status    string
	Priority  string
	Limit     int
	Offset    int
}

// RepairRepository define el puerto de persistencia para Repair.
type RepairRepository interface {
	Create(ctx context.Context, r *entity.Repair) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Repair, error)
	ListByCompany(ctx context.Context, companyID int64, f RepairFilter) ([]*entity.Repair, error)
	Update(ctx context.Context, r *entity.Repair) error
	Delete(ctx context.Context, companyID, id int64) error
}
