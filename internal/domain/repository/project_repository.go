package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// ProjectFilter filtros para el listado de proyectos.
// Por defecto los archivados quedan fuera; IncludeArchived los reincorpora.
type ProjectFilter struct {
	ClientID        int64 // 0 = todos
	Status          string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Project, error)
	ListByCompany(ctx context.Context, companyID int64, f ProjectFilter) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	SetArchived(ctx context.Context, companyID, id int64, archived bool) error
	// DeletionPreview cuenta los registros relacionados que caerían con el proyecto.
	DeletionPreview(ctx context.Context, companyID, id int64) (*entity.DeletionPreview, error)
	Delete(ctx context.Context, companyID, id int64) error
}
