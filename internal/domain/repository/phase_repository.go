package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// PhaseRepository define el puerto de persistencia para ProjectPhase.
// Las fases se consultan siempre vía su proyecto (la tenencia se valida ahí).
type PhaseRepository interface {
	Create(ctx context.Context, phase *entity.ProjectPhase) error
	GetByID(ctx context.Context, id int64) (*entity.ProjectPhase, error)
	ListByProject(ctx context.Context, projectID int64) ([]*entity.ProjectPhase, error)
	Update(ctx context.Context, phase *entity.ProjectPhase) error
	Delete(ctx context.Context, id int64) error
}
