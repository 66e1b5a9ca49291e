package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para ProjectDocument.
// documentType vacío o "all" lista todos los tipos.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.ProjectDocument) error
	GetByID(ctx context.Context, id int64) (*entity.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID int64, documentType string) ([]*entity.ProjectDocument, error)
	Update(ctx context.Context, doc *entity.ProjectDocument) error
	Delete(ctx context.Context, id int64) error
}
