package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// ProviderRepository persistencia de proveedores de comunicaciones.
type ProviderRepository interface {
	Create(ctx context.Context, p *entity.CommunicationProvider) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.CommunicationProvider, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.CommunicationProvider, error)
	ListActive(ctx context.Context) ([]*entity.CommunicationProvider, error)
	Update(ctx context.Context, p *entity.CommunicationProvider) error
	SetLastSync(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, companyID, id int64) error
}

// EmailRepository persistencia de mensajes agregados.
// ExistsByProviderMessageID soporta el dedupe durante la sincronización.
type EmailRepository interface {
	Create(ctx context.Context, e *entity.Email) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Email, error)
	ListByCompany(ctx context.Context, companyID, providerID int64, limit, offset int) ([]*entity.Email, error)
	ExistsByProviderMessageID(ctx context.Context, providerID int64, providerMessageID string) (bool, error)
}
