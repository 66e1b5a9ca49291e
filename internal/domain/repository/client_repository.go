package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Search recibe el término ya normalizado (minúsculas, sin acentos).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Client, error)
	ListByCompany(ctx context.Context, companyID int64, search string, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, companyID, id int64) error
}
