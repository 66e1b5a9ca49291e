package repository

import (
	"context"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
