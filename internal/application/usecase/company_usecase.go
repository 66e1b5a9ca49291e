package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas (tenants).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una nueva empresa con estado active.
func (uc *CompanyUseCase) Create(ctx context.Context, name, taxID, address, phone, email string) (*entity.Company, error) {
	now := time.Now()
	company := &entity.Company{
		Name:      name,
		TaxID:     taxID,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return uc.repo.List(ctx, limit, offset)
}
