package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// RepairUseCase casos de uso para reparaciones de equipo y estructura.
type RepairUseCase struct {
	repo       repository.RepairRepository
	clientRepo repository.ClientRepository
}

// NewRepairUseCase construye el caso de uso.
func NewRepairUseCase(repo repository.RepairRepository, clientRepo repository.ClientRepository) *RepairUseCase {
	return &RepairUseCase{repo: repo, clientRepo: clientRepo}
}

// Create reporta una reparación para un cliente de la empresa.
func (uc *RepairUseCase) Create(ctx context.Context, companyID int64, in dto.CreateRepairRequest) (*dto.RepairResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	reported := time.Now()
	if in.ReportedDate != nil {
		reported = *in.ReportedDate
	}
	now := time.Now()
	r := &entity.Repair{
		CompanyID:    companyID,
		ClientID:     in.ClientID,
		ProjectID:    in.ProjectID,
		TechnicianID: in.TechnicianID,
		Title:        in.Title,
		Description:  in.Description,
		Priority:     priority,
		Status:       entity.RepairReported,
		ReportedDate: reported,
		Cost:         decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRepairResponse(r), nil
}

// GetByID obtiene una reparación de la empresa.
func (uc *RepairUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.RepairResponse, error) {
	r, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toRepairResponse(r), nil
}

// List lista reparaciones de la empresa con filtros.
func (uc *RepairUseCase) List(ctx context.Context, companyID int64, f repository.RepairFilter) (*dto.RepairListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRepairResponse(r))
	}
	return &dto.RepairListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update aplica solo los campos presentes. Completar fija la fecha si falta.
func (uc *RepairUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateRepairRequest) (*dto.RepairResponse, error) {
	r, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.TechnicianID != nil {
		r.TechnicianID = in.TechnicianID
	}
	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Priority != nil {
		r.Priority = *in.Priority
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
	if in.CompletedDate != nil {
		r.CompletedDate = in.CompletedDate
	}
	if in.Cost != nil {
		r.Cost = *in.Cost
	}
	if r.Status == entity.RepairCompleted && r.CompletedDate == nil {
		now := time.Now()
		r.CompletedDate = &now
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRepairResponse(r), nil
}

// Delete elimina una reparación de la empresa.
func (uc *RepairUseCase) Delete(ctx context.Context, companyID, id int64) error {
	r, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func toRepairResponse(r *entity.Repair) *dto.RepairResponse {
	if r == nil {
		return nil
	}
	return &dto.RepairResponse{
		ID:            r.ID,
		CompanyID:     r.CompanyID,
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		TechnicianID:  r.TechnicianID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		Status:        r.Status,
		ReportedDate:  r.ReportedDate,
		CompletedDate: r.CompletedDate,
		Cost:          r.Cost,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
