package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// PhaseUseCase casos de uso para fases de proyecto. La tenencia se verifica
// contra el proyecto dueño: una fase nunca se resuelve sin pasar por él.
type PhaseUseCase struct {
	repo        repository.PhaseRepository
	projectRepo repository.ProjectRepository
}

// NewPhaseUseCase construye el caso de uso.
func NewPhaseUseCase(repo repository.PhaseRepository, projectRepo repository.ProjectRepository) *PhaseUseCase {
	return &PhaseUseCase{repo: repo, projectRepo: projectRepo}
}

// Create crea una fase dentro de un proyecto de la empresa.
func (uc *PhaseUseCase) Create(ctx context.Context, companyID, projectID int64, in dto.CreatePhaseRequest) (*dto.PhaseResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !validDateRange(in.StartDate, in.EndDate) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	phase := &entity.ProjectPhase{
		ProjectID:       projectID,
		Name:            in.Name,
		Description:     in.Description,
		Status:          status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		PercentComplete: in.PercentComplete,
		SortOrder:       in.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, phase); err != nil {
		return nil, err
	}
	return toPhaseResponse(phase), nil
}

// ListByProject lista las fases de un proyecto ordenadas por SortOrder.
func (uc *PhaseUseCase) ListByProject(ctx context.Context, companyID, projectID int64) (*dto.PhaseListResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PhaseResponse, 0, len(list))
	for _, ph := range list {
		items = append(items, *toPhaseResponse(ph))
	}
	return &dto.PhaseListResponse{Items: items}, nil
}

// GetByID obtiene una fase verificando que su proyecto sea de la empresa.
func (uc *PhaseUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.PhaseResponse, error) {
	phase, err := uc.ownedPhase(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, domain.ErrNotFound
	}
	return toPhaseResponse(phase), nil
}

// Update aplica SOLO los campos presentes en el cuerpo y revalida el rango
// de fechas resultante. Campos omitidos quedan exactamente como estaban.
func (uc *PhaseUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdatePhaseRequest) (*dto.PhaseResponse, error) {
	phase, err := uc.ownedPhase(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		phase.Name = *in.Name
	}
	if in.Description != nil {
		phase.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		phase.Status = *in.Status
	}
	if in.StartDate != nil {
		phase.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		phase.EndDate = in.EndDate
	}
	if !validDateRange(phase.StartDate, phase.EndDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.PercentComplete != nil {
		if *in.PercentComplete < 0 || *in.PercentComplete > 100 {
			return nil, domain.ErrInvalidInput
		}
		phase.PercentComplete = *in.PercentComplete
	}
	if in.SortOrder != nil {
		phase.SortOrder = *in.SortOrder
	}
	phase.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, phase); err != nil {
		return nil, err
	}
	return toPhaseResponse(phase), nil
}

// Delete elimina una fase de un proyecto de la empresa.
func (uc *PhaseUseCase) Delete(ctx context.Context, companyID, id int64) error {
	phase, err := uc.ownedPhase(ctx, companyID, id)
	if err != nil {
		return err
	}
	if phase == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ownedPhase resuelve la fase y verifica tenencia vía su proyecto.
func (uc *PhaseUseCase) ownedPhase(ctx context.Context, companyID, id int64) (*entity.ProjectPhase, error) {
	phase, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, nil
	}
	project, err := uc.projectRepo.GetByID(ctx, companyID, phase.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil // proyecto de otra empresa: se trata como inexistente
	}
	return phase, nil
}

func toPhaseResponse(ph *entity.ProjectPhase) *dto.PhaseResponse {
	if ph == nil {
		return nil
	}
	return &dto.PhaseResponse{
		ID:              ph.ID,
		ProjectID:       ph.ProjectID,
		Name:            ph.Name,
		Description:     ph.Description,
		Status:          ph.Status,
		StartDate:       ph.StartDate,
		EndDate:         ph.EndDate,
		PercentComplete: ph.PercentComplete,
		SortOrder:       ph.SortOrder,
		CreatedAt:       ph.CreatedAt,
		UpdatedAt:       ph.UpdatedAt,
	}
}
