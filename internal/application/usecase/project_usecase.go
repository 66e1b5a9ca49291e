package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ProjectUseCase casos de uso para proyectos de construcción/renovación.
// El borrado pasa por un preview de conteos relacionados; el archivado es un
// toggle que saca el proyecto de los listados por defecto sin destruir nada.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

// validDateRange verifica end >= start cuando ambas fechas existen.
func validDateRange(start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !end.Before(*start)
}

// Create crea un proyecto para un cliente de la empresa. La fecha fin no
// puede ser anterior a la de inicio.
func (uc *ProjectUseCase) Create(ctx context.Context, companyID int64, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, companyID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !validDateRange(in.StartDate, in.EndDate) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPlanning
	}
	if !entity.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		CompanyID:       companyID,
		ClientID:        in.ClientID,
		Name:            in.Name,
		Description:     in.Description,
		Status:          status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Budget:          in.Budget,
		PercentComplete: in.PercentComplete,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto de la empresa.
func (uc *ProjectUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List lista proyectos de la empresa. Los archivados quedan fuera salvo que
// el filtro pida incluirlos explícitamente.
func (uc *ProjectUseCase) List(ctx context.Context, companyID int64, f repository.ProjectFilter) (*dto.ProjectListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza un proyecto aplicando solo los campos presentes.
// Se revalida el rango de fechas con los valores resultantes.
func (uc *ProjectUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if !validDateRange(project.StartDate, project.EndDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}
	if in.PercentComplete != nil {
		if *in.PercentComplete < 0 || *in.PercentComplete > 100 {
			return nil, domain.ErrInvalidInput
		}
		project.PercentComplete = *in.PercentComplete
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// ToggleArchive invierte el estado de archivado y lo retorna.
func (uc *ProjectUseCase) ToggleArchive(ctx context.Context, companyID, id int64) (*dto.ArchiveResponse, error) {
	project, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	archived := !project.IsArchived
	if err := uc.repo.SetArchived(ctx, companyID, id, archived); err != nil {
		return nil, err
	}
	return &dto.ArchiveResponse{ID: id, IsArchived: archived}, nil
}

// DeletionPreview cuenta los registros relacionados antes de confirmar un borrado.
func (uc *ProjectUseCase) DeletionPreview(ctx context.Context, companyID, id int64) (*dto.DeletionPreviewResponse, error) {
	project, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	preview, err := uc.repo.DeletionPreview(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeletionPreviewResponse{
		Phases:         preview.Phases,
		Documents:      preview.Documents,
		Repairs:        preview.Repairs,
		Maintenances:   preview.Maintenances,
		PurchaseOrders: preview.PurchaseOrders,
	}, nil
}

// Delete elimina el proyecto y sus registros relacionados (cascada en DB).
func (uc *ProjectUseCase) Delete(ctx context.Context, companyID, id int64) error {
	project, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		ClientID:        p.ClientID,
		Name:            p.Name,
		Description:     p.Description,
		Status:          p.Status,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Budget:          p.Budget,
		PercentComplete: p.PercentComplete,
		IsArchived:      p.IsArchived,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
