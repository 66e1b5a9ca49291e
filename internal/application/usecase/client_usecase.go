package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes del portal.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente con estado active.
func (uc *ClientUseCase) Create(ctx context.Context, companyID int64, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	poolType := in.PoolType
	if poolType == "" {
		poolType = "inground"
	}
	now := time.Now()
	client := &entity.Client{
		CompanyID:      companyID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		ServiceAddress: in.ServiceAddress,
		City:           in.City,
		PoolType:       poolType,
		PoolVolumeL:    in.PoolVolumeL,
		HasHeater:      in.HasHeater,
		HasSaltSystem:  in.HasSaltSystem,
		Status:         "active",
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente de la empresa. Nil si no existe ("Client not found").
func (uc *ClientUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes de la empresa. search aplica búsqueda por nombre
// insensible a mayúsculas y acentos.
func (uc *ClientUseCase) List(ctx context.Context, companyID int64, search string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, NormalizeSearch(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un cliente aplicando solo los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.ServiceAddress != nil {
		client.ServiceAddress = *in.ServiceAddress
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.PoolType != nil {
		client.PoolType = *in.PoolType
	}
	if in.PoolVolumeL != nil {
		client.PoolVolumeL = *in.PoolVolumeL
	}
	if in.HasHeater != nil {
		client.HasHeater = *in.HasHeater
	}
	if in.HasSaltSystem != nil {
		client.HasSaltSystem = *in.HasSaltSystem
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente de la empresa.
func (uc *ClientUseCase) Delete(ctx context.Context, companyID, id int64) error {
	client, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:             c.ID,
		CompanyID:      c.CompanyID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		ServiceAddress: c.ServiceAddress,
		City:           c.City,
		PoolType:       c.PoolType,
		PoolVolumeL:    c.PoolVolumeL,
		HasHeater:      c.HasHeater,
		HasSaltSystem:  c.HasSaltSystem,
		Status:         c.Status,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
