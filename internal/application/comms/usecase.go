package comms

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

// UseCase agrega mensajes de los proveedores de comunicaciones conectados
// y despacha salientes. El sync corre tanto bajo demanda como por cron.
type UseCase struct {
	providerRepo repository.ProviderRepository
	emailRepo    repository.EmailRepository
	client       ProviderClient
	publisher    EventPublisher
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(providerRepo repository.ProviderRepository, emailRepo repository.EmailRepository, client ProviderClient, publisher EventPublisher, log *logger.Logger) *UseCase {
	return &UseCase{providerRepo: providerRepo, emailRepo: emailRepo, client: client, publisher: publisher, log: log}
}

// CreateProvider conecta un proveedor en estado active.
func (uc *UseCase) CreateProvider(ctx context.Context, companyID int64, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	now := time.Now()
	p := &entity.CommunicationProvider{
		CompanyID:      companyID,
		Name:           in.Name,
		Type:           in.Type,
		BaseURL:        in.BaseURL,
		CredentialsRef: in.CredentialsRef,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.providerRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// GetProvider obtiene un proveedor de la empresa.
func (uc *UseCase) GetProvider(ctx context.Context, companyID, id int64) (*dto.ProviderResponse, error) {
	p, err := uc.providerRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(p), nil
}

// ListProviders lista los proveedores conectados de la empresa.
func (uc *UseCase) ListProviders(ctx context.Context, companyID int64) (*dto.ProviderListResponse, error) {
	list, err := uc.providerRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return &dto.ProviderListResponse{Items: items}, nil
}

// UpdateProvider aplica solo los campos presentes.
func (uc *UseCase) UpdateProvider(ctx context.Context, companyID, id int64, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.providerRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.BaseURL != nil {
		p.BaseURL = *in.BaseURL
	}
	if in.CredentialsRef != nil {
		p.CredentialsRef = *in.CredentialsRef
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.providerRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// DeleteProvider desconecta un proveedor. Los mensajes ya agregados se conservan.
func (uc *UseCase) DeleteProvider(ctx context.Context, companyID, id int64) error {
	p, err := uc.providerRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.providerRepo.Delete(ctx, companyID, id)
}

// ListEmails lista los mensajes agregados de la empresa, opcionalmente por
// proveedor (providerID = 0 significa todos).
func (uc *UseCase) ListEmails(ctx context.Context, companyID, providerID int64, limit, offset int) (*dto.EmailListResponse, error) {
	list, err := uc.emailRepo.ListByCompany(ctx, companyID, providerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmailResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmailResponse(e))
	}
	return &dto.EmailListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Send despacha un mensaje saliente por el proveedor indicado, lo persiste
// como outbound y publica el evento al broker.
func (uc *UseCase) Send(ctx context.Context, companyID int64, in dto.SendEmailRequest) (*dto.EmailResponse, error) {
	p, err := uc.providerRepo.GetByID(ctx, companyID, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status != "active" {
		return nil, domain.ErrProviderInactive
	}

	res, err := uc.client.SendMessage(ctx, p.BaseURL, p.CredentialsRef, OutboundMessage{
		To:       in.To,
		Subject:  in.Subject,
		Body:     in.Body,
		ThreadID: in.ThreadID,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &entity.Email{
		CompanyID:         companyID,
		ProviderID:        p.ID,
		ProviderMessageID: res.MessageID,
		Direction:         entity.DirectionOutbound,
		FromAddress:       res.FromAddress,
		ToAddress:         in.To,
		Subject:           in.Subject,
		Body:              in.Body,
		ThreadID:          in.ThreadID,
		SentAt:            now,
		CreatedAt:         now,
	}
	if err := uc.emailRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishMessageSent(ctx, companyID, p.ID, res.MessageID); err != nil {
		// El mensaje ya salió y está persistido; el evento es best effort.
		uc.log.Warn().Err(err).Int64("provider_id", p.ID).Msg("no se pudo publicar el evento de envío")
	}

	return toEmailResponse(e), nil
}

// SyncAll sincroniza los mensajes de todos los proveedores activos. Deduplica
// por id de mensaje del proveedor; un proveedor que falla no corta el resto.
func (uc *UseCase) SyncAll(ctx context.Context) (*dto.SyncResultResponse, error) {
	providers, err := uc.providerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncResultResponse{}
	for _, p := range providers {
		n, err := uc.syncProvider(ctx, p)
		if err != nil {
			uc.log.Error().Err(err).Int64("provider_id", p.ID).Str("provider", p.Name).Msg("falló la sincronización del proveedor")
			result.Failures++
			continue
		}
		result.ProvidersSynced++
		result.NewMessages += n
	}
	return result, nil
}

// SyncCompany sincroniza solo los proveedores activos de una empresa.
func (uc *UseCase) SyncCompany(ctx context.Context, companyID int64) (*dto.SyncResultResponse, error) {
	providers, err := uc.providerRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncResultResponse{}
	for _, p := range providers {
		if p.Status != "active" {
			continue
		}
		n, err := uc.syncProvider(ctx, p)
		if err != nil {
			uc.log.Error().Err(err).Int64("provider_id", p.ID).Str("provider", p.Name).Msg("falló la sincronización del proveedor")
			result.Failures++
			continue
		}
		result.ProvidersSynced++
		result.NewMessages += n
	}
	return result, nil
}

func (uc *UseCase) syncProvider(ctx context.Context, p *entity.CommunicationProvider) (int, error) {
	msgs, err := uc.client.FetchMessages(ctx, p.BaseURL, p.CredentialsRef, p.LastSyncAt)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, m := range msgs {
		exists, err := uc.emailRepo.ExistsByProviderMessageID(ctx, p.ID, m.MessageID)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		direction := m.Direction
		if direction == "" {
			direction = entity.DirectionInbound
		}
		e := &entity.Email{
			CompanyID:         p.CompanyID,
			ProviderID:        p.ID,
			ProviderMessageID: m.MessageID,
			Direction:         direction,
			FromAddress:       m.FromAddress,
			ToAddress:         m.ToAddress,
			Subject:           m.Subject,
			Body:              m.Body,
			ThreadID:          m.ThreadID,
			SentAt:            m.SentAt,
			CreatedAt:         time.Now(),
		}
		if err := uc.emailRepo.Create(ctx, e); err != nil {
			return inserted, err
		}
		inserted++
	}

	now := time.Now()
	if err := uc.providerRepo.SetLastSync(ctx, p.ID, now); err != nil {
		return inserted, err
	}

	if err := uc.publisher.PublishSyncCompleted(ctx, p.ID, inserted); err != nil {
		uc.log.Warn().Err(err).Int64("provider_id", p.ID).Msg("no se pudo publicar el evento de sincronización")
	}
	return inserted, nil
}

func toProviderResponse(p *entity.CommunicationProvider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Name:       p.Name,
		Type:       p.Type,
		BaseURL:    p.BaseURL,
		Status:     p.Status,
		LastSyncAt: p.LastSyncAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toEmailResponse(e *entity.Email) *dto.EmailResponse {
	if e == nil {
		return nil
	}
	return &dto.EmailResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		ProviderID:  e.ProviderID,
		Direction:   e.Direction,
		FromAddress: e.FromAddress,
		ToAddress:   e.ToAddress,
		Subject:     e.Subject,
		Body:        e.Body,
		ThreadID:    e.ThreadID,
		SentAt:      e.SentAt,
		CreatedAt:   e.CreatedAt,
	}
}
