package comms_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.ProviderRepository = (*fakeProviderRepo)(nil)
	_ repository.EmailRepository    = (*fakeEmailRepo)(nil)
	_ comms.ProviderClient          = (*fakeProviderClient)(nil)
	_ comms.EventPublisher          = (*fakePublisher)(nil)
)

type fakeProviderRepo struct {
	seq       int64
	providers map[int64]*entity.CommunicationProvider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[int64]*entity.CommunicationProvider)}
}

func (r *fakeProviderRepo) Create(_ context.Context, p *entity.CommunicationProvider) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) GetByID(_ context.Context, companyID, id int64) (*entity.CommunicationProvider, error) {
	p, ok := r.providers[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProviderRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.CommunicationProvider, error) {
	var out []*entity.CommunicationProvider
	for _, p := range r.providers {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProviderRepo) ListActive(_ context.Context) ([]*entity.CommunicationProvider, error) {
	var out []*entity.CommunicationProvider
	for _, p := range r.providers {
		if p.Status == "active" {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProviderRepo) Update(_ context.Context, p *entity.CommunicationProvider) error {
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *fakeProviderRepo) SetLastSync(_ context.Context, id int64, at time.Time) error {
	if p, ok := r.providers[id]; ok {
		p.LastSyncAt = &at
	}
	return nil
}

func (r *fakeProviderRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.providers, id)
	return nil
}

type fakeEmailRepo struct {
	seq    int64
	emails map[int64]*entity.Email
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{emails: make(map[int64]*entity.Email)}
}

func (r *fakeEmailRepo) Create(_ context.Context, e *entity.Email) error {
	r.seq++
	e.ID = r.seq
	cp := *e
	r.emails[e.ID] = &cp
	return nil
}

func (r *fakeEmailRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Email, error) {
	e, ok := r.emails[id]
	if !ok || e.CompanyID != companyID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmailRepo) ListByCompany(_ context.Context, companyID, providerID int64, _, _ int) ([]*entity.Email, error) {
	var out []*entity.Email
	for _, e := range r.emails {
		if e.CompanyID != companyID {
			continue
		}
		if providerID != 0 && e.ProviderID != providerID {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmailRepo) ExistsByProviderMessageID(_ context.Context, providerID int64, providerMessageID string) (bool, error) {
	for _, e := range r.emails {
		if e.ProviderID == providerID && e.ProviderMessageID == providerMessageID {
			return true, nil
		}
	}
	return false, nil
}

// fakeProviderClient devuelve mensajes por baseURL; baseURL en failures falla.
type fakeProviderClient struct {
	messages map[string][]comms.ProviderMessage
	failures map[string]bool
	sent     []comms.OutboundMessage
}

func newFakeProviderClient() *fakeProviderClient {
	return &fakeProviderClient{
		messages: make(map[string][]comms.ProviderMessage),
		failures: make(map[string]bool),
	}
}

func (c *fakeProviderClient) FetchMessages(_ context.Context, baseURL, _ string, _ *time.Time) ([]comms.ProviderMessage, error) {
	if c.failures[baseURL] {
		return nil, errors.New("proveedor caído")
	}
	return c.messages[baseURL], nil
}

func (c *fakeProviderClient) SendMessage(_ context.Context, baseURL, _ string, msg comms.OutboundMessage) (comms.SendResult, error) {
	if c.failures[baseURL] {
		return comms.SendResult{}, errors.New("proveedor caído")
	}
	c.sent = append(c.sent, msg)
	return comms.SendResult{MessageID: "out-1", FromAddress: "soporte@piscinas.test"}, nil
}

type fakePublisher struct {
	sentEvents int
	syncEvents int
}

func (p *fakePublisher) PublishMessageSent(_ context.Context, _, _ int64, _ string) error {
	p.sentEvents++
	return nil
}

func (p *fakePublisher) PublishSyncCompleted(_ context.Context, _ int64, _ int) error {
	p.syncEvents++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildUC(t *testing.T) (*comms.UseCase, *fakeProviderRepo, *fakeEmailRepo, *fakeProviderClient, *fakePublisher) {
	t.Helper()
	providers := newFakeProviderRepo()
	emails := newFakeEmailRepo()
	client := newFakeProviderClient()
	publisher := &fakePublisher{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := comms.NewUseCase(providers, emails, client, publisher, log)
	return uc, providers, emails, client, publisher
}

func seedProvider(t *testing.T, repo *fakeProviderRepo, companyID int64, name, baseURL, status string) *entity.CommunicationProvider {
	t.Helper()
	p := &entity.CommunicationProvider{
		CompanyID:      companyID,
		Name:           name,
		Type:           "email",
		BaseURL:        baseURL,
		CredentialsRef: "secret-ref",
		Status:         status,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func inboundMsg(id, subject string) comms.ProviderMessage {
	return comms.ProviderMessage{
		MessageID:   id,
		Direction:   entity.DirectionInbound,
		FromAddress: "cliente@example.com",
		ToAddress:   "soporte@aquapro.co",
		Subject:     subject,
		Body:        "cuerpo",
		SentAt:      time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización
// ──────────────────────────────────────────────────────────────────────────────

// Sincronizar dos veces no duplica: el dedupe va por id de mensaje del proveedor.
func TestSyncAll_DeduplicaPorMessageID(t *testing.T) {
	uc, providers, emails, client, _ := buildUC(t)
	p := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "active")
	client.messages[p.BaseURL] = []comms.ProviderMessage{
		inboundMsg("msg-1", "Consulta de precio"),
		inboundMsg("msg-2", "Reclamo filtro"),
	}
	ctx := context.Background()

	first, err := uc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.NewMessages)

	second, err := uc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewMessages, "el segundo sync no debe insertar repetidos")
	assert.Len(t, emails.emails, 2)
}

// Un proveedor caído no corta la sincronización de los demás.
func TestSyncAll_ProveedorCaidoNoCortaElResto(t *testing.T) {
	uc, providers, _, client, _ := buildUC(t)
	sano := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "active")
	caido := seedProvider(t, providers, 1, "SMS Twilio", "https://sms.test", "active")
	client.messages[sano.BaseURL] = []comms.ProviderMessage{inboundMsg("msg-1", "Hola")}
	client.failures[caido.BaseURL] = true

	res, err := uc.SyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.ProvidersSynced)
	assert.Equal(t, 1, res.Failures)
	assert.Equal(t, 1, res.NewMessages)
}

// Sync actualiza la marca de última sincronización y publica el evento.
func TestSyncCompany_ActualizaLastSyncYPublica(t *testing.T) {
	uc, providers, _, client, publisher := buildUC(t)
	p := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "active")
	seedProvider(t, providers, 1, "Pausado", "https://off.test", "inactive")
	client.messages[p.BaseURL] = []comms.ProviderMessage{inboundMsg("msg-1", "Hola")}

	res, err := uc.SyncCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ProvidersSynced, "los inactivos no se sincronizan")
	assert.NotNil(t, providers.providers[p.ID].LastSyncAt)
	assert.Equal(t, 1, publisher.syncEvents)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_ProveedorInactivo(t *testing.T) {
	uc, providers, _, client, _ := buildUC(t)
	p := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "inactive")

	_, err := uc.Send(context.Background(), 1, dto.SendEmailRequest{
		ProviderID: p.ID,
		To:         "cliente@example.com",
		Body:       "Su visita queda programada",
	})
	assert.ErrorIs(t, err, domain.ErrProviderInactive)
	assert.Empty(t, client.sent, "no debe despacharse nada por un proveedor inactivo")
}

func TestSend_PersisteComoSalienteYPublica(t *testing.T) {
	uc, providers, emails, client, publisher := buildUC(t)
	p := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "active")

	e, err := uc.Send(context.Background(), 1, dto.SendEmailRequest{
		ProviderID: p.ID,
		To:         "cliente@example.com",
		Subject:    "Confirmación de visita",
		Body:       "Su visita queda programada para el lunes",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOutbound, e.Direction)
	assert.Equal(t, "out-1", emails.emails[e.ID].ProviderMessageID)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "cliente@example.com", client.sent[0].To)
	assert.Equal(t, 1, publisher.sentEvents)

	// El remitente es la cuenta que reporta el proveedor, no el nombre
	// descriptivo del registro ("Gmail soporte").
	assert.Equal(t, "soporte@piscinas.test", emails.emails[e.ID].FromAddress)
}

func TestSend_ProveedorDeOtraEmpresa(t *testing.T) {
	uc, providers, _, _, _ := buildUC(t)
	p := seedProvider(t, providers, 1, "Gmail soporte", "https://mail.test", "active")

	_, err := uc.Send(context.Background(), 99, dto.SendEmailRequest{
		ProviderID: p.ID,
		To:         "cliente@example.com",
		Body:       "hola",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
