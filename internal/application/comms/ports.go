package comms

import (
	"context"
	"time"
)

// ProviderMessage mensaje crudo tal como lo devuelve el API de un proveedor.
type ProviderMessage struct {
	MessageID   string
	Direction   string
	FromAddress string
	ToAddress   string
	Subject     string
	Body        string
	ThreadID    string
	SentAt      time.Time
}

// OutboundMessage mensaje a despachar por un proveedor.
type OutboundMessage struct {
	To       string
	Subject  string
	Body     string
	ThreadID string
}

// SendResult respuesta del proveedor a un envío: el id que asignó al mensaje
// y la dirección de la cuenta desde la que efectivamente salió.
type SendResult struct {
	MessageID   string
	FromAddress string
}

// ProviderClient cliente HTTP contra el API externo de un proveedor.
// baseURL y credentialsRef vienen del registro del proveedor.
type ProviderClient interface {
	FetchMessages(ctx context.Context, baseURL, credentialsRef string, since *time.Time) ([]ProviderMessage, error)
	SendMessage(ctx context.Context, baseURL, credentialsRef string, msg OutboundMessage) (SendResult, error)
}

// EventPublisher publica eventos de mensajería al broker para consumidores
// downstream (notificaciones, auditoría).
type EventPublisher interface {
	PublishMessageSent(ctx context.Context, companyID, providerID int64, providerMessageID string) error
	PublishSyncCompleted(ctx context.Context, providerID int64, newMessages int) error
}
