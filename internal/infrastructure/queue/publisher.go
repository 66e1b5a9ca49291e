// Package queue publica eventos de comunicaciones en RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/Piscinas-api/internal/application/comms"
	"github.com/jhoicas/Piscinas-api/pkg/config"
)

const (
	routingMessageSent   = "comms.message.sent"
	routingSyncCompleted = "comms.sync.completed"
)

var _ comms.EventPublisher = (*Publisher)(nil)

// Publisher adaptador de comms.EventPublisher sobre un exchange topic de RabbitMQ.
// Los mensajes se publican persistentes; los fallos los decide ignorar el caller.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher abre la conexión y declara el exchange (idempotente, durable).
func NewPublisher(cfg config.QueueConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("conectar a rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declarar exchange %s: %w", cfg.Exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

type messageSentEvent struct {
	CompanyID         int64     `json:"company_id"`
	ProviderID        int64     `json:"provider_id"`
	ProviderMessageID string    `json:"provider_message_id"`
	SentAt            time.Time `json:"sent_at"`
}

type syncCompletedEvent struct {
	ProviderID  int64     `json:"provider_id"`
	NewMessages int       `json:"new_messages"`
	CompletedAt time.Time `json:"completed_at"`
}

// PublishMessageSent notifica que un mensaje saliente fue aceptado por el proveedor.
func (p *Publisher) PublishMessageSent(ctx context.Context, companyID, providerID int64, providerMessageID string) error {
	return p.publish(ctx, routingMessageSent, messageSentEvent{
		CompanyID:         companyID,
		ProviderID:        providerID,
		ProviderMessageID: providerMessageID,
		SentAt:            time.Now().UTC(),
	})
}

// PublishSyncCompleted notifica el fin de una sincronización de proveedor.
func (p *Publisher) PublishSyncCompleted(ctx context.Context, providerID int64, newMessages int) error {
	return p.publish(ctx, routingSyncCompleted, syncCompletedEvent{
		ProviderID:  providerID,
		NewMessages: newMessages,
		CompletedAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", routingKey, err)
	}
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publicar %s: %w", routingKey, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	_ = p.ch.Close()
	return p.conn.Close()
}

// Noop publisher nulo para entornos sin broker.
type Noop struct{}

var _ comms.EventPublisher = Noop{}

func (Noop) PublishMessageSent(context.Context, int64, int64, string) error { return nil }
func (Noop) PublishSyncCompleted(context.Context, int64, int) error         { return nil }
