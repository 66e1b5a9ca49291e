// Package comms implementa el cliente HTTP contra los APIs externos de
// proveedores de mensajería (correo y SMS unificados bajo el mismo contrato).
package comms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/comms"
)

var _ comms.ProviderClient = (*HTTPProviderClient)(nil)

// HTTPProviderClient habla JSON contra el API de cada proveedor registrado.
// credentialsRef se envía como token Bearer; la URL base viene del registro
// del proveedor, por lo que un mismo cliente sirve para todos.
type HTTPProviderClient struct {
	httpClient *http.Client
}

// NewHTTPProviderClient construye el cliente con un timeout de red de 30 s.
func NewHTTPProviderClient() *HTTPProviderClient {
	return &HTTPProviderClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ── Estructuras del protocolo ─────────────────────────────────────────────────

type providerMessagePayload struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	ThreadID  string    `json:"thread_id"`
	SentAt    time.Time `json:"sent_at"`
}

type fetchMessagesResponse struct {
	Messages []providerMessagePayload `json:"messages"`
}

type sendMessageRequest struct {
	To       string `json:"to"`
	Subject  string `json:"subject,omitempty"`
	Body     string `json:"body"`
	ThreadID string `json:"thread_id,omitempty"`
}

type sendMessageResponse struct {
	MessageID string `json:"message_id"`
	From      string `json:"from"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// FetchMessages trae los mensajes del proveedor posteriores a since
// (todos si since es nil).
func (c *HTTPProviderClient) FetchMessages(ctx context.Context, baseURL, credentialsRef string, since *time.Time) ([]comms.ProviderMessage, error) {
	endpoint := baseURL + "/messages"
	if since != nil {
		endpoint += "?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("proveedor: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credentialsRef)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("proveedor: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("proveedor: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20)) // max 8 MB
	if err != nil {
		return nil, fmt.Errorf("proveedor: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proveedor: status %d al listar mensajes: %s", resp.StatusCode, truncate(rawBody))
	}

	var payload fetchMessagesResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("proveedor: parsear respuesta: %w", err)
	}

	out := make([]comms.ProviderMessage, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		out = append(out, comms.ProviderMessage{
			MessageID:   m.ID,
			Direction:   m.Direction,
			FromAddress: m.From,
			ToAddress:   m.To,
			Subject:     m.Subject,
			Body:        m.Body,
			ThreadID:    m.ThreadID,
			SentAt:      m.SentAt,
		})
	}
	return out, nil
}

// SendMessage despacha un mensaje por el proveedor. Devuelve el ID que éste
// asigna y la cuenta desde la que salió el mensaje.
func (c *HTTPProviderClient) SendMessage(ctx context.Context, baseURL, credentialsRef string, msg comms.OutboundMessage) (comms.SendResult, error) {
	body, err := json.Marshal(sendMessageRequest{
		To:       msg.To,
		Subject:  msg.Subject,
		Body:     msg.Body,
		ThreadID: msg.ThreadID,
	})
	if err != nil {
		return comms.SendResult{}, fmt.Errorf("proveedor: serializar mensaje: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return comms.SendResult{}, fmt.Errorf("proveedor: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credentialsRef)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return comms.SendResult{}, fmt.Errorf("proveedor: timeout o cancelación: %w", ctx.Err())
		}
		return comms.SendResult{}, fmt.Errorf("proveedor: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return comms.SendResult{}, fmt.Errorf("proveedor: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return comms.SendResult{}, fmt.Errorf("proveedor: status %d al enviar mensaje: %s", resp.StatusCode, truncate(rawBody))
	}

	var payload sendMessageResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return comms.SendResult{}, fmt.Errorf("proveedor: parsear respuesta: %w", err)
	}
	if payload.MessageID == "" {
		return comms.SendResult{}, fmt.Errorf("proveedor: respuesta sin message_id: %s", truncate(rawBody))
	}
	return comms.SendResult{MessageID: payload.MessageID, FromAddress: payload.From}, nil
}

// truncate recorta cuerpos largos para los mensajes de error.
func truncate(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
