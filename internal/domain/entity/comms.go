package entity

import "time"

// Tipos y estados válidos para CommunicationProvider.
const (
	ProviderEmail = "email"
	ProviderSMS   = "sms"
	ProviderVoice = "voice"
)

// CommunicationProvider representa una cuenta externa de comunicaciones
// (correo, SMS o voz) conectada a la empresa. Las credenciales no se guardan
// aquí: CredentialsRef apunta al secreto en el gestor externo.
type CommunicationProvider struct {
	ID             int64
	CompanyID      int64
	Name           string
	Type           string // email, sms, voice
	BaseURL        string // endpoint del API del proveedor
	CredentialsRef string
	Status         string // active, inactive, error
	LastSyncAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Direcciones de un mensaje.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Email representa un mensaje agregado desde un proveedor (no solo correo:
// también SMS y transcripciones de voz comparten esta forma).
type Email struct {
	ID                int64
	CompanyID         int64
	ProviderID        int64
	ProviderMessageID string // id del mensaje en el proveedor; dedupe en sync
	Direction         string // inbound, outbound
	FromAddress       string
	ToAddress         string
	Subject           string
	Body              string
	ThreadID          string
	SentAt            time.Time
	CreatedAt         time.Time
}
