package dto

import "time"

// CreateProviderRequest entrada para conectar un proveedor de comunicaciones.
type CreateProviderRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Type           string `json:"type" validate:"required,oneof=email sms voice"`
	BaseURL        string `json:"base_url" validate:"required,url"`
	CredentialsRef string `json:"credentials_ref" validate:"required"`
}

// UpdateProviderRequest entrada para actualizar un proveedor (solo lo enviado).
type UpdateProviderRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	BaseURL        *string `json:"base_url" validate:"omitempty,url"`
	CredentialsRef *string `json:"credentials_ref"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive error"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"company_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	BaseURL    string     `json:"base_url"`
	Status     string     `json:"status"`
	LastSyncAt *time.Time `json:"last_sync_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ProviderListResponse proveedores conectados de la empresa.
type ProviderListResponse struct {
	Items []ProviderResponse `json:"items"`
}

// EmailResponse salida de un mensaje agregado.
type EmailResponse struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	ProviderID  int64     `json:"provider_id"`
	Direction   string    `json:"direction"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	ThreadID    string    `json:"thread_id"`
	SentAt      time.Time `json:"sent_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmailListResponse lista paginada de mensajes.
type EmailListResponse struct {
	Items []EmailResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// SendEmailRequest entrada para enviar un mensaje saliente.
type SendEmailRequest struct {
	ProviderID int64  `json:"provider_id" validate:"required,gt=0"`
	To         string `json:"to" validate:"required"`
	Subject    string `json:"subject"`
	Body       string `json:"body" validate:"required"`
	ThreadID   string `json:"thread_id"`
}

// SyncResultResponse resultado de una sincronización de mensajes.
type SyncResultResponse struct {
	ProvidersSynced int `json:"providers_synced"`
	NewMessages     int `json:"new_messages"`
	Failures        int `json:"failures"`
}
