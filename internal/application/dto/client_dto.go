package dto

import "time"

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	ServiceAddress string `json:"service_address"`
	City           string `json:"city"`
	PoolType       string `json:"pool_type" validate:"omitempty,oneof=inground above_ground spa commercial"`
	PoolVolumeL    int    `json:"pool_volume_l" validate:"min=0"`
	HasHeater      bool   `json:"has_heater"`
	HasSaltSystem  bool   `json:"has_salt_system"`
	Notes          string `json:"notes"`
}

// UpdateClientRequest entrada para actualizar un cliente (solo lo enviado).
type UpdateClientRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	ServiceAddress *string `json:"service_address"`
	City           *string `json:"city"`
	PoolType       *string `json:"pool_type" validate:"omitempty,oneof=inground above_ground spa commercial"`
	PoolVolumeL    *int    `json:"pool_volume_l" validate:"omitempty,min=0"`
	HasHeater      *bool   `json:"has_heater"`
	HasSaltSystem  *bool   `json:"has_salt_system"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes          *string `json:"notes"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"company_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ServiceAddress string    `json:"service_address"`
	City           string    `json:"city"`
	PoolType       string    `json:"pool_type"`
	PoolVolumeL    int       `json:"pool_volume_l"`
	HasHeater      bool      `json:"has_heater"`
	HasSaltSystem  bool      `json:"has_salt_system"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
