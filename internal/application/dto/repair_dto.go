package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepairRequest entrada para reportar una reparación.
type CreateRepairRequest struct {
	ClientID     int64      `json:"client_id" validate:"required,gt=0"`
	ProjectID    *int64     `json:"project_id"`
	TechnicianID *int64     `json:"technician_id"`
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ReportedDate *time.Time `json:"reported_date"`
}

// UpdateRepairRequest entrada para actualizar una reparación (solo lo enviado).
type UpdateRepairRequest struct {
	TechnicianID  *int64           `json:"technician_id"`
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Priority      *string          `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status        *string          `json:"status" validate:"omitempty,oneof=reported scheduled in_progress completed cancelled"`
	CompletedDate *time.Time       `json:"completed_date"`
	Cost          *decimal.Decimal `json:"cost"`
}

// RepairResponse salida de una reparación.
type RepairResponse struct {
	ID            int64           `json:"id"`
	CompanyID     int64           `json:"company_id"`
	ClientID      int64           `json:"client_id"`
	ProjectID     *int64          `json:"project_id"`
	TechnicianID  *int64          `json:"technician_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Priority      string          `json:"priority"`
	Status        string          `json:"status"`
	ReportedDate  time.Time       `json:"reported_date"`
	CompletedDate *time.Time      `json:"completed_date"`
	Cost          decimal.Decimal `json:"cost"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RepairListResponse lista paginada de reparaciones.
type RepairListResponse struct {
	Items []RepairResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
