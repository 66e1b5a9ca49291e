package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto.
type CreateProjectRequest struct {
	ClientID        int64           `json:"client_id" validate:"required,gt=0"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Status          string          `json:"status" validate:"omitempty,oneof=planning pending in_progress completed delayed"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	Budget          decimal.Decimal `json:"budget"`
	PercentComplete int             `json:"percent_complete" validate:"min=0,max=100"`
}

// UpdateProjectRequest entrada para actualizar un proyecto (solo lo enviado).
type UpdateProjectRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Status          *string          `json:"status" validate:"omitempty,oneof=planning pending in_progress completed delayed"`
	StartDate       *time.Time       `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	Budget          *decimal.Decimal `json:"budget"`
	PercentComplete *int             `json:"percent_complete" validate:"omitempty,min=0,max=100"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	ClientID        int64           `json:"client_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	Budget          decimal.Decimal `json:"budget"`
	PercentComplete int             `json:"percent_complete"`
	IsArchived      bool            `json:"is_archived"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProjectListResponse lista paginada de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DeletionPreviewResponse conteo de registros relacionados que se
// eliminarían junto con el proyecto. Se muestra antes de confirmar.
type DeletionPreviewResponse struct {
	Phases         int `json:"phases"`
	Documents      int `json:"documents"`
	Repairs        int `json:"repairs"`
	Maintenances   int `json:"maintenances"`
	PurchaseOrders int `json:"purchase_orders"`
}

// ArchiveResponse resultado del toggle de archivado.
type ArchiveResponse struct {
	ID         int64 `json:"id"`
	IsArchived bool  `json:"is_archived"`
}
