package dto

import "time"

// CreatePhaseRequest entrada para crear una fase de proyecto.
type CreatePhaseRequest struct {
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Description     string     `json:"description"`
	Status          string     `json:"status" validate:"omitempty,oneof=planning pending in_progress completed delayed"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	PercentComplete int        `json:"percent_complete" validate:"min=0,max=100"`
	SortOrder       int        `json:"sort_order"`
}

// UpdatePhaseRequest entrada para actualizar una fase. Solo los campos
// presentes en el cuerpo se aplican; el resto queda intacto.
type UpdatePhaseRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status" validate:"omitempty,oneof=planning pending in_progress completed delayed"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	PercentComplete *int       `json:"percent_complete" validate:"omitempty,min=0,max=100"`
	SortOrder       *int       `json:"sort_order"`
}

// PhaseResponse salida de una fase.
type PhaseResponse struct {
	ID              int64      `json:"id"`
	ProjectID       int64      `json:"project_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	PercentComplete int        `json:"percent_complete"`
	SortOrder       int        `json:"sort_order"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PhaseListResponse fases de un proyecto ordenadas por SortOrder.
type PhaseListResponse struct {
	Items []PhaseResponse `json:"items"`
}
