package dto

import "time"

// WaterReadingsDTO lecturas de química del agua. Campos estructurados:
// reemplazan la vieja práctica de incrustarlas en el campo de notas.
type WaterReadingsDTO struct {
	PH            *float64 `json:"ph" validate:"omitempty,gte=0,lte=14"`
	ChlorinePPM   *float64 `json:"chlorine_ppm" validate:"omitempty,gte=0"`
	AlkalinityPPM *float64 `json:"alkalinity_ppm" validate:"omitempty,gte=0"`
	CyanuricPPM   *float64 `json:"cyanuric_ppm" validate:"omitempty,gte=0"`
}

// CreateMaintenanceRequest entrada para programar una visita.
type CreateMaintenanceRequest struct {
	ClientID      int64      `json:"client_id" validate:"required,gt=0"`
	ProjectID     *int64     `json:"project_id"`
	TechnicianID  *int64     `json:"technician_id"`
	ScheduledDate time.Time  `json:"scheduled_date" validate:"required"`
	Frequency     string     `json:"frequency" validate:"omitempty,oneof=once weekly biweekly monthly"`
	Notes         string     `json:"notes"`
}

// UpdateMaintenanceRequest entrada para actualizar una visita (solo lo enviado).
// Completar una visita: status=completed + lecturas + banderas de inspección.
type UpdateMaintenanceRequest struct {
	TechnicianID  *int64            `json:"technician_id"`
	ScheduledDate *time.Time        `json:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date"`
	Frequency     *string           `json:"frequency" validate:"omitempty,oneof=once weekly biweekly monthly"`
	Status        *string           `json:"status" validate:"omitempty,oneof=scheduled completed skipped overdue"`
	Readings      *WaterReadingsDTO `json:"readings"`
	FilterCleaned *bool             `json:"filter_cleaned"`
	EquipmentOK   *bool             `json:"equipment_ok"`
	Notes         *string           `json:"notes"`
}

// MaintenanceResponse salida de una visita.
type MaintenanceResponse struct {
	ID            int64            `json:"id"`
	CompanyID     int64            `json:"company_id"`
	ClientID      int64            `json:"client_id"`
	ProjectID     *int64           `json:"project_id"`
	TechnicianID  *int64           `json:"technician_id"`
	ScheduledDate time.Time        `json:"scheduled_date"`
	CompletedDate *time.Time       `json:"completed_date"`
	Frequency     string           `json:"frequency"`
	Status        string           `json:"status"`
	Readings      WaterReadingsDTO `json:"readings"`
	FilterCleaned bool             `json:"filter_cleaned"`
	EquipmentOK   bool             `json:"equipment_ok"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// MaintenanceListResponse lista paginada de visitas.
type MaintenanceListResponse struct {
	Items []MaintenanceResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ServiceReportResponse informe de servicio de una visita completada.
type ServiceReportResponse struct {
	ID            int64            `json:"id"`
	MaintenanceID int64            `json:"maintenance_id"`
	Summary       string           `json:"summary"`
	Readings      WaterReadingsDTO `json:"readings"`
	ChemicalsUsed string           `json:"chemicals_used"`
	CreatedAt     time.Time        `json:"created_at"`
}
