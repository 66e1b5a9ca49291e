package entity

import "time"

// Estados y frecuencias válidos para Maintenance.
const (
	MaintenanceScheduled = "scheduled"
	MaintenanceCompleted = "completed"
	MaintenanceSkipped   = "skipped"
	MaintenanceOverdue   = "overdue"

	FrequencyOnce     = "once"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// WaterReadings lecturas de química del agua tomadas durante una visita.
// Campos estructurados de primera clase: nunca se codifican dentro de notas
// de texto libre (el parseo con regex de ese patrón corrompe datos).
type WaterReadings struct {
	PH            *float64 // típico 7.2 - 7.8
	ChlorinePPM   *float64
	AlkalinityPPM *float64
	CyanuricPPM   *float64
}

// HasAny indica si al menos una lectura fue registrada.
func (w WaterReadings) HasAny() bool {
	return w.PH != nil || w.ChlorinePPM != nil || w.AlkalinityPPM != nil || w.CyanuricPPM != nil
}

// Maintenance representa una visita de mantenimiento programada o realizada
// sobre la piscina de un cliente.
type Maintenance struct {
	ID            int64
	CompanyID     int64
	ClientID      int64
	ProjectID     *int64 // opcional: visita ligada a un proyecto
	TechnicianID  *int64 // user id del técnico asignado
	ScheduledDate time.Time
	CompletedDate *time.Time
	Frequency     string // once, weekly, biweekly, monthly
	Status        string // scheduled, completed, skipped, overdue
	Readings      WaterReadings
	FilterCleaned bool
	EquipmentOK   bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NextScheduledDate calcula la fecha de la siguiente visita según la frecuencia.
// Retorna cero para frecuencia "once".
func (m Maintenance) NextScheduledDate() time.Time {
	switch m.Frequency {
	case FrequencyWeekly:
		return m.ScheduledDate.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return m.ScheduledDate.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return m.ScheduledDate.AddDate(0, 1, 0)
	}
	return time.Time{}
}

// ServiceReport informe entregado al cliente tras completar una visita.
type ServiceReport struct {
	ID            int64
	MaintenanceID int64
	Summary       string
	Readings      WaterReadings
	ChemicalsUsed string
	CreatedAt     time.Time
}
