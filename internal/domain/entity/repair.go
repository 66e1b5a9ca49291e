package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades y estados válidos para Repair.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	RepairReported   = "reported"
	RepairScheduled  = "scheduled"
	RepairInProgress = "in_progress"
	RepairCompleted  = "completed"
	RepairCancelled  = "cancelled"
)

// Repair representa una reparación reportada sobre el equipo o la estructura
// de la piscina de un cliente (bomba, filtro, calentador, fugas...).
type Repair struct {
	ID            int64
	CompanyID     int64
	ClientID      int64
	ProjectID     *int64 // opcional: reparación dentro de un proyecto
	TechnicianID  *int64
	Title         string
	Description   string
	Priority      string // low, medium, high, urgent
	Status        string // reported, scheduled, in_progress, completed, cancelled
	ReportedDate  time.Time
	CompletedDate *time.Time
	Cost          decimal.Decimal // costo facturado al cliente
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
