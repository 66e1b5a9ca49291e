package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Project y ProjectPhase.
const (
	StatusPlanning   = "planning"
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDelayed    = "delayed"
)

// ValidProjectStatus indica si s es uno de los estados permitidos.
func ValidProjectStatus(s string) bool {
	switch s {
	case StatusPlanning, StatusPending, StatusInProgress, StatusCompleted, StatusDelayed:
		return true
	}
	return false
}

// Project representa una obra o proyecto de construcción/renovación de piscina.
// Los proyectos archivados se excluyen de los listados por defecto.
type Project struct {
	ID              int64
	CompanyID       int64
	ClientID        int64
	Name            string
	Description     string
	Status          string // ver constantes Status*
	StartDate       *time.Time
	EndDate         *time.Time // debe ser >= StartDate
	Budget          decimal.Decimal
	PercentComplete int // 0..100
	IsArchived      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProjectPhase representa una etapa del proyecto (excavación, plomería, acabados...).
type ProjectPhase struct {
	ID              int64
	ProjectID       int64
	Name            string
	Description     string
	Status          string // mismos estados que Project
	StartDate       *time.Time
	EndDate         *time.Time
	PercentComplete int // 0..100
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProjectDocument representa un archivo asociado al proyecto (planos, fotos, permisos).
// El binario vive en el object store; aquí solo la referencia (ObjectKey).
type ProjectDocument struct {
	ID           int64
	ProjectID    int64
	Title        string
	DocumentType string // plan, photo, permit, contract, other
	FileName     string
	ObjectKey    string
	ContentType  string
	SizeBytes    int64
	UploadedBy   int64 // user id
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeletionPreview resume cuántos registros relacionados se eliminarían
// junto con un proyecto. Se muestra al usuario antes de confirmar el borrado.
type DeletionPreview struct {
	Phases         int
	Documents      int
	Repairs        int
	Maintenances   int
	PurchaseOrders int
}
