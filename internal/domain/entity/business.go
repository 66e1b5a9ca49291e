package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo de la empresa.
type Expense struct {
	ID          int64
	CompanyID   int64
	VendorID    *int64
	Category    string // chemicals, fuel, payroll, equipment, insurance, other
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Vendor representa un proveedor de insumos o servicios.
type Vendor struct {
	ID           int64
	CompanyID    int64
	Name         string
	ContactName  string
	Email        string
	Phone        string
	Category     string // chemicals, equipment, construction, services, other
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estados válidos para PurchaseOrder.
const (
	POStatusDraft     = "draft"
	POStatusSent      = "sent"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID           int64
	CompanyID    int64
	VendorID     int64
	ProjectID    *int64 // opcional: compra para una obra concreta
	OrderNumber  string // único por empresa
	Status       string // draft, sent, received, cancelled
	Total        decimal.Decimal
	OrderDate    time.Time
	ExpectedDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryItem representa un ítem del inventario de insumos (químicos, repuestos).
type InventoryItem struct {
	ID           int64
	CompanyID    int64
	SKU          string // único por empresa
	Name         string
	Quantity     int
	ReorderPoint int
	UnitCost     decimal.Decimal
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// License representa una licencia o permiso de operación de la empresa.
type License struct {
	ID         int64
	CompanyID  int64
	Name       string
	Number     string
	Authority  string
	IssueDate  *time.Time
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Insurance representa una póliza de seguro vigente de la empresa.
type Insurance struct {
	ID            int64
	CompanyID     int64
	PolicyNumber  string
	Carrier       string
	CoverageType  string // liability, workers_comp, vehicle, property
	Premium       decimal.Decimal
	EffectiveDate *time.Time
	ExpiryDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
