package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs de las tablas de negocio/finanzas: gastos, proveedores, órdenes de
// compra, inventario, licencias y seguros. CRUD plano, mismo patrón en todos.

// ── Expenses ──────────────────────────────────────────────────────────────────

type CreateExpenseRequest struct {
	VendorID    *int64          `json:"vendor_id"`
	Category    string          `json:"category" validate:"required,oneof=chemicals fuel payroll equipment insurance other"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        time.Time       `json:"date" validate:"required"`
}

type UpdateExpenseRequest struct {
	VendorID    *int64           `json:"vendor_id"`
	Category    *string          `json:"category" validate:"omitempty,oneof=chemicals fuel payroll equipment insurance other"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
}

type ExpenseResponse struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	VendorID    *int64          `json:"vendor_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Vendors ───────────────────────────────────────────────────────────────────

type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Category    string `json:"category" validate:"omitempty,oneof=chemicals equipment construction services other"`
}

type UpdateVendorRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category" validate:"omitempty,oneof=chemicals equipment construction services other"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type VendorResponse struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Purchase orders ───────────────────────────────────────────────────────────

type CreatePurchaseOrderRequest struct {
	VendorID     int64           `json:"vendor_id" validate:"required,gt=0"`
	ProjectID    *int64          `json:"project_id"`
	OrderNumber  string          `json:"order_number" validate:"required,min=1,max=50"`
	Total        decimal.Decimal `json:"total"`
	OrderDate    *time.Time      `json:"order_date"`
	ExpectedDate *time.Time      `json:"expected_date"`
	Notes        string          `json:"notes"`
}

type UpdatePurchaseOrderRequest struct {
	Status       *string          `json:"status" validate:"omitempty,oneof=draft sent received cancelled"`
	Total        *decimal.Decimal `json:"total"`
	ExpectedDate *time.Time       `json:"expected_date"`
	Notes        *string          `json:"notes"`
}

type PurchaseOrderResponse struct {
	ID           int64           `json:"id"`
	CompanyID    int64           `json:"company_id"`
	VendorID     int64           `json:"vendor_id"`
	ProjectID    *int64          `json:"project_id"`
	OrderNumber  string          `json:"order_number"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	OrderDate    time.Time       `json:"order_date"`
	ExpectedDate *time.Time      `json:"expected_date"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ── Inventory ─────────────────────────────────────────────────────────────────

type CreateInventoryItemRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	ReorderPoint int             `json:"reorder_point" validate:"min=0"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Location     string          `json:"location"`
}

type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity     *int             `json:"quantity" validate:"omitempty,min=0"`
	ReorderPoint *int             `json:"reorder_point" validate:"omitempty,min=0"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	Location     *string          `json:"location"`
}

type InventoryItemResponse struct {
	ID           int64           `json:"id"`
	CompanyID    int64           `json:"company_id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	ReorderPoint int             `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Location     string          `json:"location"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ── Licenses ──────────────────────────────────────────────────────────────────

type CreateLicenseRequest struct {
	Name       string     `json:"name" validate:"required,min=1,max=200"`
	Number     string     `json:"number" validate:"required"`
	Authority  string     `json:"authority"`
	IssueDate  *time.Time `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type UpdateLicenseRequest struct {
	Name       *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Number     *string    `json:"number"`
	Authority  *string    `json:"authority"`
	IssueDate  *time.Time `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type LicenseResponse struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"company_id"`
	Name       string     `json:"name"`
	Number     string     `json:"number"`
	Authority  string     `json:"authority"`
	IssueDate  *time.Time `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type LicenseListResponse struct {
	Items []LicenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Insurance ─────────────────────────────────────────────────────────────────

type CreateInsuranceRequest struct {
	PolicyNumber  string          `json:"policy_number" validate:"required"`
	Carrier       string          `json:"carrier" validate:"required"`
	CoverageType  string          `json:"coverage_type" validate:"omitempty,oneof=liability workers_comp vehicle property"`
	Premium       decimal.Decimal `json:"premium"`
	EffectiveDate *time.Time      `json:"effective_date"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
}

type UpdateInsuranceRequest struct {
	PolicyNumber  *string          `json:"policy_number"`
	Carrier       *string          `json:"carrier"`
	CoverageType  *string          `json:"coverage_type" validate:"omitempty,oneof=liability workers_comp vehicle property"`
	Premium       *decimal.Decimal `json:"premium"`
	EffectiveDate *time.Time       `json:"effective_date"`
	ExpiryDate    *time.Time       `json:"expiry_date"`
}

type InsuranceResponse struct {
	ID            int64           `json:"id"`
	CompanyID     int64           `json:"company_id"`
	PolicyNumber  string          `json:"policy_number"`
	Carrier       string          `json:"carrier"`
	CoverageType  string          `json:"coverage_type"`
	Premium       decimal.Decimal `json:"premium"`
	EffectiveDate *time.Time      `json:"effective_date"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InsuranceListResponse struct {
	Items []InsuranceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
