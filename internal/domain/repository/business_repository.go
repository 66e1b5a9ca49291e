package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// Puertos de persistencia para las tablas de negocio/finanzas.
// Todas las operaciones van acotadas por companyID (aislamiento por tenant).

// ExpenseRepository persistencia de gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Expense, error)
	ListByCompany(ctx context.Context, companyID int64, category string, limit, offset int) ([]*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, companyID, id int64) error
}

// VendorRepository persistencia de proveedores.
type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Vendor, error)
	ListByCompany(ctx context.Context, companyID int64, search string, limit, offset int) ([]*entity.Vendor, error)
	Update(ctx context.Context, v *entity.Vendor) error
	Delete(ctx context.Context, companyID, id int64) error
}

// PurchaseOrderRepository persistencia de órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.PurchaseOrder, error)
	GetByOrderNumber(ctx context.Context, companyID int64, orderNumber string) (*entity.PurchaseOrder, error)
	ListByCompany(ctx context.Context, companyID int64, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	Delete(ctx context.Context, companyID, id int64) error
}

// InventoryItemRepository persistencia del inventario de insumos.
type InventoryItemRepository interface {
	Create(ctx context.Context, it *entity.InventoryItem) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.InventoryItem, error)
	GetByCompanyAndSKU(ctx context.Context, companyID int64, sku string) (*entity.InventoryItem, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, it *entity.InventoryItem) error
	Delete(ctx context.Context, companyID, id int64) error
}

// LicenseRepository persistencia de licencias y permisos.
type LicenseRepository interface {
	Create(ctx context.Context, l *entity.License) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.License, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.License, error)
	ListExpiring(ctx context.Context, companyID int64, before time.Time) ([]*entity.License, error)
	Update(ctx context.Context, l *entity.License) error
	Delete(ctx context.Context, companyID, id int64) error
}

// InsuranceRepository persistencia de pólizas de seguro.
type InsuranceRepository interface {
	Create(ctx context.Context, p *entity.Insurance) error
	GetByID(ctx context.Context, companyID, id int64) (*entity.Insurance, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.Insurance, error)
	ListExpiring(ctx context.Context, companyID int64, before time.Time) ([]*entity.Insurance, error)
	Update(ctx context.Context, p *entity.Insurance) error
	Delete(ctx context.Context, companyID, id int64) error
}
