package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso CRUD para gastos y proveedores.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	vendorRepo  repository.VendorRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, vendorRepo repository.VendorRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, vendorRepo: vendorRepo}
}

// CreateExpense registra un gasto. Si trae proveedor, debe ser de la empresa.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, companyID int64, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.VendorID != nil {
		vendor, err := uc.vendorRepo.GetByID(ctx, companyID, *in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	e := &entity.Expense{
		CompanyID:   companyID,
		VendorID:    in.VendorID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetExpense obtiene un gasto de la empresa.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, companyID, id int64) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(e), nil
}

// ListExpenses lista gastos, opcionalmente por categoría.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, companyID int64, category string, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.expenseRepo.ListByCompany(ctx, companyID, category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateExpense aplica solo los campos presentes.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, companyID, id int64, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.VendorID != nil {
		e.VendorID = in.VendorID
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	e.UpdatedAt = time.Now()
	if err := uc.expenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// DeleteExpense elimina un gasto de la empresa.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, companyID, id int64) error {
	e, err := uc.expenseRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(ctx, companyID, id)
}

// CreateVendor registra un proveedor con estado active.
func (uc *ExpenseUseCase) CreateVendor(ctx context.Context, companyID int64, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	category := in.Category
	if category == "" {
		category = "other"
	}
	now := time.Now()
	v := &entity.Vendor{
		CompanyID:   companyID,
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Category:    category,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.vendorRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

// GetVendor obtiene un proveedor de la empresa.
func (uc *ExpenseUseCase) GetVendor(ctx context.Context, companyID, id int64) (*dto.VendorResponse, error) {
	v, err := uc.vendorRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(v), nil
}

// ListVendors lista proveedores con búsqueda por nombre normalizada.
func (uc *ExpenseUseCase) ListVendors(ctx context.Context, companyID int64, search string, limit, offset int) (*dto.VendorListResponse, error) {
	list, err := uc.vendorRepo.ListByCompany(ctx, companyID, NormalizeSearch(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateVendor aplica solo los campos presentes.
func (uc *ExpenseUseCase) UpdateVendor(ctx context.Context, companyID, id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	v, err := uc.vendorRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.ContactName != nil {
		v.ContactName = *in.ContactName
	}
	if in.Email != nil {
		v.Email = *in.Email
	}
	if in.Phone != nil {
		v.Phone = *in.Phone
	}
	if in.Category != nil {
		v.Category = *in.Category
	}
	if in.Status != nil {
		v.Status = *in.Status
	}
	v.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

// DeleteVendor elimina un proveedor de la empresa.
func (uc *ExpenseUseCase) DeleteVendor(ctx context.Context, companyID, id int64) error {
	v, err := uc.vendorRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.vendorRepo.Delete(ctx, companyID, id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		VendorID:    e.VendorID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		Category:    v.Category,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
