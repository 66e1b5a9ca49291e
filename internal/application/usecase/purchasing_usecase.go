package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// PurchasingUseCase casos de uso de órdenes de compra e inventario de insumos.
type PurchasingUseCase struct {
	poRepo        repository.PurchaseOrderRepository
	inventoryRepo repository.InventoryItemRepository
	vendorRepo    repository.VendorRepository
}

// NewPurchasingUseCase construye el caso de uso.
func NewPurchasingUseCase(poRepo repository.PurchaseOrderRepository, inventoryRepo repository.InventoryItemRepository, vendorRepo repository.VendorRepository) *PurchasingUseCase {
	return &PurchasingUseCase{poRepo: poRepo, inventoryRepo: inventoryRepo, vendorRepo: vendorRepo}
}

// CreatePurchaseOrder registra una orden en estado draft. El número de orden
// es único por empresa.
func (uc *PurchasingUseCase) CreatePurchaseOrder(ctx context.Context, companyID int64, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, companyID, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.poRepo.GetByOrderNumber(ctx, companyID, in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	po := &entity.PurchaseOrder{
		CompanyID:    companyID,
		VendorID:     in.VendorID,
		ProjectID:    in.ProjectID,
		OrderNumber:  in.OrderNumber,
		Status:       entity.POStatusDraft,
		Total:        in.Total,
		OrderDate:    orderDate,
		ExpectedDate: in.ExpectedDate,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// GetPurchaseOrder obtiene una orden de la empresa.
func (uc *PurchasingUseCase) GetPurchaseOrder(ctx context.Context, companyID, id int64) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseOrderResponse(po), nil
}

// ListPurchaseOrders lista órdenes, opcionalmente por estado.
func (uc *PurchasingUseCase) ListPurchaseOrders(ctx context.Context, companyID int64, status string, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.poRepo.ListByCompany(ctx, companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toPurchaseOrderResponse(po))
	}
	return &dto.PurchaseOrderListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdatePurchaseOrder aplica solo los campos presentes. Una orden cancelada
// no admite más cambios.
func (uc *PurchasingUseCase) UpdatePurchaseOrder(ctx context.Context, companyID, id int64, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.poRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if po.Status == entity.POStatusCancelled {
		return nil, domain.ErrConflict
	}
	if in.Status != nil {
		po.Status = *in.Status
	}
	if in.Total != nil {
		po.Total = *in.Total
	}
	if in.ExpectedDate != nil {
		po.ExpectedDate = in.ExpectedDate
	}
	if in.Notes != nil {
		po.Notes = *in.Notes
	}
	po.UpdatedAt = time.Now()
	if err := uc.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// DeletePurchaseOrder elimina una orden de la empresa.
func (uc *PurchasingUseCase) DeletePurchaseOrder(ctx context.Context, companyID, id int64) error {
	po, err := uc.poRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	return uc.poRepo.Delete(ctx, companyID, id)
}

// CreateInventoryItem registra un ítem. El SKU es único por empresa.
func (uc *PurchasingUseCase) CreateInventoryItem(ctx context.Context, companyID int64, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	existing, err := uc.inventoryRepo.GetByCompanyAndSKU(ctx, companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	it := &entity.InventoryItem{
		CompanyID:    companyID,
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		ReorderPoint: in.ReorderPoint,
		UnitCost:     in.UnitCost,
		Location:     in.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.inventoryRepo.Create(ctx, it); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(it), nil
}

// GetInventoryItem obtiene un ítem de la empresa.
func (uc *PurchasingUseCase) GetInventoryItem(ctx context.Context, companyID, id int64) (*dto.InventoryItemResponse, error) {
	it, err := uc.inventoryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(it), nil
}

// ListInventory lista el inventario de la empresa.
func (uc *PurchasingUseCase) ListInventory(ctx context.Context, companyID int64, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.inventoryRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateInventoryItem aplica solo los campos presentes. El SKU no cambia.
func (uc *PurchasingUseCase) UpdateInventoryItem(ctx context.Context, companyID, id int64, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	it, err := uc.inventoryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.ReorderPoint != nil {
		it.ReorderPoint = *in.ReorderPoint
	}
	if in.UnitCost != nil {
		it.UnitCost = *in.UnitCost
	}
	if in.Location != nil {
		it.Location = *in.Location
	}
	it.UpdatedAt = time.Now()
	if err := uc.inventoryRepo.Update(ctx, it); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(it), nil
}

// DeleteInventoryItem elimina un ítem de la empresa.
func (uc *PurchasingUseCase) DeleteInventoryItem(ctx context.Context, companyID, id int64) error {
	it, err := uc.inventoryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	return uc.inventoryRepo.Delete(ctx, companyID, id)
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if po == nil {
		return nil
	}
	return &dto.PurchaseOrderResponse{
		ID:           po.ID,
		CompanyID:    po.CompanyID,
		VendorID:     po.VendorID,
		ProjectID:    po.ProjectID,
		OrderNumber:  po.OrderNumber,
		Status:       po.Status,
		Total:        po.Total,
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		Notes:        po.Notes,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	}
}

func toInventoryItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		SKU:          it.SKU,
		Name:         it.Name,
		Quantity:     it.Quantity,
		ReorderPoint: it.ReorderPoint,
		UnitCost:     it.UnitCost,
		Location:     it.Location,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
