package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de compras e inventario
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.PurchaseOrderRepository = (*fakePORepo)(nil)
	_ repository.InventoryItemRepository = (*fakeInventoryRepo)(nil)
	_ repository.VendorRepository        = (*fakeVendorRepo)(nil)
)

type fakePORepo struct {
	seq    int64
	orders map[int64]*entity.PurchaseOrder
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{orders: make(map[int64]*entity.PurchaseOrder)}
}

func (r *fakePORepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.seq++
	po.ID = r.seq
	cp := *po
	r.orders[po.ID] = &cp
	return nil
}

func (r *fakePORepo) GetByID(_ context.Context, companyID, id int64) (*entity.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok || po.CompanyID != companyID {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (r *fakePORepo) GetByOrderNumber(_ context.Context, companyID int64, orderNumber string) (*entity.PurchaseOrder, error) {
	for _, po := range r.orders {
		if po.CompanyID == companyID && po.OrderNumber == orderNumber {
			cp := *po
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePORepo) ListByCompany(_ context.Context, companyID int64, status string, _, _ int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.orders {
		if po.CompanyID != companyID {
			continue
		}
		if status != "" && po.Status != status {
			continue
		}
		cp := *po
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePORepo) Update(_ context.Context, po *entity.PurchaseOrder) error {
	cp := *po
	r.orders[po.ID] = &cp
	return nil
}

func (r *fakePORepo) Delete(_ context.Context, _, id int64) error {
	delete(r.orders, id)
	return nil
}

type fakeInventoryRepo struct {
	seq   int64
	items map[int64]*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[int64]*entity.InventoryItem)}
}

func (r *fakeInventoryRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	r.seq++
	it.ID = r.seq
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, companyID, id int64) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok || it.CompanyID != companyID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeInventoryRepo) GetByCompanyAndSKU(_ context.Context, companyID int64, sku string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.CompanyID == companyID && it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) ListByCompany(_ context.Context, companyID int64, _, _ int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if it.CompanyID == companyID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeVendorRepo struct {
	seq     int64
	vendors map[int64]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[int64]*entity.Vendor)}
}

func (r *fakeVendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	r.seq++
	v.ID = r.seq
	cp := *v
	r.vendors[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, companyID, id int64) (*entity.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok || v.CompanyID != companyID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) ListByCompany(_ context.Context, companyID int64, _ string, _, _ int) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.vendors {
		if v.CompanyID == companyID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeVendorRepo) Update(_ context.Context, v *entity.Vendor) error {
	cp := *v
	r.vendors[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) Delete(_ context.Context, _, id int64) error {
	delete(r.vendors, id)
	return nil
}

func buildPurchasingUC(t *testing.T) (*usecase.PurchasingUseCase, *fakeVendorRepo) {
	t.Helper()
	vendors := newFakeVendorRepo()
	return usecase.NewPurchasingUseCase(newFakePORepo(), newFakeInventoryRepo(), vendors), vendors
}

func seedVendor(t *testing.T, repo *fakeVendorRepo, companyID int64) *entity.Vendor {
	t.Helper()
	v := &entity.Vendor{CompanyID: companyID, Name: "Químicos del Valle"}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestPOCreate_NumeroDuplicado(t *testing.T) {
	uc, vendors := buildPurchasingUC(t)
	v := seedVendor(t, vendors, companyA)
	ctx := context.Background()

	_, err := uc.CreatePurchaseOrder(ctx, companyA, dto.CreatePurchaseOrderRequest{
		VendorID:    v.ID,
		OrderNumber: "OC-2026-001",
		Total:       decimal.NewFromInt(350_000),
	})
	require.NoError(t, err)

	_, err = uc.CreatePurchaseOrder(ctx, companyA, dto.CreatePurchaseOrderRequest{
		VendorID:    v.ID,
		OrderNumber: "OC-2026-001",
		Total:       decimal.NewFromInt(120_000),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el número de orden es único por empresa")
}

func TestPOCreate_ArrancaEnDraft(t *testing.T) {
	uc, vendors := buildPurchasingUC(t)
	v := seedVendor(t, vendors, companyA)

	po, err := uc.CreatePurchaseOrder(context.Background(), companyA, dto.CreatePurchaseOrderRequest{
		VendorID:    v.ID,
		OrderNumber: "OC-2026-002",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusDraft, po.Status)
}

func TestPOCreate_ProveedorInexistente(t *testing.T) {
	uc, _ := buildPurchasingUC(t)

	_, err := uc.CreatePurchaseOrder(context.Background(), companyA, dto.CreatePurchaseOrderRequest{
		VendorID:    404,
		OrderNumber: "OC-2026-003",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una orden cancelada no admite más cambios.
func TestPOUpdate_CanceladaEsInmutable(t *testing.T) {
	uc, vendors := buildPurchasingUC(t)
	v := seedVendor(t, vendors, companyA)
	ctx := context.Background()

	po, err := uc.CreatePurchaseOrder(ctx, companyA, dto.CreatePurchaseOrderRequest{
		VendorID:    v.ID,
		OrderNumber: "OC-2026-004",
	})
	require.NoError(t, err)

	_, err = uc.UpdatePurchaseOrder(ctx, companyA, po.ID, dto.UpdatePurchaseOrderRequest{
		Status: strPtr(entity.POStatusCancelled),
	})
	require.NoError(t, err)

	_, err = uc.UpdatePurchaseOrder(ctx, companyA, po.ID, dto.UpdatePurchaseOrderRequest{
		Notes: strPtr("intento de edición"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_SKUDuplicado(t *testing.T) {
	uc, _ := buildPurchasingUC(t)
	ctx := context.Background()

	_, err := uc.CreateInventoryItem(ctx, companyA, dto.CreateInventoryItemRequest{
		SKU: "CLORO-25KG", Name: "Cloro granulado 25kg", Quantity: 10,
	})
	require.NoError(t, err)

	_, err = uc.CreateInventoryItem(ctx, companyA, dto.CreateInventoryItemRequest{
		SKU: "CLORO-25KG", Name: "Otro cloro", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el SKU es único por empresa")
}

func TestInventoryCreate_MismoSKUOtraEmpresa(t *testing.T) {
	uc, _ := buildPurchasingUC(t)
	ctx := context.Background()

	_, err := uc.CreateInventoryItem(ctx, companyA, dto.CreateInventoryItemRequest{
		SKU: "PH-MINUS-5KG", Name: "Reductor de pH",
	})
	require.NoError(t, err)

	_, err = uc.CreateInventoryItem(ctx, 2, dto.CreateInventoryItemRequest{
		SKU: "PH-MINUS-5KG", Name: "Reductor de pH",
	})
	assert.NoError(t, err, "la unicidad del SKU es por empresa, no global")
}

// El SKU no cambia en un update; solo los demás campos.
func TestInventoryUpdate_SKUInmutable(t *testing.T) {
	uc, _ := buildPurchasingUC(t)
	ctx := context.Background()

	it, err := uc.CreateInventoryItem(ctx, companyA, dto.CreateInventoryItemRequest{
		SKU: "ALGUICIDA-1L", Name: "Alguicida concentrado", Quantity: 4,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateInventoryItem(ctx, companyA, it.ID, dto.UpdateInventoryItemRequest{
		Quantity: intPtr(12),
		Location: strPtr("Bodega 2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ALGUICIDA-1L", updated.SKU)
	assert.Equal(t, 12, updated.Quantity)
	assert.Equal(t, "Bodega 2", updated.Location)
	assert.Equal(t, "Alguicida concentrado", updated.Name)
}
