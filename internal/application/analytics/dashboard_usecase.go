// Package analytics contiene los casos de uso del dashboard operativo
// y financiero de la empresa.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

const summaryTTL = 60 * time.Second // el dashboard tolera cifras de hasta un minuto

// Cache almacenamiento efímero del resumen (Redis en producción).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only). El resultado se
// cachea por empresa; un solo goroutine reconstruye cada clave a la vez.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	cache    Cache
	log      *logger.Logger

	mu       sync.Mutex
	building map[string]*sync.Mutex
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewDashboardUseCase(dashRepo repository.DashboardRepository, cache Cache, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		dashRepo: dashRepo,
		cache:    cache,
		log:      log,
		building: make(map[string]*sync.Mutex),
	}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Cinco consultas en paralelo:
//  1. CountActiveClients           → ActiveClients
//  2. CountMaintenancesDue(semana) → VisitsDueThisWeek
//  3. CountOpenRepairs             → OpenRepairs
//  4. GetRepairRevenue(mes)        → MonthRevenue
//  5. GetExpenseTotals(mes)        → MonthExpenses + ExpensesByCategory
//
// CountOpenPurchaseOrders va en serie al final; es la consulta más barata.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID int64) (*dto.DashboardSummaryDTO, error) {
	key := fmt.Sprintf("dashboard:summary:%d", companyID)

	if cached := uc.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	// Una sola reconstrucción por clave; el resto espera y relee la caché.
	lock := uc.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if cached := uc.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	summary, err := uc.buildSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, key, summary)
	return summary, nil
}

func (uc *DashboardUseCase) buildSummary(ctx context.Context, companyID int64) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Semana en curso: hoy 00:00 + 7 días.
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)

	// Mes en curso: día 1 a las 00:00 – ahora.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}
	type expensesResult struct {
		totals []repository.ExpenseByCategory
		err    error
	}

	clientsCh := make(chan countResult, 1)
	visitsCh := make(chan countResult, 1)
	repairsCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		n, err := uc.dashRepo.CountActiveClients(ctx, companyID)
		clientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountMaintenancesDue(ctx, companyID, weekStart, weekEnd)
		visitsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountOpenRepairs(ctx, companyID)
		repairsCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashRepo.GetRepairRevenue(ctx, companyID, monthStart, now)
		revenueCh <- revenueResult{total, err}
	}()
	go func() {
		totals, err := uc.dashRepo.GetExpenseTotals(ctx, companyID, monthStart, now)
		expensesCh <- expensesResult{totals, err}
	}()

	clients := <-clientsCh
	visits := <-visitsCh
	repairs := <-repairsCh
	revenue := <-revenueCh
	expenses := <-expensesCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes activos: %w", clients.err)
	}
	if visits.err != nil {
		return nil, fmt.Errorf("dashboard: visitas de la semana: %w", visits.err)
	}
	if repairs.err != nil {
		return nil, fmt.Errorf("dashboard: reparaciones abiertas: %w", repairs.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos del mes: %w", expenses.err)
	}

	openPOs, err := uc.dashRepo.CountOpenPurchaseOrders(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: órdenes de compra abiertas: %w", err)
	}

	monthExpenses := decimal.Zero
	byCategory := make([]dto.CategoryTotalDTO, 0, len(expenses.totals))
	for _, t := range expenses.totals {
		monthExpenses = monthExpenses.Add(t.Total)
		byCategory = append(byCategory, dto.CategoryTotalDTO{Category: t.Category, Total: t.Total.Round(2)})
	}

	return &dto.DashboardSummaryDTO{
		ActiveClients:      clients.n,
		VisitsDueThisWeek:  visits.n,
		OpenRepairs:        repairs.n,
		OpenPurchaseOrders: openPOs,
		MonthRevenue:       revenue.total.Round(2),
		MonthExpenses:      monthExpenses.Round(2),
		ExpensesByCategory: byCategory,
	}, nil
}

func (uc *DashboardUseCase) keyLock(key string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	lock, ok := uc.building[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.building[key] = lock
	}
	return lock
}

func (uc *DashboardUseCase) fromCache(ctx context.Context, key string) *dto.DashboardSummaryDTO {
	if uc.cache == nil {
		return nil
	}
	raw, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo leer la caché del dashboard")
		return nil
	}
	if !ok {
		return nil
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal(raw, &summary); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché del dashboard corrupta; se reconstruye")
		return nil
	}
	return &summary
}

func (uc *DashboardUseCase) toCache(ctx context.Context, key string, summary *dto.DashboardSummaryDTO) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, summaryTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir la caché del dashboard")
	}
}
