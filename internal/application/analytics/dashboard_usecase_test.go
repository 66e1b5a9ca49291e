package analytics_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/analytics"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
	"github.com/jhoicas/Piscinas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.DashboardRepository = (*fakeDashRepo)(nil)
	_ analytics.Cache                = (*memoryCache)(nil)
)

// fakeDashRepo devuelve cifras fijas y cuenta las consultas ejecutadas.
type fakeDashRepo struct {
	queries int64
}

func (r *fakeDashRepo) hit() { atomic.AddInt64(&r.queries, 1) }

func (r *fakeDashRepo) CountActiveClients(_ context.Context, _ int64) (int, error) {
	r.hit()
	return 42, nil
}

func (r *fakeDashRepo) CountMaintenancesDue(_ context.Context, _ int64, _, _ time.Time) (int, error) {
	r.hit()
	return 9, nil
}

func (r *fakeDashRepo) CountOpenRepairs(_ context.Context, _ int64) (int, error) {
	r.hit()
	return 3, nil
}

func (r *fakeDashRepo) GetRepairRevenue(_ context.Context, _ int64, _, _ time.Time) (decimal.Decimal, error) {
	r.hit()
	return decimal.NewFromInt(1_250_000), nil
}

func (r *fakeDashRepo) GetExpenseTotals(_ context.Context, _ int64, _, _ time.Time) ([]repository.ExpenseByCategory, error) {
	r.hit()
	return []repository.ExpenseByCategory{
		{Category: "chemicals", Total: decimal.NewFromInt(300_000)},
		{Category: "fuel", Total: decimal.NewFromInt(120_000)},
	}, nil
}

func (r *fakeDashRepo) CountOpenPurchaseOrders(_ context.Context, _ int64) (int, error) {
	r.hit()
	return 5, nil
}

// memoryCache caché en memoria sin expiración (suficiente para el test).
type memoryCache struct {
	data map[string][]byte
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	c.sets++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestGetSummary_AgregaCifras(t *testing.T) {
	repo := &fakeDashRepo{}
	uc := analytics.NewDashboardUseCase(repo, newMemoryCache(), testLogger())

	summary, err := uc.GetSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 42, summary.ActiveClients)
	assert.Equal(t, 9, summary.VisitsDueThisWeek)
	assert.Equal(t, 3, summary.OpenRepairs)
	assert.Equal(t, 5, summary.OpenPurchaseOrders)
	assert.True(t, summary.MonthRevenue.Equal(decimal.NewFromInt(1_250_000)))
	assert.True(t, summary.MonthExpenses.Equal(decimal.NewFromInt(420_000)),
		"el gasto del mes es la suma de las categorías")
	require.Len(t, summary.ExpensesByCategory, 2)
}

// La segunda lectura sale de la caché sin tocar el repositorio.
func TestGetSummary_SegundaLecturaDesdeCache(t *testing.T) {
	repo := &fakeDashRepo{}
	cache := newMemoryCache()
	uc := analytics.NewDashboardUseCase(repo, cache, testLogger())
	ctx := context.Background()

	_, err := uc.GetSummary(ctx, 1)
	require.NoError(t, err)
	queriesAfterFirst := atomic.LoadInt64(&repo.queries)
	assert.Equal(t, 1, cache.sets)

	again, err := uc.GetSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, queriesAfterFirst, atomic.LoadInt64(&repo.queries),
		"con caché caliente no debe ejecutarse ninguna consulta")
	assert.Equal(t, 42, again.ActiveClients)
}

// Cada empresa tiene su propia clave de caché.
func TestGetSummary_ClavePorEmpresa(t *testing.T) {
	repo := &fakeDashRepo{}
	cache := newMemoryCache()
	uc := analytics.NewDashboardUseCase(repo, cache, testLogger())
	ctx := context.Background()

	_, err := uc.GetSummary(ctx, 1)
	require.NoError(t, err)
	_, err = uc.GetSummary(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets, "cada empresa construye y cachea su propio resumen")
}

// Sin caché configurada el caso de uso sigue funcionando.
func TestGetSummary_SinCache(t *testing.T) {
	repo := &fakeDashRepo{}
	uc := analytics.NewDashboardUseCase(repo, nil, testLogger())

	summary, err := uc.GetSummary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 42, summary.ActiveClients)
}
