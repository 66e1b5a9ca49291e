package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

func buildMaintenanceUC(t *testing.T) (*usecase.MaintenanceUseCase, *fakeMaintenanceRepo, *fakeReportRepo, *fakeClientRepo, *fakeTx) {
	t.Helper()
	visits := newFakeMaintenanceRepo()
	reports := newFakeReportRepo()
	clients := newFakeClientRepo()
	tx := &fakeTx{maintRepo: visits, reportRepo: reports}
	uc := usecase.NewMaintenanceUseCase(visits, reports, clients, tx)
	return uc, visits, reports, clients, tx
}

func seedClient(t *testing.T, repo *fakeClientRepo, companyID int64) *entity.Client {
	t.Helper()
	c := &entity.Client{CompanyID: companyID, Name: "Cliente demo", PoolType: "inground"}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func floatPtr(f float64) *float64 { return &f }

// ──────────────────────────────────────────────────────────────────────────────
// Programación de visitas
// ──────────────────────────────────────────────────────────────────────────────

func TestMaintenanceCreate_ClienteDeOtraEmpresa(t *testing.T) {
	uc, _, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)

	_, err := uc.Create(context.Background(), 99, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: time.Now().AddDate(0, 0, 7),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaintenanceCreate_FrecuenciaPorDefectoOnce(t *testing.T) {
	uc, _, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)

	m, err := uc.Create(context.Background(), companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyOnce, m.Frequency)
	assert.Equal(t, entity.MaintenanceScheduled, m.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas de química del agua
// ──────────────────────────────────────────────────────────────────────────────

// Las lecturas son campos estructurados del registro; el campo de notas
// queda como texto libre sin ningún dato codificado dentro.
func TestMaintenanceUpdate_LecturasEstructuradas(t *testing.T) {
	uc, visits, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	m, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, companyA, m.ID, dto.UpdateMaintenanceRequest{
		Readings: &dto.WaterReadingsDTO{
			PH:          floatPtr(7.4),
			ChlorinePPM: floatPtr(2.1),
		},
		Notes: strPtr("Cliente pide revisar la bomba la próxima visita"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Readings.PH)
	assert.InDelta(t, 7.4, *updated.Readings.PH, 0.001)
	require.NotNil(t, updated.Readings.ChlorinePPM)
	assert.InDelta(t, 2.1, *updated.Readings.ChlorinePPM, 0.001)
	assert.Nil(t, updated.Readings.AlkalinityPPM, "lectura no tomada queda en nil, no en cero")
	assert.Equal(t, "Cliente pide revisar la bomba la próxima visita", updated.Notes)

	stored := visits.visits[m.ID]
	require.NotNil(t, stored.Readings.PH, "las lecturas persisten como campos propios")
	assert.NotContains(t, stored.Notes, "7.4", "las notas nunca llevan lecturas incrustadas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Completar una visita
// ──────────────────────────────────────────────────────────────────────────────

// Completar genera el informe de servicio y la siguiente visita de la
// recurrencia, todo dentro de la misma transacción.
func TestMaintenanceComplete_GeneraInformeYSiguienteVisita(t *testing.T) {
	uc, visits, reports, clients, tx := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	scheduled := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	m, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: scheduled,
		Frequency:     entity.FrequencyWeekly,
	})
	require.NoError(t, err)

	completed, err := uc.Update(ctx, companyA, m.ID, dto.UpdateMaintenanceRequest{
		Status:        strPtr(entity.MaintenanceCompleted),
		Readings:      &dto.WaterReadingsDTO{PH: floatPtr(7.2)},
		FilterCleaned: boolPtr(true),
		EquipmentOK:   boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedDate, "al completar se fija la fecha si no vino")

	assert.Equal(t, 1, tx.runs, "completar corre dentro de la transacción")

	report, err := reports.GetByMaintenance(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, report, "toda visita completada produce su informe")
	require.NotNil(t, report.Readings.PH)
	assert.InDelta(t, 7.2, *report.Readings.PH, 0.001)

	// La recurrencia semanal produce la visita de la semana siguiente.
	require.Len(t, visits.visits, 2)
	var next *entity.Maintenance
	for _, v := range visits.visits {
		if v.ID != m.ID {
			next = v
		}
	}
	require.NotNil(t, next)
	assert.Equal(t, entity.MaintenanceScheduled, next.Status)
	assert.True(t, next.ScheduledDate.Equal(scheduled.AddDate(0, 0, 7)))
	assert.Equal(t, entity.FrequencyWeekly, next.Frequency)
}

// Frecuencia "once": completar no programa nada más.
func TestMaintenanceComplete_SinRecurrencia(t *testing.T) {
	uc, visits, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	m, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: time.Now(),
		Frequency:     entity.FrequencyOnce,
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, companyA, m.ID, dto.UpdateMaintenanceRequest{
		Status: strPtr(entity.MaintenanceCompleted),
	})
	require.NoError(t, err)
	assert.Len(t, visits.visits, 1, "once no genera siguiente visita")
}

// Completar dos veces no duplica informe ni recurrencia.
func TestMaintenanceComplete_Idempotente(t *testing.T) {
	uc, visits, _, clients, tx := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	m, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: time.Now(),
		Frequency:     entity.FrequencyMonthly,
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, companyA, m.ID, dto.UpdateMaintenanceRequest{
		Status: strPtr(entity.MaintenanceCompleted),
	})
	require.NoError(t, err)

	// Segundo update sobre una visita ya completada (por ejemplo, corregir notas).
	_, err = uc.Update(ctx, companyA, m.ID, dto.UpdateMaintenanceRequest{
		Notes: strPtr("Corrección de notas"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.runs, "la transacción de completado corre una sola vez")
	assert.Len(t, visits.visits, 2, "solo la recurrencia del primer completado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimiento por scheduler
// ──────────────────────────────────────────────────────────────────────────────

func TestMaintenanceRollOverdue_MarcaYReprograma(t *testing.T) {
	uc, visits, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -3)
	m, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: past,
		Frequency:     entity.FrequencyBiweekly,
	})
	require.NoError(t, err)

	n, err := uc.RollOverdue(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, entity.MaintenanceOverdue, visits.visits[m.ID].Status)
	require.Len(t, visits.visits, 2, "la recurrente vencida genera su siguiente visita")
}

// Si falla la creación de la visita siguiente, el error debe llegar al
// scheduler: una recurrencia cortada en silencio deja al cliente sin visitas.
func TestMaintenanceRollOverdue_ErrorAlReprogramarSePropaga(t *testing.T) {
	uc, visits, _, clients, _ := buildMaintenanceUC(t)
	c := seedClient(t, clients, companyA)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -3)
	_, err := uc.Create(ctx, companyA, dto.CreateMaintenanceRequest{
		ClientID:      c.ID,
		ScheduledDate: past,
		Frequency:     entity.FrequencyWeekly,
	})
	require.NoError(t, err)

	dbDown := errors.New("db caída")
	visits.createErr = dbDown

	n, err := uc.RollOverdue(ctx, time.Now())
	assert.Equal(t, 1, n, "la visita vencida sí quedó marcada")
	require.ErrorIs(t, err, dbDown)

	visits.createErr = nil
	require.Len(t, visits.visits, 1, "no debe existir una visita siguiente fantasma")
}
