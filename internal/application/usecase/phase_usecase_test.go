package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const companyA = int64(1)

func buildPhaseUC(t *testing.T) (*usecase.PhaseUseCase, *fakeProjectRepo, *fakePhaseRepo) {
	t.Helper()
	projects := newFakeProjectRepo()
	phases := newFakePhaseRepo()
	return usecase.NewPhaseUseCase(phases, projects), projects, phases
}

func seedProject(t *testing.T, repo *fakeProjectRepo, companyID int64) *entity.Project {
	t.Helper()
	p := &entity.Project{
		CompanyID: companyID,
		ClientID:  1,
		Name:      "Piscina familiar",
		Status:    entity.StatusInProgress,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestPhaseCreate_ProyectoDeOtraEmpresa(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	_, err := uc.Create(context.Background(), 99, p.ID, dto.CreatePhaseRequest{Name: "Excavación"})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el proyecto de otra empresa debe tratarse como inexistente")
}

func TestPhaseCreate_RangoDeFechasInvalido(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{
		Name:      "Excavación",
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "end < start debe rechazarse")
}

func TestPhaseCreate_EstadoPorDefecto(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	ph, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{Name: "Plomería"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, ph.Status, "una fase nueva arranca en pending")
}

// PATCH parcial: solo los campos presentes se aplican; el resto queda intacto.
func TestPhaseUpdate_SoloCamposPresentes(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	created, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{
		Name:        "Acabados",
		Description: "Enchape y borde",
		SortOrder:   3,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), companyA, created.ID, dto.UpdatePhaseRequest{
		Status:          strPtr(entity.StatusInProgress),
		PercentComplete: intPtr(40),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusInProgress, updated.Status)
	assert.Equal(t, 40, updated.PercentComplete)
	assert.Equal(t, "Acabados", updated.Name, "el nombre no venía en el PATCH y no debe cambiar")
	assert.Equal(t, "Enchape y borde", updated.Description)
	assert.Equal(t, 3, updated.SortOrder)
}

// El rango de fechas se revalida con los valores RESULTANTES del PATCH.
func TestPhaseUpdate_RangoResultanteInvalido(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	created, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{
		Name:      "Electricidad",
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	// Mover solo el inicio más allá del fin existente.
	_, err = uc.Update(context.Background(), companyA, created.ID, dto.UpdatePhaseRequest{
		StartDate: timePtr(end.AddDate(0, 0, 5)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el inicio nuevo combinado con el fin existente forma un rango inválido")
}

func TestPhaseUpdate_PorcentajeFueraDeRango(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	created, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{Name: "Llenado"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), companyA, created.ID, dto.UpdatePhaseRequest{
		PercentComplete: intPtr(120),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPhaseGetByID_NoExiste(t *testing.T) {
	uc, _, _ := buildPhaseUC(t)

	_, err := uc.GetByID(context.Background(), companyA, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPhaseListByProject_OrdenadoPorSortOrder(t *testing.T) {
	uc, projects, _ := buildPhaseUC(t)
	p := seedProject(t, projects, companyA)

	for i, name := range []string{"Acabados", "Excavación", "Plomería"} {
		_, err := uc.Create(context.Background(), companyA, p.ID, dto.CreatePhaseRequest{
			Name:      name,
			SortOrder: 3 - i,
		})
		require.NoError(t, err)
	}

	list, err := uc.ListByProject(context.Background(), companyA, p.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Plomería", list.Items[0].Name)
	assert.Equal(t, "Excavación", list.Items[1].Name)
	assert.Equal(t, "Acabados", list.Items[2].Name)
}
