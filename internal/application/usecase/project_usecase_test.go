package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

func buildProjectUC(t *testing.T) (*usecase.ProjectUseCase, *fakeProjectRepo) {
	t.Helper()
	repo := newFakeProjectRepo()
	clients := newFakeClientRepo()
	seedClient(t, clients, companyA) // cliente 1 de companyA
	return usecase.NewProjectUseCase(repo, clients), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Archivado
// ──────────────────────────────────────────────────────────────────────────────

// Un proyecto archivado sale de los listados por defecto y reaparece
// con includeArchived=true. Archivar nunca destruye datos.
func TestProjectArchive_ExcluidoDelListadoPorDefecto(t *testing.T) {
	uc, _ := buildProjectUC(t)
	ctx := context.Background()

	activo, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Obra activa"})
	require.NoError(t, err)
	archivable, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Obra vieja"})
	require.NoError(t, err)

	res, err := uc.ToggleArchive(ctx, companyA, archivable.ID)
	require.NoError(t, err)
	assert.True(t, res.IsArchived)

	list, err := uc.List(ctx, companyA, repository.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "el archivado no debe aparecer por defecto")
	assert.Equal(t, activo.ID, list.Items[0].ID)

	all, err := uc.List(ctx, companyA, repository.ProjectFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2, "includeArchived=true debe reincorporarlo")

	// El proyecto sigue accesible por id aunque esté archivado.
	got, err := uc.GetByID(ctx, companyA, archivable.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)
}

// El toggle invierte: archivar dos veces lo devuelve a activo.
func TestProjectArchive_ToggleInvierte(t *testing.T) {
	uc, _ := buildProjectUC(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Renovación"})
	require.NoError(t, err)

	first, err := uc.ToggleArchive(ctx, companyA, p.ID)
	require.NoError(t, err)
	assert.True(t, first.IsArchived)

	second, err := uc.ToggleArchive(ctx, companyA, p.ID)
	require.NoError(t, err)
	assert.False(t, second.IsArchived)
}

func TestProjectArchive_NoExiste(t *testing.T) {
	uc, _ := buildProjectUC(t)

	_, err := uc.ToggleArchive(context.Background(), companyA, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con preview
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectDeletionPreview_RetornaConteos(t *testing.T) {
	uc, repo := buildProjectUC(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Obra grande"})
	require.NoError(t, err)
	repo.preview = entity.DeletionPreview{Phases: 4, Documents: 12, Repairs: 2, Maintenances: 8, PurchaseOrders: 3}

	preview, err := uc.DeletionPreview(ctx, companyA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, preview.Phases)
	assert.Equal(t, 12, preview.Documents)
	assert.Equal(t, 2, preview.Repairs)
	assert.Equal(t, 8, preview.Maintenances)
	assert.Equal(t, 3, preview.PurchaseOrders)
}

func TestProjectDelete_OtraEmpresaNoPuede(t *testing.T) {
	uc, repo := buildProjectUC(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Obra ajena"})
	require.NoError(t, err)

	err = uc.Delete(ctx, 99, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.deleted, "no debe borrarse nada de otra empresa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectCreate_EstadoPorDefectoPlanning(t *testing.T) {
	uc, _ := buildProjectUC(t)

	p, err := uc.Create(context.Background(), companyA, dto.CreateProjectRequest{ClientID: 1, Name: "Nueva obra"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlanning, p.Status)
}

// Un proyecto solo puede colgar de un cliente de la propia empresa: un id
// inexistente o de otra empresa se trata como cliente no encontrado.
func TestProjectCreate_ClienteDeOtraEmpresa(t *testing.T) {
	uc, repo := buildProjectUC(t)

	_, err := uc.Create(context.Background(), companyA, dto.CreateProjectRequest{
		ClientID: 9999,
		Name:     "Obra cruzada",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.projects, "no debe persistirse nada")
}

func TestProjectCreate_EstadoInvalido(t *testing.T) {
	uc, _ := buildProjectUC(t)

	_, err := uc.Create(context.Background(), companyA, dto.CreateProjectRequest{
		ClientID: 1,
		Name:     "Obra",
		Status:   "paused",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectUpdate_SoloCamposPresentes(t *testing.T) {
	uc, _ := buildProjectUC(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, companyA, dto.CreateProjectRequest{
		ClientID:    1,
		Name:        "Obra original",
		Description: "Descripción original",
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, companyA, p.ID, dto.UpdateProjectRequest{
		PercentComplete: intPtr(55),
	})
	require.NoError(t, err)
	assert.Equal(t, 55, updated.PercentComplete)
	assert.Equal(t, "Obra original", updated.Name)
	assert.Equal(t, "Descripción original", updated.Description)
}
