package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/internal/domain"
)

func buildDocumentUC(t *testing.T) (*usecase.DocumentUseCase, *fakeProjectRepo, *fakeStorage) {
	t.Helper()
	projects := newFakeProjectRepo()
	docs := newFakeDocumentRepo()
	storage := &fakeStorage{}
	uc := usecase.NewDocumentUseCase(docs, projects, storage, 15*time.Minute)
	return uc, projects, storage
}

// ──────────────────────────────────────────────────────────────────────────────
// Tope de tamaño
// ──────────────────────────────────────────────────────────────────────────────

// Un archivo por encima del tope se rechaza sin tocar el object store.
func TestDocumentUpload_ExcedeTopeSinLlamarStorage(t *testing.T) {
	uc, projects, storage := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)

	size := usecase.MaxDocumentSize + 1
	_, err := uc.Upload(context.Background(), companyA, p.ID, 1,
		dto.UploadDocumentRequest{Title: "Plano general"},
		"plano.pdf", "application/pdf", size, strings.NewReader("no importa"))

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, storage.uploads, "el rechazo por tamaño ocurre antes de subir nada")
}

func TestDocumentUpload_EnElTopeExactoPasa(t *testing.T) {
	uc, projects, storage := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)

	content := "contenido del plano"
	doc, err := uc.Upload(context.Background(), companyA, p.ID, 1,
		dto.UploadDocumentRequest{Title: "Plano hidráulico", DocumentType: "plan"},
		"hidraulico.pdf", "application/pdf", int64(len(content)), strings.NewReader(content))

	require.NoError(t, err)
	require.Len(t, storage.uploads, 1)
	assert.Contains(t, storage.uploads[0], "companies/1/projects/1/", "la clave lleva tenant y proyecto")
	assert.Equal(t, "plan", doc.DocumentType)
	assert.NotEmpty(t, doc.URL, "la respuesta trae URL firmada de lectura")
}

// El mismo tope aplica al tamaño declarado en la firma de subida directa.
func TestDocumentSignUpload_ExcedeTope(t *testing.T) {
	uc, projects, storage := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)

	_, err := uc.SignUpload(context.Background(), companyA, p.ID, dto.SignUploadRequest{
		FileName:    "video-obra.mp4",
		ContentType: "video/mp4",
		SizeBytes:   usecase.MaxDocumentSize + 1,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Empty(t, storage.signed)
}

func TestDocumentSignUpload_EmiteURLFirmada(t *testing.T) {
	uc, projects, _ := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)

	res, err := uc.SignUpload(context.Background(), companyA, p.ID, dto.SignUploadRequest{
		FileName:    "permiso.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "PUT", res.Method)
	assert.NotEmpty(t, res.UploadURL)
	assert.Equal(t, "application/pdf", res.Headers["Content-Type"])
	assert.True(t, strings.HasSuffix(res.ObjectKey, ".pdf"), "la clave conserva la extensión original")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentList_FiltraPorTipo(t *testing.T) {
	uc, projects, _ := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)
	ctx := context.Background()

	for _, d := range []struct{ title, docType string }{
		{"Plano piscina", "plan"},
		{"Foto avance", "photo"},
		{"Permiso municipal", "permit"},
	} {
		_, err := uc.Upload(ctx, companyA, p.ID, 1,
			dto.UploadDocumentRequest{Title: d.title, DocumentType: d.docType},
			d.title+".bin", "application/octet-stream", 10, strings.NewReader("0123456789"))
		require.NoError(t, err)
	}

	photos, err := uc.ListByProject(ctx, companyA, p.ID, "photo")
	require.NoError(t, err)
	require.Len(t, photos.Items, 1)
	assert.Equal(t, "Foto avance", photos.Items[0].Title)

	// "all" y vacío devuelven todo.
	all, err := uc.ListByProject(ctx, companyA, p.ID, "all")
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado
// ──────────────────────────────────────────────────────────────────────────────

// Borrar metadatos también borra el objeto del bucket.
func TestDocumentDelete_LimpiaObjeto(t *testing.T) {
	uc, projects, storage := buildDocumentUC(t)
	p := seedProject(t, projects, companyA)
	ctx := context.Background()

	doc, err := uc.Upload(ctx, companyA, p.ID, 1,
		dto.UploadDocumentRequest{Title: "Contrato"},
		"contrato.pdf", "application/pdf", 20, strings.NewReader("contenido de ejemplo"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, companyA, doc.ID))
	require.Len(t, storage.deletes, 1)
	assert.Equal(t, storage.uploads[0], storage.deletes[0])
}
