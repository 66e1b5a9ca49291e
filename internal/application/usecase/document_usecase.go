package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Piscinas-api/internal/application/dto"
	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// MaxDocumentSize tope de 50MB por documento. El rechazo ocurre ANTES de
// tocar el object store: un archivo que excede el límite no genera ninguna
// llamada de red.
const MaxDocumentSize int64 = 50 * 1024 * 1024

// DocumentUseCase casos de uso para documentos de proyecto. El binario va al
// object store; la DB guarda solo metadatos y la clave de objeto.
type DocumentUseCase struct {
	repo        repository.DocumentRepository
	projectRepo repository.ProjectRepository
	storage     ObjectStorage
	urlTTL      time.Duration
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, projectRepo repository.ProjectRepository, storage ObjectStorage, urlTTL time.Duration) *DocumentUseCase {
	if urlTTL <= 0 {
		urlTTL = 15 * time.Minute
	}
	return &DocumentUseCase{repo: repo, projectRepo: projectRepo, storage: storage, urlTTL: urlTTL}
}

// Upload valida tamaño y proyecto, sube el archivo y persiste los metadatos.
func (uc *DocumentUseCase) Upload(ctx context.Context, companyID, projectID, userID int64, in dto.UploadDocumentRequest, fileName, contentType string, size int64, r io.Reader) (*dto.DocumentResponse, error) {
	if size > MaxDocumentSize {
		return nil, domain.ErrFileTooLarge
	}
	project, err := uc.projectRepo.GetByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	docType := in.DocumentType
	if docType == "" {
		docType = "other"
	}
	objectKey := buildObjectKey(companyID, projectID, fileName)
	if err := uc.storage.Upload(ctx, objectKey, contentType, r, size); err != nil {
		return nil, fmt.Errorf("subir documento: %w", err)
	}
	now := time.Now()
	doc := &entity.ProjectDocument{
		ProjectID:    projectID,
		Title:        in.Title,
		DocumentType: docType,
		FileName:     fileName,
		ObjectKey:    objectKey,
		ContentType:  contentType,
		SizeBytes:    size,
		UploadedBy:   userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		// El objeto ya subió; se intenta limpiar para no dejar huérfanos.
		_ = uc.storage.Delete(ctx, objectKey)
		return nil, err
	}
	return uc.toDocumentResponse(doc), nil
}

// SignUpload emite una URL firmada PUT para subir directo al bucket sin pasar
// por este servidor. El mismo tope de 50MB aplica sobre el tamaño declarado.
func (uc *DocumentUseCase) SignUpload(ctx context.Context, companyID, projectID int64, in dto.SignUploadRequest) (*dto.SignUploadResponse, error) {
	if in.SizeBytes > MaxDocumentSize {
		return nil, domain.ErrFileTooLarge
	}
	project, err := uc.projectRepo.GetByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	objectKey := buildObjectKey(companyID, projectID, in.FileName)
	uploadURL, headers, err := uc.storage.SignedPutURL(objectKey, in.ContentType, uc.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("firmar URL de subida: %w", err)
	}
	return &dto.SignUploadResponse{
		UploadURL: uploadURL,
		Method:    "PUT",
		Headers:   headers,
		ObjectKey: objectKey,
		ExpiresAt: time.Now().Add(uc.urlTTL),
	}, nil
}

// ListByProject lista documentos filtrando por tipo. Tipo vacío o "all"
// devuelve todos los documentos del proyecto.
func (uc *DocumentUseCase) ListByProject(ctx context.Context, companyID, projectID int64, documentType string) (*dto.DocumentListResponse, error) {
	project, err := uc.projectRepo.GetByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if documentType == "all" {
		documentType = ""
	}
	list, err := uc.repo.ListByProject(ctx, projectID, documentType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{Items: items}, nil
}

// Update renombra o reclasifica un documento (solo metadatos).
func (uc *DocumentUseCase) Update(ctx context.Context, companyID, id int64, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.ownedDocument(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		doc.Title = *in.Title
	}
	if in.DocumentType != nil {
		doc.DocumentType = *in.DocumentType
	}
	doc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return uc.toDocumentResponse(doc), nil
}

// Delete elimina metadatos y objeto del bucket.
func (uc *DocumentUseCase) Delete(ctx context.Context, companyID, id int64) error {
	doc, err := uc.ownedDocument(ctx, companyID, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.storage.Delete(ctx, doc.ObjectKey)
	return nil
}

// ownedDocument resuelve el documento verificando tenencia vía su proyecto.
func (uc *DocumentUseCase) ownedDocument(ctx context.Context, companyID, id int64) (*entity.ProjectDocument, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	project, err := uc.projectRepo.GetByID(ctx, companyID, doc.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return doc, nil
}

// buildObjectKey arma la clave del objeto: tenant/proyecto/uuid + extensión
// original. El uuid evita colisiones y filtración de nombres de archivo.
func buildObjectKey(companyID, projectID int64, fileName string) string {
	return fmt.Sprintf("companies/%d/projects/%d/%s%s", companyID, projectID, uuid.New().String(), filepath.Ext(fileName))
}

func (uc *DocumentUseCase) toDocumentResponse(d *entity.ProjectDocument) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	resp := &dto.DocumentResponse{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		Title:        d.Title,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if url, err := uc.storage.SignedGetURL(d.ObjectKey, uc.urlTTL); err == nil {
		resp.URL = url
	}
	return resp
}
