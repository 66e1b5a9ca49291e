package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, project_id, title, document_type, file_name, object_key,
	content_type, size_bytes, uploaded_by, created_at, updated_at`

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste los metadatos de un documento y asigna su ID.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.ProjectDocument) error {
	query := `
		INSERT INTO project_documents (project_id, title, document_type, file_name, object_key,
			content_type, size_bytes, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		doc.ProjectID, doc.Title, doc.DocumentType, doc.FileName, doc.ObjectKey,
		doc.ContentType, doc.SizeBytes, doc.UploadedBy, doc.CreatedAt, doc.UpdatedAt,
	).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(ctx context.Context, id int64) (*entity.ProjectDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM project_documents WHERE id = $1`
	var d entity.ProjectDocument
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.ProjectID, &d.Title, &d.DocumentType, &d.FileName, &d.ObjectKey,
		&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByProject lista documentos del proyecto; documentType vacío lista todos.
func (r *DocumentRepo) ListByProject(ctx context.Context, projectID int64, documentType string) ([]*entity.ProjectDocument, error) {
	query := `SELECT ` + documentColumns + `
		FROM project_documents
		WHERE project_id = $1 AND ($2 = '' OR document_type = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, projectID, documentType)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectDocument
	for rows.Next() {
		var d entity.ProjectDocument
		if err := rows.Scan(
			&d.ID, &d.ProjectID, &d.Title, &d.DocumentType, &d.FileName, &d.ObjectKey,
			&d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza los metadatos de un documento.
func (r *DocumentRepo) Update(ctx context.Context, doc *entity.ProjectDocument) error {
	query := `
		UPDATE project_documents SET title = $2, document_type = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, doc.ID, doc.Title, doc.DocumentType, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Delete elimina los metadatos de un documento.
func (r *DocumentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM project_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
