package dto

import "time"

// UploadDocumentRequest metadatos que acompañan al archivo multipart.
type UploadDocumentRequest struct {
	Title        string `form:"title" validate:"required,min=1,max=200"`
	DocumentType string `form:"document_type" validate:"omitempty,oneof=plan photo permit contract other"`
}

// UpdateDocumentRequest entrada para renombrar/reclasificar un documento.
type UpdateDocumentRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	DocumentType *string `json:"document_type" validate:"omitempty,oneof=plan photo permit contract other"`
}

// DocumentResponse salida de un documento. URL es una URL firmada de lectura
// con vigencia corta; el cliente no accede al bucket directamente.
type DocumentResponse struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	Title        string    `json:"title"`
	DocumentType string    `json:"document_type"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocumentListResponse documentos de un proyecto (filtrados por tipo).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
}

// SignUploadRequest petición de URL firmada para subir directo al bucket.
type SignUploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,gt=0"`
}

// SignUploadResponse URL firmada PUT y la clave de objeto resultante.
type SignUploadResponse struct {
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	ObjectKey string            `json:"object_key"`
	ExpiresAt time.Time         `json:"expires_at"`
}
