package usecase

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

// ObjectStorage puerto hacia el object store de documentos (GCS).
// El binario nunca pasa por la base de datos; aquí solo claves y URLs firmadas.
type ObjectStorage interface {
	// Upload sube el contenido y devuelve la clave de objeto asignada.
	Upload(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) error
	// SignedGetURL devuelve una URL firmada de lectura con vigencia ttl.
	SignedGetURL(objectKey string, ttl time.Duration) (string, error)
	// SignedPutURL devuelve una URL firmada PUT para subida directa al bucket.
	SignedPutURL(objectKey, contentType string, ttl time.Duration) (string, map[string]string, error)
	// Delete elimina el objeto; no es error si ya no existe.
	Delete(ctx context.Context, objectKey string) error
}

// MaintenanceTxRunner ejecuta fn con repos atados a una transacción.
// Completar una visita toca tres registros (la visita, su informe y la
// siguiente recurrencia); van juntos o no va ninguno.
type MaintenanceTxRunner interface {
	Run(ctx context.Context, fn func(
		maintRepo repository.MaintenanceRepository,
		reportRepo repository.ServiceReportRepository,
	) error) error
}
