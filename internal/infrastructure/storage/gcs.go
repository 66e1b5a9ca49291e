// Package storage implementa el object store de documentos sobre
// Google Cloud Storage con URLs firmadas V4.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iamcredentials/v1"

	"github.com/jhoicas/Piscinas-api/internal/application/usecase"
	"github.com/jhoicas/Piscinas-api/pkg/config"
)

var _ usecase.ObjectStorage = (*GCS)(nil)

// GCS adaptador de ObjectStorage sobre un bucket de Google Cloud Storage.
// Firma con la llave del service account si está configurada; si no, delega
// la firma al API de IAM credentials (útil en Cloud Run, sin llave local).
type GCS struct {
	client    *storage.Client
	bucket    string
	accessID  string
	signKey   []byte
	signBytes func([]byte) ([]byte, error)
}

// NewGCS construye el adaptador. Usa ADC para autenticar el cliente.
func NewGCS(ctx context.Context, cfg config.StorageConfig) (*GCS, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("GCS_BUCKET es obligatorio")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("crear cliente GCS: %w", err)
	}

	g := &GCS{client: client, bucket: cfg.Bucket, accessID: cfg.SignerEmail}
	if cfg.SignerPrivateKey != "" {
		g.signKey = []byte(strings.ReplaceAll(cfg.SignerPrivateKey, "\\n", "\n"))
	} else {
		sb, err := iamSignBytes(ctx, cfg.SignerEmail)
		if err != nil {
			client.Close()
			return nil, err
		}
		g.signBytes = sb
	}
	return g, nil
}

// Upload sube el contenido al bucket bajo objectKey.
func (g *GCS) Upload(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) error {
	w := g.client.Bucket(g.bucket).Object(objectKey).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.CopyN(w, r, size); err != nil && !errors.Is(err, io.EOF) {
		_ = w.Close()
		return fmt.Errorf("subir objeto %s: %w", objectKey, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("cerrar escritura de %s: %w", objectKey, err)
	}
	return nil
}

// SignedGetURL devuelve una URL firmada de lectura con vigencia ttl.
func (g *GCS) SignedGetURL(objectKey string, ttl time.Duration) (string, error) {
	return storage.SignedURL(g.bucket, objectKey, g.signOptions("GET", "", ttl))
}

// SignedPutURL devuelve una URL firmada PUT para subida directa al bucket
// junto con los headers que el cliente debe enviar.
func (g *GCS) SignedPutURL(objectKey, contentType string, ttl time.Duration) (string, map[string]string, error) {
	url, err := storage.SignedURL(g.bucket, objectKey, g.signOptions("PUT", contentType, ttl))
	if err != nil {
		return "", nil, err
	}
	return url, map[string]string{"Content-Type": contentType}, nil
}

// Delete elimina el objeto; no es error si ya no existe.
func (g *GCS) Delete(ctx context.Context, objectKey string) error {
	err := g.client.Bucket(g.bucket).Object(objectKey).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("eliminar objeto %s: %w", objectKey, err)
	}
	return nil
}

// Close libera el cliente.
func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) signOptions(method, contentType string, ttl time.Duration) *storage.SignedURLOptions {
	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         method,
		Expires:        time.Now().Add(ttl),
		GoogleAccessID: g.accessID,
	}
	if contentType != "" {
		opts.ContentType = contentType
	}
	if g.signKey != nil {
		opts.PrivateKey = g.signKey
	} else {
		opts.SignBytes = g.signBytes
	}
	return opts
}

// iamSignBytes construye una función de firma vía el API de IAM credentials.
func iamSignBytes(ctx context.Context, email string) (func([]byte) ([]byte, error), error) {
	if email == "" {
		return nil, errors.New("GCS_SIGNER_EMAIL es obligatorio cuando no hay llave privada")
	}
	svc, err := iamcredentials.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("crear servicio iamcredentials: %w", err)
	}
	resource := fmt.Sprintf("projects/-/serviceAccounts/%s", email)
	return func(data []byte) ([]byte, error) {
		req := &iamcredentials.SignBlobRequest{
			Payload: base64.StdEncoding.EncodeToString(data),
		}
		resp, err := svc.Projects.ServiceAccounts.SignBlob(resource, req).Do()
		if err != nil {
			return nil, err
		}
		return base64.StdEncoding.DecodeString(resp.SignedBlob)
	}, nil
}
