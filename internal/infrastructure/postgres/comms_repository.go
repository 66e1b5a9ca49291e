package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)
var _ repository.EmailRepository = (*EmailRepo)(nil)

const providerColumns = `id, company_id, name, type, base_url, credentials_ref, status,
	last_sync_at, created_at, updated_at`

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de persistencia para proveedores de comunicaciones.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un proveedor y asigna su ID.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.CommunicationProvider) error {
	query := `
		INSERT INTO communication_providers (company_id, name, type, base_url, credentials_ref,
			status, last_sync_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.CompanyID, p.Name, p.Type, p.BaseURL, p.CredentialsRef,
		p.Status, p.LastSyncAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor de la empresa.
func (r *ProviderRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.CommunicationProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM communication_providers WHERE company_id = $1 AND id = $2`
	var p entity.CommunicationProvider
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Type, &p.BaseURL, &p.CredentialsRef,
		&p.Status, &p.LastSyncAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los proveedores de la empresa.
func (r *ProviderRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.CommunicationProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM communication_providers WHERE company_id = $1 ORDER BY name`
	return r.scanList(ctx, query, companyID)
}

// ListActive lista los proveedores activos de todas las empresas (para el cron de sync).
func (r *ProviderRepo) ListActive(ctx context.Context) ([]*entity.CommunicationProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM communication_providers WHERE status = 'active' ORDER BY id`
	return r.scanList(ctx, query)
}

// Update actualiza un proveedor.
func (r *ProviderRepo) Update(ctx context.Context, p *entity.CommunicationProvider) error {
	query := `
		UPDATE communication_providers SET name = $2, base_url = $3, credentials_ref = $4,
			status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.BaseURL, p.CredentialsRef, p.Status, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// SetLastSync registra la última sincronización exitosa.
func (r *ProviderRepo) SetLastSync(ctx context.Context, id int64, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE communication_providers SET last_sync_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("set provider last sync: %w", err)
	}
	return nil
}

// Delete elimina un proveedor de la empresa.
func (r *ProviderRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM communication_providers WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	return nil
}

func (r *ProviderRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.CommunicationProvider, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommunicationProvider
	for rows.Next() {
		var p entity.CommunicationProvider
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.Type, &p.BaseURL, &p.CredentialsRef,
			&p.Status, &p.LastSyncAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

const emailColumns = `id, company_id, provider_id, provider_message_id, direction,
	from_address, to_address, subject, body, thread_id, sent_at, created_at`

// EmailRepo implementación del puerto EmailRepository sobre PostgreSQL.
type EmailRepo struct {
	q Querier
}

// NewEmailRepository construye el adaptador de persistencia para mensajes.
func NewEmailRepository(q Querier) *EmailRepo {
	return &EmailRepo{q: q}
}

// Create persiste un mensaje y asigna su ID.
func (r *EmailRepo) Create(ctx context.Context, e *entity.Email) error {
	query := `
		INSERT INTO emails (company_id, provider_id, provider_message_id, direction,
			from_address, to_address, subject, body, thread_id, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.CompanyID, e.ProviderID, e.ProviderMessageID, e.Direction,
		e.FromAddress, e.ToAddress, e.Subject, e.Body, e.ThreadID, e.SentAt, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert email: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje de la empresa.
func (r *EmailRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE company_id = $1 AND id = $2`
	var e entity.Email
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&e.ID, &e.CompanyID, &e.ProviderID, &e.ProviderMessageID, &e.Direction,
		&e.FromAddress, &e.ToAddress, &e.Subject, &e.Body, &e.ThreadID, &e.SentAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get email: %w", err)
	}
	return &e, nil
}

// ListByCompany lista mensajes de la empresa; providerID = 0 lista todos.
func (r *EmailRepo) ListByCompany(ctx context.Context, companyID, providerID int64, limit, offset int) ([]*entity.Email, error) {
	query := `SELECT ` + emailColumns + `
		FROM emails
		WHERE company_id = $1 AND ($2 = 0 OR provider_id = $2)
		ORDER BY sent_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, providerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()
	var list []*entity.Email
	for rows.Next() {
		var e entity.Email
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.ProviderID, &e.ProviderMessageID, &e.Direction,
			&e.FromAddress, &e.ToAddress, &e.Subject, &e.Body, &e.ThreadID, &e.SentAt, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ExistsByProviderMessageID indica si el mensaje ya fue agregado (dedupe de sync).
func (r *EmailRepo) ExistsByProviderMessageID(ctx context.Context, providerID int64, providerMessageID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM emails WHERE provider_id = $1 AND provider_message_id = $2)`,
		providerID, providerMessageID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}
