package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Piscinas-api/internal/domain"
	"github.com/jhoicas/Piscinas-api/internal/domain/entity"
	"github.com/jhoicas/Piscinas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, company_id, name, email, phone, service_address, city,
	pool_type, pool_volume_l, has_heater, has_salt_system, status, notes, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (company_id, name, email, phone, service_address, city,
			pool_type, pool_volume_l, has_heater, has_salt_system, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		client.CompanyID, client.Name, client.Email, client.Phone,
		client.ServiceAddress, client.City, client.PoolType, client.PoolVolumeL,
		client.HasHeater, client.HasSaltSystem, client.Status, client.Notes,
		client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente de la empresa.
func (r *ClientRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_id = $1 AND id = $2`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.ServiceAddress, &c.City,
		&c.PoolType, &c.PoolVolumeL, &c.HasHeater, &c.HasSaltSystem, &c.Status, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ListByCompany lista clientes de la empresa. search llega normalizado
// (minúsculas, sin acentos) y se compara contra nombre, email y dirección
// igualmente normalizados con unaccent.
func (r *ClientRepo) ListByCompany(ctx context.Context, companyID int64, search string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + `
		FROM clients
		WHERE company_id = $1
		  AND ($2 = '' OR lower(unaccent(name)) LIKE '%' || $2 || '%'
			OR lower(unaccent(email)) LIKE '%' || $2 || '%'
			OR lower(unaccent(service_address)) LIKE '%' || $2 || '%')
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.ServiceAddress, &c.City,
			&c.PoolType, &c.PoolVolumeL, &c.HasHeater, &c.HasSaltSystem, &c.Status, &c.Notes,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente de la empresa.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET name = $3, email = $4, phone = $5, service_address = $6, city = $7,
			pool_type = $8, pool_volume_l = $9, has_heater = $10, has_salt_system = $11,
			status = $12, notes = $13, updated_at = $14
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		client.CompanyID, client.ID, client.Name, client.Email, client.Phone,
		client.ServiceAddress, client.City, client.PoolType, client.PoolVolumeL,
		client.HasHeater, client.HasSaltSystem, client.Status, client.Notes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente de la empresa.
func (r *ClientRepo) Delete(ctx context.Context, companyID, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
