package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta el código 23505 (unique_violation) de Postgres.
// Los repositorios lo traducen a domain.ErrDuplicate: el número de orden de
// compra por empresa, el SKU de inventario y el provider_message_id de los
// correos dependen de sus constraints únicos para rechazar duplicados.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// Errores ya envueltos en texto plano (p. ej. al correr dentro de una tx).
	return strings.Contains(err.Error(), "23505")
}
