package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleTecnico = "tecnico"
	RoleOficina = "oficina"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           int64
	CompanyID    int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tecnico, oficina
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
