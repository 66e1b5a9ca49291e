package entity

import "time"

// Company representa una empresa de mantenimiento de piscinas (tenant del sistema).
// Todo dato operativo (clientes, proyectos, visitas, finanzas) pertenece a una Company.
type Company struct {
	ID        int64
	Name      string
	TaxID     string // NIT o identificación fiscal de la empresa
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
