package entity

import "time"

// Client representa un cliente de la empresa: dueño de una o más piscinas
// con dirección de servicio y datos de contacto.
type Client struct {
	ID             int64
	CompanyID      int64
	Name           string
	Email          string
	Phone          string
	ServiceAddress string
	City           string
	// Detalles de la piscina del cliente
	PoolType      string // inground, above_ground, spa, commercial
	PoolVolumeL   int    // volumen en litros; 0 = desconocido
	HasHeater     bool
	HasSaltSystem bool
	Status        string // active, inactive
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
