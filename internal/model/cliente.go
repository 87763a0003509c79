package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente represents a customer. Ventas reference it optionally.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Cedula    string    `gorm:"not null"`
	Telefono  *string
	Direccion *string
	Correo    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Ventas []Venta `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
