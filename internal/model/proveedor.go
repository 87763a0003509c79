package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor represents a supplier. Compras and Productos that reference one
// survive its deletion: proveedor_id becomes NULL on both.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	RUC       string    `gorm:"column:ruc;not null"`
	Telefono  *string
	Direccion *string
	Correo    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Compras   []Compra   `gorm:"foreignKey:ProveedorID"`
	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
