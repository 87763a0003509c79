package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Stock is NOT a column: it is derived from the
// purchase and sale line-item ledgers (see service.InventarioService).
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	// PrecioCompra is the reference cost used for inventory valuation.
	// Individual purchases may be registered at a different negotiated price.
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ProveedorID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:SET NULL"`
}

func (Producto) TableName() string { return "productos" }
