package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a purchase from a supplier. Line items are created atomically
// with the parent and cascade on delete, like Venta. ProveedorID is required
// at creation but nullable so the row survives its supplier's deletion.
type Compra struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID *uuid.UUID      `gorm:"type:uuid;index"`
	FechaCompra time.Time       `gorm:"not null"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID;constraint:OnDelete:SET NULL"`
	Detalles  []DetalleCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

func (Compra) TableName() string { return "compras" }

// DetalleCompra is one purchase line. PrecioUnitario is the negotiated price
// for this purchase, which may differ from the product's reference cost;
// Subtotal is stored as Cantidad × PrecioUnitario.
type DetalleCompra struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompra) TableName() string { return "detalle_compras" }
