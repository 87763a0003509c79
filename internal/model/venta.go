package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale. It owns its line items for its whole lifetime: they are
// created in the same transaction and removed with it (ON DELETE CASCADE).
// Total always equals the sum of the line subtotals at creation time.
type Venta struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID  *uuid.UUID      `gorm:"type:uuid;index"`
	FechaVenta time.Time       `gorm:"not null"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

// DetalleVenta is one sale line. PrecioUnitario is an immutable snapshot of
// the product's sale price at the moment of the sale.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }

// Subtotal is Cantidad × PrecioUnitario.
func (d DetalleVenta) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
