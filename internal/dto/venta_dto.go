package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVentaRequest struct {
	// ClienteID is optional: walk-in sales have no customer.
	ClienteID  *string `json:"cliente_id"  validate:"omitempty,uuid"`
	ProductoID string  `json:"producto_id" validate:"required,uuid"`
	Cantidad   int     `json:"cantidad"    validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID       string                 `json:"id"`
	Fecha    string                 `json:"fecha"`
	Cliente  *string                `json:"cliente"`
	Total    decimal.Decimal        `json:"total"`
	Detalles []DetalleVentaResponse `json:"detalles"`
}
