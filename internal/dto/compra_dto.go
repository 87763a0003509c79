package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarCompraRequest struct {
	ProveedorID string `json:"proveedor_id" validate:"required,uuid"`
	ProductoID  string `json:"producto_id"  validate:"required,uuid"`
	Cantidad    int    `json:"cantidad"     validate:"required,min=1"`
	// PrecioUnitario is the negotiated price for this purchase, not the
	// product's reference cost.
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID        string                  `json:"id"`
	Fecha     string                  `json:"fecha"`
	Proveedor string                  `json:"proveedor"`
	Total     decimal.Decimal         `json:"total"`
	Detalles  []DetalleCompraResponse `json:"detalles"`
}
