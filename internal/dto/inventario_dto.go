package dto

import "github.com/shopspring/decimal"

// Estado values for inventory classification.
const (
	EstadoAgotado   = "AGOTADO"    // stock <= 0
	EstadoBajoStock = "BAJO_STOCK" // 0 < stock <= umbral
	EstadoNormal    = "NORMAL"     // stock > umbral
)

// ItemInventarioResponse is one product line in the inventory valuation.
type ItemInventarioResponse struct {
	ProductoID   string          `json:"producto_id"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"`
	Stock        int             `json:"stock"`
	// Valor = Stock × PrecioCompra (the stored reference cost).
	Valor  decimal.Decimal `json:"valor"`
	Estado string          `json:"estado"`
}

type InventarioResponse struct {
	Items              []ItemInventarioResponse `json:"items"`
	ValorTotal         decimal.Decimal          `json:"valor_total"`
	TotalProductos     int                      `json:"total_productos"`
	ProductosBajoStock int                      `json:"productos_bajo_stock"`
	ProductosSinStock  int                      `json:"productos_sin_stock"`
}

type StockResponse struct {
	ProductoID string `json:"producto_id"`
	Stock      int    `json:"stock"`
}
