package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the aggregate view served at /v1/dashboard.
type DashboardResponse struct {
	TotalVentas      decimal.Decimal          `json:"total_ventas"`
	TotalCompras     decimal.Decimal          `json:"total_compras"`
	TotalProductos   int64                    `json:"total_productos"`
	TotalClientes    int64                    `json:"total_clientes"`
	TotalProveedores int64                    `json:"total_proveedores"`
	TotalUsuarios    int64                    `json:"total_usuarios"`
	VentasRecientes  []VentaResponse          `json:"ventas_recientes"`
	BajoStock        []ItemInventarioResponse `json:"bajo_stock"`
}
