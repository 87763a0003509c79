package service

import (
	"context"
	"testing"

	"inventia/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardTestService(e *testEnv, usuarios *stubUsuarioRepo) *DashboardService {
	// nil cache: the unit tests exercise the aggregation, not Redis
	return NewDashboardService(e.ventas, e.compras, e.productos, e.clientes, e.proveedores, usuarios, e.inventarioSvc, nil)
}

func TestDashboardResumen(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 20, "9.50")
	_, err := e.ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ProductoID: widget.ID.String(),
		Cantidad:   5,
	})
	require.NoError(t, err)

	resumen, err := newDashboardTestService(e, newStubUsuarioRepo()).Resumen(ctx)
	require.NoError(t, err)

	assert.True(t, resumen.TotalVentas.Equal(decimal.RequireFromString("75.00")), "total ventas = %s", resumen.TotalVentas)
	assert.True(t, resumen.TotalCompras.Equal(decimal.RequireFromString("190.00")), "total compras = %s", resumen.TotalCompras)
	assert.Equal(t, int64(1), resumen.TotalProductos)
	assert.Equal(t, int64(0), resumen.TotalClientes)
	assert.Equal(t, int64(1), resumen.TotalProveedores)
	require.Len(t, resumen.VentasRecientes, 1)
	assert.Empty(t, resumen.BajoStock) // stock left at 15
}

func TestDashboardBajoStockIncluyeAgotados(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	bajo := e.seedProducto("Casi agotado", "5.00", "8.00")
	e.seedCompra(bajo.ID, 3, "4.50")
	e.seedProducto("Nunca comprado", "1.00", "2.00") // stock 0 → AGOTADO

	resumen, err := newDashboardTestService(e, newStubUsuarioRepo()).Resumen(ctx)
	require.NoError(t, err)
	assert.Len(t, resumen.BajoStock, 2)
}

func TestDashboardVentasRecientesLimitadas(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 100, "9.50")
	for i := 0; i < ventasRecientesLimite+2; i++ {
		_, err := e.ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
			ProductoID: widget.ID.String(),
			Cantidad:   1,
		})
		require.NoError(t, err)
	}

	resumen, err := newDashboardTestService(e, newStubUsuarioRepo()).Resumen(ctx)
	require.NoError(t, err)
	assert.Len(t, resumen.VentasRecientes, ventasRecientesLimite)
}
