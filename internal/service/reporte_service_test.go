package service

import (
	"context"
	"testing"

	"inventia/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReporteTestService(e *testEnv) *ReporteService {
	return NewReporteService(e.ventas, e.compras, e.clientes, e.proveedores, e.inventarioSvc)
}

func TestVentasPDF(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 20, "9.50")
	_, err := e.ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ProductoID: widget.ID.String(),
		Cantidad:   5,
	})
	require.NoError(t, err)

	data, err := newReporteTestService(e).VentasPDF(ctx)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestComprasPDF(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 20, "9.50")

	data, err := newReporteTestService(e).ComprasPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestClientesPDF(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 20, "9.50")
	cliente, err := e.clienteSvc.Crear(ctx, dto.CrearClienteRequest{Nombre: "Ana Torres", Cedula: "0912345678"})
	require.NoError(t, err)
	_, err = e.ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ClienteID:  &cliente.ID,
		ProductoID: widget.ID.String(),
		Cantidad:   2,
	})
	require.NoError(t, err)

	data, err := newReporteTestService(e).ClientesPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestProveedoresPDF(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	_, err := e.proveedorSvc.Crear(ctx, dto.CrearProveedorRequest{Nombre: "Acme SA", RUC: "1790012345001"})
	require.NoError(t, err)

	data, err := newReporteTestService(e).ProveedoresPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestProductosPDF(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 3, "9.50") // leaves it in BAJO_STOCK

	data, err := newReporteTestService(e).ProductosPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

// xlsx files are zip archives, so the output must carry the PK signature.
func TestInventarioExcel(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 20, "9.50")

	data, err := newReporteTestService(e).InventarioExcel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", shortID("a1b2c3d4-e5f6-7890-abcd-ef0123456789"))
	assert.Equal(t, "abc", shortID("abc"))
}
