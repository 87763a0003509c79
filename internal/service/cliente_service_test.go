package service

import (
	"context"
	"errors"
	"testing"

	"inventia/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearYActualizarCliente(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	telefono := "0991234567"
	resp, err := e.clienteSvc.Crear(ctx, dto.CrearClienteRequest{
		Nombre:   "Ana Torres",
		Cedula:   "1712345678",
		Telefono: &telefono,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", resp.Nombre)

	actualizado, err := e.clienteSvc.Actualizar(ctx, resp.ID, dto.CrearClienteRequest{
		Nombre: "Ana Torres Vda.",
		Cedula: "1712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres Vda.", actualizado.Nombre)
	assert.Nil(t, actualizado.Telefono)
}

func TestObtenerClienteInexistente(t *testing.T) {
	e := newTestEnv()
	_, err := e.clienteSvc.Obtener(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, ErrNoEncontrado))
}

func TestEliminarClienteSinVentas(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	resp, err := e.clienteSvc.Crear(ctx, dto.CrearClienteRequest{Nombre: "Ana", Cedula: "1712345678"})
	require.NoError(t, err)
	require.NoError(t, e.clienteSvc.Eliminar(ctx, resp.ID))
	assert.Empty(t, e.clientes.clientes)
}

func TestEliminarClienteConVentas(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	widget := e.seedProducto("Widget", "10.00", "15.00")
	e.seedCompra(widget.ID, 10, "9.50")

	cliente, err := e.clienteSvc.Crear(ctx, dto.CrearClienteRequest{Nombre: "Ana", Cedula: "1712345678"})
	require.NoError(t, err)

	_, err = e.ventaSvc.Registrar(ctx, dto.RegistrarVentaRequest{
		ClienteID:  &cliente.ID,
		ProductoID: widget.ID.String(),
		Cantidad:   1,
	})
	require.NoError(t, err)

	err = e.clienteSvc.Eliminar(ctx, cliente.ID)
	assert.True(t, errors.Is(err, ErrConflictoReferencial))
	assert.Len(t, e.clientes.clientes, 1)
}
