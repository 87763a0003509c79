package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventia/internal/dto"
	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService struct {
	compras     repository.CompraRepository
	proveedores repository.ProveedorRepository
	productos   repository.ProductoRepository
}

func NewCompraService(
	compras repository.CompraRepository,
	proveedores repository.ProveedorRepository,
	productos repository.ProductoRepository,
) *CompraService {
	return &CompraService{compras: compras, proveedores: proveedores, productos: productos}
}

// Registrar records a purchase of one product at the caller's negotiated
// price, which may differ from the product's reference cost. Unlike a sale
// there is no stock-style precondition: any positive quantity can always be
// received.
func (s *CompraService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de proveedor invalido", ErrValidacion)
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de producto invalido", ErrValidacion)
	}
	if req.Cantidad < 1 {
		return nil, fmt.Errorf("%w: cantidad debe ser positiva", ErrValidacion)
	}
	if req.PrecioUnitario.IsNegative() {
		return nil, fmt.Errorf("%w: precio_unitario no puede ser negativo", ErrValidacion)
	}

	proveedor, err := s.proveedores.FindByID(ctx, proveedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: proveedor %s", ErrNoEncontrado, req.ProveedorID)
		}
		return nil, fmt.Errorf("buscando proveedor: %w", err)
	}
	producto, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %s", ErrNoEncontrado, req.ProductoID)
		}
		return nil, fmt.Errorf("buscando producto: %w", err)
	}

	subtotal := req.PrecioUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad)))

	compra := &model.Compra{
		ProveedorID: &proveedorID,
		FechaCompra: time.Now(),
		Total:       subtotal,
		Detalles: []model.DetalleCompra{{
			ProductoID:     productoID,
			Cantidad:       req.Cantidad,
			PrecioUnitario: req.PrecioUnitario,
			Subtotal:       subtotal,
		}},
	}

	err = runTx(s.compras.DB(), func(tx *gorm.DB) error {
		return s.compras.Create(ctx, tx, compra)
	})
	if err != nil {
		return nil, fmt.Errorf("registrando compra: %w", err)
	}

	return &dto.CompraResponse{
		ID:        compra.ID.String(),
		Fecha:     compra.FechaCompra.Format(fechaFormato),
		Proveedor: proveedor.Nombre,
		Total:     compra.Total,
		Detalles: []dto.DetalleCompraResponse{{
			Producto:       producto.Nombre,
			Cantidad:       req.Cantidad,
			PrecioUnitario: req.PrecioUnitario,
			Subtotal:       subtotal,
		}},
	}, nil
}

func (s *CompraService) Obtener(ctx context.Context, id string) (*dto.CompraResponse, error) {
	compraID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de compra invalido", ErrValidacion)
	}
	c, err := s.compras.FindByID(ctx, compraID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: compra %s", ErrNoEncontrado, id)
		}
		return nil, fmt.Errorf("buscando compra: %w", err)
	}
	return compraToResponse(c), nil
}

func (s *CompraService) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	compras, err := s.compras.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando compras: %w", err)
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		out = append(out, *compraToResponse(&compras[i]))
	}
	return out, nil
}

// Eliminar removes a purchase and its line items. Derived stock drops as a
// consequence; it may go negative if the received units were already sold,
// which the inventory view reports as AGOTADO.
func (s *CompraService) Eliminar(ctx context.Context, id string) error {
	compraID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: id de compra invalido", ErrValidacion)
	}
	if _, err := s.compras.FindByID(ctx, compraID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: compra %s", ErrNoEncontrado, id)
		}
		return fmt.Errorf("buscando compra: %w", err)
	}
	return s.compras.Delete(ctx, compraID)
}

func compraToResponse(c *model.Compra) *dto.CompraResponse {
	resp := &dto.CompraResponse{
		ID:       c.ID.String(),
		Fecha:    c.FechaCompra.Format(fechaFormato),
		Total:    c.Total,
		Detalles: make([]dto.DetalleCompraResponse, 0, len(c.Detalles)),
	}
	if c.Proveedor != nil {
		resp.Proveedor = c.Proveedor.Nombre
	}
	for _, d := range c.Detalles {
		det := dto.DetalleCompraResponse{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			det.Producto = d.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, det)
	}
	return resp
}
