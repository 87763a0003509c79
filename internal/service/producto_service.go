package service

import (
	"context"
	"errors"
	"fmt"

	"inventia/internal/dto"
	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoService struct {
	productos   repository.ProductoRepository
	proveedores repository.ProveedorRepository
	ventas      repository.VentaRepository
	compras     repository.CompraRepository
	inventario  *InventarioService
}

func NewProductoService(
	productos repository.ProductoRepository,
	proveedores repository.ProveedorRepository,
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
	inventario *InventarioService,
) *ProductoService {
	return &ProductoService{
		productos:   productos,
		proveedores: proveedores,
		ventas:      ventas,
		compras:     compras,
		inventario:  inventario,
	}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.PrecioCompra.IsNegative() || req.PrecioVenta.IsNegative() {
		return nil, fmt.Errorf("%w: los precios no pueden ser negativos", ErrValidacion)
	}

	p := &model.Producto{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
	}
	if req.ProveedorID != nil {
		proveedorID, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de proveedor invalido", ErrValidacion)
		}
		if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
			return nil, fmt.Errorf("%w: proveedor %s", ErrNoEncontrado, *req.ProveedorID)
		}
		p.ProveedorID = &proveedorID
	}

	if err := s.productos.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creando producto: %w", err)
	}
	// a freshly created product has no movements yet
	return s.toResponse(p, 0), nil
}

func (s *ProductoService) Obtener(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	stock, err := s.inventario.Stock(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, stock), nil
}

func (s *ProductoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		stock, err := s.inventario.Stock(ctx, productos[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *s.toResponse(&productos[i], stock))
	}
	return out, nil
}

// Actualizar applies a partial update: only the fields present in the
// request change. Stock is never writable; it only moves via compras and
// ventas.
func (s *ProductoService) Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioCompra != nil {
		if req.PrecioCompra.IsNegative() {
			return nil, fmt.Errorf("%w: precio_compra no puede ser negativo", ErrValidacion)
		}
		p.PrecioCompra = *req.PrecioCompra
	}
	if req.PrecioVenta != nil {
		if req.PrecioVenta.IsNegative() {
			return nil, fmt.Errorf("%w: precio_venta no puede ser negativo", ErrValidacion)
		}
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.ProveedorID != nil {
		proveedorID, err := uuid.Parse(*req.ProveedorID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de proveedor invalido", ErrValidacion)
		}
		if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
			return nil, fmt.Errorf("%w: proveedor %s", ErrNoEncontrado, *req.ProveedorID)
		}
		p.ProveedorID = &proveedorID
	}

	if err := s.productos.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizando producto: %w", err)
	}
	stock, err := s.inventario.Stock(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(p, stock), nil
}

// Eliminar removes a product unless any sale or purchase line references it.
// Deleting a referenced product would silently rewrite history, so it is
// refused instead.
func (s *ProductoService) Eliminar(ctx context.Context, id string) error {
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	enVentas, err := s.ventas.HasDetalleForProducto(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("verificando ventas: %w", err)
	}
	if enVentas {
		return fmt.Errorf("%w: el producto tiene ventas registradas", ErrConflictoReferencial)
	}
	enCompras, err := s.compras.HasDetalleForProducto(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("verificando compras: %w", err)
	}
	if enCompras {
		return fmt.Errorf("%w: el producto tiene compras registradas", ErrConflictoReferencial)
	}

	return s.productos.Delete(ctx, p.ID)
}

func (s *ProductoService) find(ctx context.Context, id string) (*model.Producto, error) {
	productoID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de producto invalido", ErrValidacion)
	}
	p, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %s", ErrNoEncontrado, id)
		}
		return nil, fmt.Errorf("buscando producto: %w", err)
	}
	return p, nil
}

func (s *ProductoService) toResponse(p *model.Producto, stock int) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		Stock:        stock,
	}
	if p.ProveedorID != nil {
		idStr := p.ProveedorID.String()
		resp.ProveedorID = &idStr
	}
	return resp
}
