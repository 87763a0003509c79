package service

import (
	"context"
	"fmt"

	"inventia/internal/dto"
	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UmbralStockBajo is the inclusive threshold below which a product with
// remaining stock is flagged BAJO_STOCK.
const UmbralStockBajo = 5

// EstadoStock classifies a derived stock level.
func EstadoStock(stock int) string {
	switch {
	case stock <= 0:
		return dto.EstadoAgotado
	case stock <= UmbralStockBajo:
		return dto.EstadoBajoStock
	default:
		return dto.EstadoNormal
	}
}

// InventarioService computes stock and valuation on demand. There is no
// stored stock counter anywhere: the source of truth is the pair of
// line-item ledgers (detalle_compras, detalle_ventas).
type InventarioService struct {
	productos repository.ProductoRepository
	ventas    repository.VentaRepository
	compras   repository.CompraRepository
}

func NewInventarioService(
	productos repository.ProductoRepository,
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
) *InventarioService {
	return &InventarioService{productos: productos, ventas: ventas, compras: compras}
}

// Stock returns SUM(purchased) − SUM(sold) for one product. A product with
// no movements has stock 0.
func (s *InventarioService) Stock(ctx context.Context, productoID uuid.UUID) (int, error) {
	compradas, err := s.compras.SumCantidadByProducto(ctx, productoID)
	if err != nil {
		return 0, fmt.Errorf("sumando compras: %w", err)
	}
	vendidas, err := s.ventas.SumCantidadByProducto(ctx, productoID)
	if err != nil {
		return 0, fmt.Errorf("sumando ventas: %w", err)
	}
	return int(compradas - vendidas), nil
}

// StockProducto resolves the derived stock of one product by id.
func (s *InventarioService) StockProducto(ctx context.Context, id string) (*dto.StockResponse, error) {
	productoID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de producto invalido", ErrValidacion)
	}
	if _, err := s.productos.FindByID(ctx, productoID); err != nil {
		return nil, fmt.Errorf("%w: producto %s", ErrNoEncontrado, id)
	}
	stock, err := s.Stock(ctx, productoID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ProductoID: id, Stock: stock}, nil
}

// Listar builds the full inventory valuation: every product with its derived
// stock, its value at reference cost and its classification.
func (s *InventarioService) Listar(ctx context.Context) (*dto.InventarioResponse, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}

	resp := &dto.InventarioResponse{
		Items:      make([]dto.ItemInventarioResponse, 0, len(productos)),
		ValorTotal: decimal.Zero,
	}
	for i := range productos {
		item, err := s.item(ctx, &productos[i])
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, item)
		resp.ValorTotal = resp.ValorTotal.Add(item.Valor)
		switch item.Estado {
		case dto.EstadoAgotado:
			resp.ProductosSinStock++
		case dto.EstadoBajoStock:
			resp.ProductosBajoStock++
		}
	}
	resp.TotalProductos = len(resp.Items)
	return resp, nil
}

// BajoStock returns the products whose classification is not NORMAL, i.e.
// both BAJO_STOCK and AGOTADO items.
func (s *InventarioService) BajoStock(ctx context.Context) ([]dto.ItemInventarioResponse, error) {
	inv, err := s.Listar(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemInventarioResponse, 0)
	for _, item := range inv.Items {
		if item.Estado != dto.EstadoNormal {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *InventarioService) item(ctx context.Context, p *model.Producto) (dto.ItemInventarioResponse, error) {
	stock, err := s.Stock(ctx, p.ID)
	if err != nil {
		return dto.ItemInventarioResponse{}, err
	}
	// valuation uses the stored reference cost, not per-purchase prices
	valor := p.PrecioCompra.Mul(decimal.NewFromInt(int64(stock)))
	return dto.ItemInventarioResponse{
		ProductoID:   p.ID.String(),
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		Stock:        stock,
		Valor:        valor,
		Estado:       EstadoStock(stock),
	}, nil
}
