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
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const fechaFormato = "2006-01-02 15:04"

type VentaService struct {
	ventas     repository.VentaRepository
	clientes   repository.ClienteRepository
	productos  repository.ProductoRepository
	inventario *InventarioService
	alertas    AlertaDispatcher // nil disables low-stock alerts
}

func NewVentaService(
	ventas repository.VentaRepository,
	clientes repository.ClienteRepository,
	productos repository.ProductoRepository,
	inventario *InventarioService,
	alertas AlertaDispatcher,
) *VentaService {
	return &VentaService{
		ventas:     ventas,
		clientes:   clientes,
		productos:  productos,
		inventario: inventario,
		alertas:    alertas,
	}
}

// Registrar records a sale of one product. The unit price is snapshotted
// from the product's current sale price; later price changes never touch
// recorded sales. On any failure nothing is written: there is no partial
// venta and no orphan detalle.
//
// The stock check reads the derived ledger before writing. Two concurrent
// sales of the same scarce product can both pass the check; that window is a
// known limitation of the read-then-write sequence.
func (s *VentaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de producto invalido", ErrValidacion)
	}
	if req.Cantidad < 1 {
		return nil, fmt.Errorf("%w: cantidad debe ser positiva", ErrValidacion)
	}

	producto, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %s", ErrNoEncontrado, req.ProductoID)
		}
		return nil, fmt.Errorf("buscando producto: %w", err)
	}

	var cliente *model.Cliente
	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de cliente invalido", ErrValidacion)
		}
		cliente, err = s.clientes.FindByID(ctx, clienteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: cliente %s", ErrNoEncontrado, *req.ClienteID)
			}
			return nil, fmt.Errorf("buscando cliente: %w", err)
		}
	}

	stock, err := s.inventario.Stock(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if stock < req.Cantidad {
		return nil, fmt.Errorf("%w: disponible %d, solicitado %d", ErrStockInsuficiente, stock, req.Cantidad)
	}

	precio := producto.PrecioVenta
	total := precio.Mul(decimal.NewFromInt(int64(req.Cantidad)))

	venta := &model.Venta{
		FechaVenta: time.Now(),
		Total:      total,
		Detalles: []model.DetalleVenta{{
			ProductoID:     productoID,
			Cantidad:       req.Cantidad,
			PrecioUnitario: precio,
		}},
	}
	if cliente != nil {
		venta.ClienteID = &cliente.ID
	}

	err = runTx(s.ventas.DB(), func(tx *gorm.DB) error {
		return s.ventas.Create(ctx, tx, venta)
	})
	if err != nil {
		return nil, fmt.Errorf("registrando venta: %w", err)
	}

	s.notificarStockBajo(ctx, producto, stock-req.Cantidad)

	resp := &dto.VentaResponse{
		ID:    venta.ID.String(),
		Fecha: venta.FechaVenta.Format(fechaFormato),
		Total: venta.Total,
		Detalles: []dto.DetalleVentaResponse{{
			Producto:       producto.Nombre,
			Cantidad:       req.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       total,
		}},
	}
	if cliente != nil {
		resp.Cliente = &cliente.Nombre
	}
	return resp, nil
}

func (s *VentaService) Obtener(ctx context.Context, id string) (*dto.VentaResponse, error) {
	ventaID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de venta invalido", ErrValidacion)
	}
	v, err := s.ventas.FindByID(ctx, ventaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: venta %s", ErrNoEncontrado, id)
		}
		return nil, fmt.Errorf("buscando venta: %w", err)
	}
	return ventaToResponse(v), nil
}

func (s *VentaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.ventas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando ventas: %w", err)
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out, nil
}

// Eliminar removes a sale and its line items (ON DELETE CASCADE). The
// derived stock of the sold products goes back up as a consequence, with no
// compensating writes needed.
func (s *VentaService) Eliminar(ctx context.Context, id string) error {
	ventaID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: id de venta invalido", ErrValidacion)
	}
	if _, err := s.ventas.FindByID(ctx, ventaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: venta %s", ErrNoEncontrado, id)
		}
		return fmt.Errorf("buscando venta: %w", err)
	}
	return s.ventas.Delete(ctx, ventaID)
}

func (s *VentaService) notificarStockBajo(ctx context.Context, p *model.Producto, restante int) {
	if s.alertas == nil || restante > UmbralStockBajo {
		return
	}
	alerta := AlertaStock{
		ProductoID: p.ID.String(),
		Nombre:     p.Nombre,
		Stock:      restante,
		Estado:     EstadoStock(restante),
	}
	if err := s.alertas.Dispatch(ctx, alerta); err != nil {
		log.Warn().Err(err).Str("producto", p.Nombre).Msg("no se pudo encolar alerta de stock")
	}
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:       v.ID.String(),
		Fecha:    v.FechaVenta.Format(fechaFormato),
		Total:    v.Total,
		Detalles: make([]dto.DetalleVentaResponse, 0, len(v.Detalles)),
	}
	if v.Cliente != nil {
		resp.Cliente = &v.Cliente.Nombre
	}
	for _, d := range v.Detalles {
		det := dto.DetalleVentaResponse{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal(),
		}
		if d.Producto != nil {
			det.Producto = d.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, det)
	}
	return resp
}
