package service

import (
	"context"
	"fmt"
	"strings"

	"inventia/internal/infra"
	"inventia/internal/model"
	"inventia/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// clienteConsumidorFinal labels walk-in sales on reports.
const clienteConsumidorFinal = "Consumidor final"

// ReporteService builds the downloadable report files from live data. Every
// report reflects the ledgers at the moment of the request; nothing is
// pre-rendered or cached.
type ReporteService struct {
	ventas      repository.VentaRepository
	compras     repository.CompraRepository
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	inventario  *InventarioService
}

func NewReporteService(
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	inventario *InventarioService,
) *ReporteService {
	return &ReporteService{
		ventas:      ventas,
		compras:     compras,
		clientes:    clientes,
		proveedores: proveedores,
		inventario:  inventario,
	}
}

// VentasPDF renders the complete sales history as a PDF table.
func (s *ReporteService) VentasPDF(ctx context.Context) ([]byte, error) {
	ventas, err := s.ventas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando ventas: %w", err)
	}
	total, err := s.ventas.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sumando ventas: %w", err)
	}

	filas := make([][]string, 0, len(ventas))
	for i := range ventas {
		v := &ventas[i]
		cliente := clienteConsumidorFinal
		if v.Cliente != nil {
			cliente = v.Cliente.Nombre
		}
		filas = append(filas, []string{
			shortID(v.ID.String()),
			v.FechaVenta.Format(fechaFormato),
			infra.Truncar(cliente, 26),
			infra.Truncar(resumenDetallesVenta(v.Detalles), 44),
			"$" + v.Total.StringFixed(2),
		})
	}

	return infra.GenerarReportePDF(infra.TablaPDF{
		Titulo:        "Reporte de Ventas",
		Cabeceras:     []string{"ID", "Fecha", "Cliente", "Productos", "Total"},
		Anchos:        []float64{22, 32, 42, 64, 30},
		Alinear:       []string{"C", "C", "L", "L", "R"},
		Filas:         filas,
		TotalEtiqueta: "TOTAL GENERAL:",
		TotalValor:    "$" + total.StringFixed(2),
	})
}

// ComprasPDF renders the purchase history, supplier column instead of
// customer.
func (s *ReporteService) ComprasPDF(ctx context.Context) ([]byte, error) {
	compras, err := s.compras.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando compras: %w", err)
	}
	total, err := s.compras.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sumando compras: %w", err)
	}

	filas := make([][]string, 0, len(compras))
	for i := range compras {
		c := &compras[i]
		proveedor := "Sin proveedor"
		if c.Proveedor != nil {
			proveedor = c.Proveedor.Nombre
		}
		filas = append(filas, []string{
			shortID(c.ID.String()),
			c.FechaCompra.Format(fechaFormato),
			infra.Truncar(proveedor, 26),
			infra.Truncar(resumenDetallesCompra(c.Detalles), 44),
			"$" + c.Total.StringFixed(2),
		})
	}

	return infra.GenerarReportePDF(infra.TablaPDF{
		Titulo:        "Reporte de Compras",
		Cabeceras:     []string{"ID", "Fecha", "Proveedor", "Productos", "Total"},
		Anchos:        []float64{22, 32, 42, 64, 30},
		Alinear:       []string{"C", "C", "L", "L", "R"},
		Filas:         filas,
		TotalEtiqueta: "TOTAL GENERAL:",
		TotalValor:    "$" + total.StringFixed(2),
	})
}

// ClientesPDF lists every customer with their purchase count and lifetime
// spend.
func (s *ReporteService) ClientesPDF(ctx context.Context) ([]byte, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando clientes: %w", err)
	}
	ventas, err := s.ventas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando ventas: %w", err)
	}

	// Per-customer aggregates in one pass over the sales history.
	numVentas := make(map[uuid.UUID]int)
	gastado := make(map[uuid.UUID]decimal.Decimal)
	for i := range ventas {
		v := &ventas[i]
		if v.ClienteID == nil {
			continue
		}
		numVentas[*v.ClienteID]++
		gastado[*v.ClienteID] = gastado[*v.ClienteID].Add(v.Total)
	}

	conVentas := 0
	filas := make([][]string, 0, len(clientes))
	for i := range clientes {
		c := &clientes[i]
		if numVentas[c.ID] > 0 {
			conVentas++
		}
		correo := "Sin correo"
		if c.Correo != nil {
			correo = *c.Correo
		}
		filas = append(filas, []string{
			shortID(c.ID.String()),
			infra.Truncar(c.Nombre, 26),
			c.Cedula,
			infra.Truncar(correo, 30),
			fmt.Sprintf("%d", numVentas[c.ID]),
			"$" + gastado[c.ID].StringFixed(2),
		})
	}

	return infra.GenerarReportePDF(infra.TablaPDF{
		Titulo:    "Reporte de Clientes",
		Resumen:   fmt.Sprintf("Total Clientes: %d | Clientes con Ventas: %d", len(clientes), conVentas),
		Cabeceras: []string{"ID", "Nombre", "Cédula", "Correo", "Compras", "Total Gastado"},
		Anchos:    []float64{22, 42, 28, 48, 20, 30},
		Alinear:   []string{"C", "L", "C", "L", "C", "R"},
		Filas:     filas,
	})
}

// ProveedoresPDF lists every registered supplier.
func (s *ReporteService) ProveedoresPDF(ctx context.Context) ([]byte, error) {
	proveedores, err := s.proveedores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando proveedores: %w", err)
	}

	filas := make([][]string, 0, len(proveedores))
	for i := range proveedores {
		p := &proveedores[i]
		telefono, correo, direccion := "N/A", "Sin correo", "Sin dirección"
		if p.Telefono != nil {
			telefono = *p.Telefono
		}
		if p.Correo != nil {
			correo = *p.Correo
		}
		if p.Direccion != nil {
			direccion = *p.Direccion
		}
		filas = append(filas, []string{
			shortID(p.ID.String()),
			infra.Truncar(p.Nombre, 24),
			p.RUC,
			telefono,
			infra.Truncar(correo, 26),
			infra.Truncar(direccion, 30),
		})
	}

	return infra.GenerarReportePDF(infra.TablaPDF{
		Titulo:    "Reporte de Proveedores",
		Resumen:   fmt.Sprintf("Total Proveedores Registrados: %d", len(proveedores)),
		Cabeceras: []string{"ID", "Nombre", "RUC", "Teléfono", "Correo", "Dirección"},
		Anchos:    []float64{20, 38, 28, 24, 40, 40},
		Alinear:   []string{"C", "L", "C", "C", "L", "L"},
		Filas:     filas,
	})
}

// ProductosPDF renders the valuation table (same data as the Excel report)
// as a PDF.
func (s *ReporteService) ProductosPDF(ctx context.Context) ([]byte, error) {
	inv, err := s.inventario.Listar(ctx)
	if err != nil {
		return nil, err
	}

	filas := make([][]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		filas = append(filas, []string{
			shortID(item.ProductoID),
			infra.Truncar(item.Nombre, 26),
			"$" + item.PrecioCompra.StringFixed(2),
			"$" + item.PrecioVenta.StringFixed(2),
			fmt.Sprintf("%d", item.Stock),
			"$" + item.Valor.StringFixed(2),
			item.Estado,
		})
	}

	return infra.GenerarReportePDF(infra.TablaPDF{
		Titulo: "Reporte de Productos",
		Resumen: fmt.Sprintf("Total Productos: %d | Bajo Stock: %d | Agotados: %d",
			inv.TotalProductos, inv.ProductosBajoStock, inv.ProductosSinStock),
		Cabeceras:     []string{"ID", "Nombre", "P. Compra", "P. Venta", "Stock", "Valor", "Estado"},
		Anchos:        []float64{20, 44, 24, 24, 16, 30, 32},
		Alinear:       []string{"C", "L", "R", "R", "C", "R", "C"},
		Filas:         filas,
		TotalEtiqueta: "VALOR TOTAL:",
		TotalValor:    "$" + inv.ValorTotal.StringFixed(2),
	})
}

// InventarioExcel renders the inventory valuation as an xlsx workbook.
func (s *ReporteService) InventarioExcel(ctx context.Context) ([]byte, error) {
	inv, err := s.inventario.Listar(ctx)
	if err != nil {
		return nil, err
	}

	filas := make([]infra.FilaInventarioExcel, 0, len(inv.Items))
	for _, item := range inv.Items {
		descripcion := ""
		if item.Descripcion != nil {
			descripcion = *item.Descripcion
		}
		filas = append(filas, infra.FilaInventarioExcel{
			ID:           shortID(item.ProductoID),
			Nombre:       item.Nombre,
			Descripcion:  descripcion,
			PrecioCompra: item.PrecioCompra,
			PrecioVenta:  item.PrecioVenta,
			Stock:        item.Stock,
			Valor:        item.Valor,
			Estado:       item.Estado,
		})
	}

	return infra.GenerarReporteInventarioExcel(filas, inv.ValorTotal)
}

func resumenDetallesVenta(detalles []model.DetalleVenta) string {
	partes := make([]string, 0, len(detalles))
	for _, d := range detalles {
		nombre := "?"
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		partes = append(partes, fmt.Sprintf("%s x%d", nombre, d.Cantidad))
	}
	return strings.Join(partes, ", ")
}

func resumenDetallesCompra(detalles []model.DetalleCompra) string {
	partes := make([]string, 0, len(detalles))
	for _, d := range detalles {
		nombre := "?"
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		partes = append(partes, fmt.Sprintf("%s x%d", nombre, d.Cantidad))
	}
	return strings.Join(partes, ", ")
}

// shortID keeps report columns narrow: the first UUID block is enough to
// cross-reference a row with the API.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
