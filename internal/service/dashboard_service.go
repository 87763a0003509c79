package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventia/internal/dto"
	"inventia/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dashboardCacheKey = "cache:dashboard"
	dashboardCacheTTL = 60 * time.Second

	ventasRecientesLimite = 5
)

// DashboardService aggregates totals for the landing view. The result is
// cached in Redis for a short window; cache failures degrade to recomputing,
// never to an error.
type DashboardService struct {
	ventas      repository.VentaRepository
	compras     repository.CompraRepository
	productos   repository.ProductoRepository
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	usuarios    repository.UsuarioRepository
	inventario  *InventarioService
	cache       *redis.Client // nil disables caching
}

func NewDashboardService(
	ventas repository.VentaRepository,
	compras repository.CompraRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	usuarios repository.UsuarioRepository,
	inventario *InventarioService,
	cache *redis.Client,
) *DashboardService {
	return &DashboardService{
		ventas:      ventas,
		compras:     compras,
		productos:   productos,
		clientes:    clientes,
		proveedores: proveedores,
		usuarios:    usuarios,
		inventario:  inventario,
		cache:       cache,
	}
}

func (s *DashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.construir(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el dashboard")
			}
		}
	}
	return resp, nil
}

func (s *DashboardService) construir(ctx context.Context) (*dto.DashboardResponse, error) {
	totalVentas, err := s.ventas.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sumando ventas: %w", err)
	}
	totalCompras, err := s.compras.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sumando compras: %w", err)
	}
	nProductos, err := s.productos.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contando productos: %w", err)
	}
	nClientes, err := s.clientes.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contando clientes: %w", err)
	}
	nProveedores, err := s.proveedores.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contando proveedores: %w", err)
	}
	nUsuarios, err := s.usuarios.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("contando usuarios: %w", err)
	}

	recientes, err := s.ventas.ListRecientes(ctx, ventasRecientesLimite)
	if err != nil {
		return nil, fmt.Errorf("listando ventas recientes: %w", err)
	}
	ventasRecientes := make([]dto.VentaResponse, 0, len(recientes))
	for i := range recientes {
		ventasRecientes = append(ventasRecientes, *ventaToResponse(&recientes[i]))
	}

	bajoStock, err := s.inventario.BajoStock(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalVentas:      totalVentas,
		TotalCompras:     totalCompras,
		TotalProductos:   nProductos,
		TotalClientes:    nClientes,
		TotalProveedores: nProveedores,
		TotalUsuarios:    nUsuarios,
		VentasRecientes:  ventasRecientes,
		BajoStock:        bajoStock,
	}, nil
}
