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

type ClienteService struct {
	clientes repository.ClienteRepository
	ventas   repository.VentaRepository
}

func NewClienteService(clientes repository.ClienteRepository, ventas repository.VentaRepository) *ClienteService {
	return &ClienteService{clientes: clientes, ventas: ventas}
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:    req.Nombre,
		Cedula:    req.Cedula,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Correo:    req.Correo,
	}
	if err := s.clientes.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creando cliente: %w", err)
	}
	return clienteToResponse(c), nil
}

func (s *ClienteService) Obtener(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *ClienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando clientes: %w", err)
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *ClienteService) Actualizar(ctx context.Context, id string, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Nombre = req.Nombre
	c.Cedula = req.Cedula
	c.Telefono = req.Telefono
	c.Direccion = req.Direccion
	c.Correo = req.Correo
	if err := s.clientes.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizando cliente: %w", err)
	}
	return clienteToResponse(c), nil
}

// Eliminar refuses to delete a customer that has sales on record: the sale
// history would lose its reference.
func (s *ClienteService) Eliminar(ctx context.Context, id string) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	tieneVentas, err := s.ventas.HasForCliente(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("verificando ventas: %w", err)
	}
	if tieneVentas {
		return fmt.Errorf("%w: el cliente tiene ventas registradas", ErrConflictoReferencial)
	}
	return s.clientes.Delete(ctx, c.ID)
}

func (s *ClienteService) find(ctx context.Context, id string) (*model.Cliente, error) {
	clienteID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de cliente invalido", ErrValidacion)
	}
	c, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cliente %s", ErrNoEncontrado, id)
		}
		return nil, fmt.Errorf("buscando cliente: %w", err)
	}
	return c, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Cedula:    c.Cedula,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		Correo:    c.Correo,
	}
}
