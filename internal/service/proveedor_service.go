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

type ProveedorService struct {
	proveedores repository.ProveedorRepository
}

func NewProveedorService(proveedores repository.ProveedorRepository) *ProveedorService {
	return &ProveedorService{proveedores: proveedores}
}

func (s *ProveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		Nombre:    req.Nombre,
		RUC:       req.RUC,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Correo:    req.Correo,
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creando proveedor: %w", err)
	}
	return proveedorToResponse(p), nil
}

func (s *ProveedorService) Obtener(ctx context.Context, id string) (*dto.ProveedorResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return proveedorToResponse(p), nil
}

func (s *ProveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.proveedores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listando proveedores: %w", err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, *proveedorToResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *ProveedorService) Actualizar(ctx context.Context, id string, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Nombre = req.Nombre
	p.RUC = req.RUC
	p.Telefono = req.Telefono
	p.Direccion = req.Direccion
	p.Correo = req.Correo
	if err := s.proveedores.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizando proveedor: %w", err)
	}
	return proveedorToResponse(p), nil
}

// Eliminar deletes a supplier unconditionally. Products and historical
// compras that referenced it keep their rows with proveedor_id set to NULL
// (ON DELETE SET NULL on both foreign keys).
func (s *ProveedorService) Eliminar(ctx context.Context, id string) error {
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.proveedores.Delete(ctx, p.ID)
}

func (s *ProveedorService) find(ctx context.Context, id string) (*model.Proveedor, error) {
	proveedorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de proveedor invalido", ErrValidacion)
	}
	p, err := s.proveedores.FindByID(ctx, proveedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: proveedor %s", ErrNoEncontrado, id)
		}
		return nil, fmt.Errorf("buscando proveedor: %w", err)
	}
	return p, nil
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		RUC:       p.RUC,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		Correo:    p.Correo,
	}
}
