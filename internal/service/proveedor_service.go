package service

import (
	"context"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, nombre string) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor := &model.Proveedor{
		Nombre:    req.Nombre,
		Cuit:      req.Cuit,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if err := s.repo.Create(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("proveedor no encontrado")
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Listar(ctx context.Context, nombre string) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, nombre)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProveedorResponse, len(proveedores))
	for i := range proveedores {
		data[i] = *proveedorToResponse(&proveedores[i])
	}
	return data, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("proveedor no encontrado")
	}
	if req.Nombre != "" {
		proveedor.Nombre = req.Nombre
	}
	if req.Cuit != nil {
		proveedor.Cuit = req.Cuit
	}
	if req.Telefono != nil {
		proveedor.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		proveedor.Direccion = req.Direccion
	}
	if err := s.repo.Update(ctx, proveedor); err != nil {
		return nil, err
	}
	return proveedorToResponse(proveedor), nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("proveedor no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Cuit:      p.Cuit,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		CreatedAt: formatFecha(p.CreatedAt),
	}
}
