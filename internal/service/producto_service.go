package service

import (
	"context"
	"errors"
	"fmt"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService owns the inventory mutators. Workflows lock the row with
// FindByIDForUpdateTx and hand it to Incrementar/DescontarStockTx, so the
// stock check lives in exactly one place. DescontarStockTx validates stock
// before anything else in the enclosing workflow moves money — a stock
// failure must never leave a dangling balance change.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	IncrementarStockTx(tx *gorm.DB, producto *model.Producto, cantidad int) error
	DescontarStockTx(tx *gorm.DB, producto *model.Producto, cantidad int) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Cantidad < 0 {
		return nil, apierror.Validation("la cantidad inicial no puede ser negativa")
	}
	producto := &model.Producto{
		Referencia:   req.Referencia,
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		Cantidad:     req.Cantidad,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		data[i] = *productoToResponse(&productos[i])
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	if req.Nombre != "" {
		producto.Nombre = req.Nombre
	}
	if req.Descripcion != nil {
		producto.Descripcion = req.Descripcion
	}
	if !req.PrecioCompra.IsZero() {
		producto.PrecioCompra = req.PrecioCompra
	}
	if !req.PrecioVenta.IsZero() {
		producto.PrecioVenta = req.PrecioVenta
	}
	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("producto no encontrado")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("producto no encontrado")
	}
	return s.repo.Reactivar(ctx, id)
}

// FindByIDForUpdateTx locks the product row for the rest of the enclosing
// transaction. The stock mutators expect a row obtained here.
func (s *productoService) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	producto, err := s.repo.FindByIDForUpdateTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, err
	}
	return producto, nil
}

func (s *productoService) IncrementarStockTx(tx *gorm.DB, producto *model.Producto, cantidad int) error {
	if cantidad < 0 {
		return apierror.Validation("la cantidad no puede ser negativa")
	}
	if cantidad == 0 {
		return nil
	}
	return s.repo.UpdateCantidadTx(tx, producto.ID, cantidad)
}

func (s *productoService) DescontarStockTx(tx *gorm.DB, producto *model.Producto, cantidad int) error {
	if cantidad < 0 {
		return apierror.Validation("la cantidad no puede ser negativa")
	}
	if cantidad == 0 {
		return nil
	}
	if producto.Cantidad < cantidad {
		return apierror.InsufficientStock(fmt.Sprintf("stock insuficiente de %s", producto.Nombre))
	}
	return s.repo.UpdateCantidadTx(tx, producto.ID, -cantidad)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID.String(),
		Referencia:   p.Referencia,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		PrecioCompra: p.PrecioCompra,
		PrecioVenta:  p.PrecioVenta,
		Cantidad:     p.Cantidad,
		Activo:       p.Activo,
		CreatedAt:    formatFecha(p.CreatedAt),
	}
}
