package service

import (
	"context"
	"errors"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClienteService owns the receivable mutators. Saldo decreases fail hard with
// InsufficientFunds instead of flooring at zero: a decrease larger than the
// receivable would silently eat balances that belong to the customer's other
// credit sales.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, nombre string) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	IncrementarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error
	DescontarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Saldo:     decimal.Zero,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("cliente no encontrado")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, nombre string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, nombre)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("cliente no encontrado")
	}
	if req.Nombre != "" {
		cliente.Nombre = req.Nombre
	}
	if req.Telefono != nil {
		cliente.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		cliente.Direccion = req.Direccion
	}
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("cliente no encontrado")
	}
	if !cliente.Saldo.IsZero() {
		return apierror.InvalidState("no se puede eliminar un cliente con saldo pendiente")
	}
	return s.repo.Delete(ctx, id)
}

func (s *clienteService) IncrementarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	if monto.IsNegative() {
		return apierror.Validation("el monto no puede ser negativo")
	}
	if monto.IsZero() {
		return nil
	}
	cliente, err := s.repo.FindByIDForUpdateTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("cliente no encontrado")
		}
		return err
	}
	cliente.Saldo = cliente.Saldo.Add(monto)
	return s.repo.SaveTx(tx, cliente)
}

func (s *clienteService) DescontarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	if monto.IsNegative() {
		return apierror.Validation("el monto no puede ser negativo")
	}
	if monto.IsZero() {
		return nil
	}
	cliente, err := s.repo.FindByIDForUpdateTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("cliente no encontrado")
		}
		return err
	}
	if cliente.Saldo.LessThan(monto) {
		return apierror.InsufficientFunds("el saldo del cliente es menor al monto a descontar")
	}
	cliente.Saldo = cliente.Saldo.Sub(monto)
	return s.repo.SaveTx(tx, cliente)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		Saldo:     c.Saldo,
		CreatedAt: formatFecha(c.CreatedAt),
	}
}
