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

// BancoService owns the bank ledger primitives. The Tx mutators are the only
// paths that touch Banco.Saldo; they take the row lock, validate, and persist
// inside the caller's transaction.
type BancoService interface {
	Crear(ctx context.Context, req dto.CrearBancoRequest) (*dto.BancoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.BancoResponse, error)
	Listar(ctx context.Context) ([]dto.BancoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarBancoRequest) (*dto.BancoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	// IncrementarSaldoTx adds monto to the bank. Fails only when the bank
	// does not exist or monto is negative; monto == 0 is a no-op.
	IncrementarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error
	// DescontarSaldoTx subtracts monto. Fails with InsufficientFunds when the
	// current saldo is lower than monto — the balance is never clamped.
	DescontarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error
}

type bancoService struct {
	repo repository.BancoRepository
}

func NewBancoService(repo repository.BancoRepository) BancoService {
	return &bancoService{repo: repo}
}

func (s *bancoService) Crear(ctx context.Context, req dto.CrearBancoRequest) (*dto.BancoResponse, error) {
	if req.Saldo.IsNegative() {
		return nil, apierror.Validation("el saldo inicial no puede ser negativo")
	}
	banco := &model.Banco{
		Nombre:       req.Nombre,
		NumeroCuenta: req.NumeroCuenta,
		Saldo:        req.Saldo,
	}
	if err := s.repo.Create(ctx, banco); err != nil {
		return nil, err
	}
	return bancoToResponse(banco), nil
}

func (s *bancoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.BancoResponse, error) {
	banco, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("banco no encontrado")
	}
	return bancoToResponse(banco), nil
}

func (s *bancoService) Listar(ctx context.Context) ([]dto.BancoResponse, error) {
	bancos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BancoResponse, len(bancos))
	for i := range bancos {
		resp[i] = *bancoToResponse(&bancos[i])
	}
	return resp, nil
}

func (s *bancoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarBancoRequest) (*dto.BancoResponse, error) {
	banco, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("banco no encontrado")
	}
	if req.Nombre != "" {
		banco.Nombre = req.Nombre
	}
	if req.NumeroCuenta != nil {
		banco.NumeroCuenta = req.NumeroCuenta
	}
	if err := s.repo.Update(ctx, banco); err != nil {
		return nil, err
	}
	return bancoToResponse(banco), nil
}

func (s *bancoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	banco, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("banco no encontrado")
	}
	if !banco.Saldo.IsZero() {
		return apierror.InvalidState("no se puede eliminar un banco con saldo")
	}
	return s.repo.Delete(ctx, id)
}

func (s *bancoService) IncrementarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	if monto.IsNegative() {
		return apierror.Validation("el monto no puede ser negativo")
	}
	if monto.IsZero() {
		return nil
	}
	banco, err := s.repo.FindByIDForUpdateTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("banco no encontrado")
		}
		return err
	}
	banco.Saldo = banco.Saldo.Add(monto)
	return s.repo.SaveTx(tx, banco)
}

func (s *bancoService) DescontarSaldoTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	if monto.IsNegative() {
		return apierror.Validation("el monto no puede ser negativo")
	}
	if monto.IsZero() {
		return nil
	}
	banco, err := s.repo.FindByIDForUpdateTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("banco no encontrado")
		}
		return err
	}
	if banco.Saldo.LessThan(monto) {
		return apierror.InsufficientFunds("fondos insuficientes en " + banco.Nombre)
	}
	banco.Saldo = banco.Saldo.Sub(monto)
	return s.repo.SaveTx(tx, banco)
}

func bancoToResponse(b *model.Banco) *dto.BancoResponse {
	return &dto.BancoResponse{
		ID:           b.ID.String(),
		Nombre:       b.Nombre,
		NumeroCuenta: b.NumeroCuenta,
		Saldo:        b.Saldo,
		CreatedAt:    formatFecha(b.CreatedAt),
	}
}
