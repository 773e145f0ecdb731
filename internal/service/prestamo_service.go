package service

import (
	"context"
	"errors"
	"fmt"

	"garcolderp/internal/apierror"
	"garcolderp/internal/catalog"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrestamoService tracks outstanding loans. A payment debits the chosen bank
// and lowers the outstanding amount; the payment that brings it exactly to
// zero also deletes the loan. The "Retiro" audit rows of past payments stay:
// they record money that really left a bank.
type PrestamoService interface {
	Crear(ctx context.Context, req dto.CrearPrestamoRequest) (*dto.PrestamoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PrestamoResponse, error)
	Listar(ctx context.Context) ([]dto.PrestamoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	AplicarPago(ctx context.Context, id uuid.UUID, req dto.PagoPrestamoRequest) (*dto.PagoPrestamoResponse, error)
}

type prestamoService struct {
	repo          repository.PrestamoRepository
	bancos        BancoService
	transacciones TransaccionService
	cat           *catalog.Catalogo
}

func NewPrestamoService(
	repo repository.PrestamoRepository,
	bancos BancoService,
	transacciones TransaccionService,
	cat *catalog.Catalogo,
) PrestamoService {
	return &prestamoService{repo: repo, bancos: bancos, transacciones: transacciones, cat: cat}
}

func (s *prestamoService) Crear(ctx context.Context, req dto.CrearPrestamoRequest) (*dto.PrestamoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del prestamo debe ser mayor a cero")
	}
	prestamo := &model.Prestamo{Nombre: req.Nombre, Monto: req.Monto}
	if err := s.repo.Create(ctx, prestamo); err != nil {
		return nil, err
	}
	return prestamoToResponse(prestamo), nil
}

func (s *prestamoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PrestamoResponse, error) {
	prestamo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("prestamo no encontrado")
	}
	return prestamoToResponse(prestamo), nil
}

func (s *prestamoService) Listar(ctx context.Context) ([]dto.PrestamoResponse, error) {
	prestamos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PrestamoResponse, len(prestamos))
	for i := range prestamos {
		data[i] = *prestamoToResponse(&prestamos[i])
	}
	return data, nil
}

// Eliminar drops the loan record without moving money. Past payment rows stay
// in the ledger.
func (s *prestamoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("prestamo no encontrado")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	})
}

func (s *prestamoService) AplicarPago(ctx context.Context, id uuid.UUID, req dto.PagoPrestamoRequest) (*dto.PagoPrestamoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del pago debe ser mayor a cero")
	}
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}

	var (
		eliminado bool
		prestamo  *model.Prestamo
	)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		prestamo, err = s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("prestamo no encontrado")
			}
			return err
		}
		if req.Monto.GreaterThan(prestamo.Monto) {
			return apierror.Validation("el pago excede el monto pendiente del prestamo")
		}

		if err := s.bancos.DescontarSaldoTx(tx, bancoID, req.Monto); err != nil {
			return err
		}

		prestamo.Monto = prestamo.Monto.Sub(req.Monto)
		if _, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Monto,
			TipoID:      s.cat.Retiro,
			Descripcion: fmt.Sprintf("Pago prestamo %s", prestamo.Nombre),
			EsAuto:      true,
			OrigenTipo:  model.OrigenPrestamo,
			OrigenID:    &prestamo.ID,
		}); err != nil {
			return err
		}

		if prestamo.Monto.IsZero() {
			eliminado = true
			return s.repo.DeleteTx(tx, prestamo.ID)
		}
		return s.repo.SaveTx(tx, prestamo)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.PagoPrestamoResponse{Eliminado: eliminado}
	if !eliminado {
		resp.Prestamo = prestamoToResponse(prestamo)
	}
	return resp, nil
}

func prestamoToResponse(p *model.Prestamo) *dto.PrestamoResponse {
	return &dto.PrestamoResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Monto:     p.Monto,
		CreatedAt: formatFecha(p.CreatedAt),
	}
}
