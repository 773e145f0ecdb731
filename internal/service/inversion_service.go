package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garcolderp/internal/apierror"
	"garcolderp/internal/catalog"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InversionService manages investment balances. Interest credits the balance
// without touching a bank; an aporte moves money from the investment's bank.
// A withdrawal that zeroes the balance deletes the investment.
type InversionService interface {
	Crear(ctx context.Context, req dto.CrearInversionRequest) (*dto.InversionResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.InversionResponse, error)
	Listar(ctx context.Context) ([]dto.InversionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	AgregarSaldo(ctx context.Context, id uuid.UUID, req dto.AgregarSaldoRequest) (*dto.InversionResponse, error)
	Retirar(ctx context.Context, id uuid.UUID, req dto.RetirarInversionRequest) (*dto.RetiroInversionResponse, error)
}

type inversionService struct {
	repo          repository.InversionRepository
	bancos        BancoService
	transacciones TransaccionService
	cat           *catalog.Catalogo
}

func NewInversionService(
	repo repository.InversionRepository,
	bancos BancoService,
	transacciones TransaccionService,
	cat *catalog.Catalogo,
) InversionService {
	return &inversionService{repo: repo, bancos: bancos, transacciones: transacciones, cat: cat}
}

func (s *inversionService) Crear(ctx context.Context, req dto.CrearInversionRequest) (*dto.InversionResponse, error) {
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	if req.Saldo.IsNegative() {
		return nil, apierror.Validation("el saldo inicial no puede ser negativo")
	}
	var vencimiento *time.Time
	if req.Vencimiento != nil {
		v, err := time.Parse("2006-01-02", *req.Vencimiento)
		if err != nil {
			return nil, apierror.Validation("vencimiento invalido, formato esperado YYYY-MM-DD")
		}
		vencimiento = &v
	}
	if _, err := s.bancos.Obtener(ctx, bancoID); err != nil {
		return nil, err
	}

	inversion := &model.Inversion{
		Nombre:      req.Nombre,
		Saldo:       req.Saldo,
		BancoID:     bancoID,
		Vencimiento: vencimiento,
	}
	// An opening balance is an aporte: the money comes out of the bank.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, inversion); err != nil {
			return err
		}
		if !req.Saldo.IsPositive() {
			return nil
		}
		if err := s.bancos.DescontarSaldoTx(tx, bancoID, req.Saldo); err != nil {
			return err
		}
		_, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Saldo,
			TipoID:      s.cat.AporteInversion,
			Descripcion: fmt.Sprintf("Apertura inversion %s", inversion.Nombre),
			EsAuto:      true,
			OrigenTipo:  model.OrigenInversion,
			OrigenID:    &inversion.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, inversion.ID)
}

func (s *inversionService) Obtener(ctx context.Context, id uuid.UUID) (*dto.InversionResponse, error) {
	inversion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("inversion no encontrada")
	}
	return inversionToResponse(inversion), nil
}

func (s *inversionService) Listar(ctx context.Context) ([]dto.InversionResponse, error) {
	inversiones, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InversionResponse, len(inversiones))
	for i := range inversiones {
		data[i] = *inversionToResponse(&inversiones[i])
	}
	return data, nil
}

func (s *inversionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	inversion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("inversion no encontrada")
	}
	if inversion.Saldo.IsPositive() {
		return apierror.InvalidState("retire el saldo antes de eliminar la inversion")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	})
}

func (s *inversionService) AgregarSaldo(ctx context.Context, id uuid.UUID, req dto.AgregarSaldoRequest) (*dto.InversionResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto debe ser mayor a cero")
	}

	var inversion *model.Inversion
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		inversion, err = s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("inversion no encontrada")
			}
			return err
		}

		reg := RegistroTransaccion{
			BancoID:    inversion.BancoID,
			Monto:      req.Monto,
			EsAuto:     true,
			OrigenTipo: model.OrigenInversion,
			OrigenID:   &inversion.ID,
		}
		switch req.Tipo {
		case "interes":
			// Yield: the balance grows without a bank leg.
			reg.TipoID = s.cat.InteresInversion
			reg.Descripcion = fmt.Sprintf("Interes inversion %s", inversion.Nombre)
		case "aporte":
			reg.TipoID = s.cat.AporteInversion
			reg.Descripcion = fmt.Sprintf("Aporte inversion %s", inversion.Nombre)
			if err := s.bancos.DescontarSaldoTx(tx, inversion.BancoID, req.Monto); err != nil {
				return err
			}
		default:
			return apierror.Validation("tipo de credito desconocido")
		}

		inversion.Saldo = inversion.Saldo.Add(req.Monto)
		if err := s.repo.SaveTx(tx, inversion); err != nil {
			return err
		}
		_, err = s.transacciones.RegistrarTx(tx, reg)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, inversion.ID)
}

func (s *inversionService) Retirar(ctx context.Context, id uuid.UUID, req dto.RetirarInversionRequest) (*dto.RetiroInversionResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto debe ser mayor a cero")
	}

	var (
		eliminada bool
		inversion *model.Inversion
	)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		inversion, err = s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("inversion no encontrada")
			}
			return err
		}
		if req.Monto.GreaterThan(inversion.Saldo) {
			return apierror.Validation("el retiro excede el saldo de la inversion")
		}

		if err := s.bancos.IncrementarSaldoTx(tx, inversion.BancoID, req.Monto); err != nil {
			return err
		}
		if _, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     inversion.BancoID,
			Monto:       req.Monto,
			TipoID:      s.cat.Retiro,
			Descripcion: fmt.Sprintf("Retiro inversion %s", inversion.Nombre),
			EsAuto:      true,
			OrigenTipo:  model.OrigenInversion,
			OrigenID:    &inversion.ID,
		}); err != nil {
			return err
		}

		inversion.Saldo = inversion.Saldo.Sub(req.Monto)
		if inversion.Saldo.IsZero() {
			eliminada = true
			return s.repo.DeleteTx(tx, inversion.ID)
		}
		return s.repo.SaveTx(tx, inversion)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.RetiroInversionResponse{Eliminada: eliminada}
	if !eliminada {
		resp.Inversion = inversionToResponse(inversion)
	}
	return resp, nil
}

func inversionToResponse(i *model.Inversion) *dto.InversionResponse {
	bancoNombre := ""
	if i.Banco != nil {
		bancoNombre = i.Banco.Nombre
	}
	var vencimiento *string
	if i.Vencimiento != nil {
		v := i.Vencimiento.Format("2006-01-02")
		vencimiento = &v
	}
	return &dto.InversionResponse{
		ID:          i.ID.String(),
		Nombre:      i.Nombre,
		Saldo:       i.Saldo,
		Banco:       bancoNombre,
		Vencimiento: vencimiento,
		CreatedAt:   formatFecha(i.CreatedAt),
	}
}
