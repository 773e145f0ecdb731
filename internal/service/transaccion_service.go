package service

import (
	"context"

	"garcolderp/internal/apierror"
	"garcolderp/internal/catalog"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"
	"garcolderp/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegistroTransaccion are the parameters for one audit ledger row. Inserting
// the row does not move money — the caller mutates the bank through the
// ledger primitives inside the same outer transaction.
type RegistroTransaccion struct {
	BancoID     uuid.UUID
	Monto       decimal.Decimal
	TipoID      uuid.UUID
	Descripcion string
	EsAuto      bool
	OrigenTipo  string
	OrigenID    *uuid.UUID
}

type TransaccionService interface {
	// RegistrarTx appends an audit row inside the caller's transaction.
	RegistrarTx(tx *gorm.DB, reg RegistroTransaccion) (*model.Transaccion, error)
	// EliminarPorOrigenTx removes the rows correlated to a workflow entity,
	// as part of that workflow's compensating delete.
	EliminarPorOrigenTx(tx *gorm.DB, origenTipo string, origenID uuid.UUID) error

	CrearManual(ctx context.Context, req dto.CrearTransaccionManualRequest) (*dto.TransaccionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, filter dto.TransaccionFilter) (*dto.TransaccionListResponse, error)
}

type transaccionService struct {
	repo    repository.TransaccionRepository
	banco   BancoService
	cliente ClienteService
	cat     *catalog.Catalogo
}

func NewTransaccionService(
	repo repository.TransaccionRepository,
	banco BancoService,
	cliente ClienteService,
	cat *catalog.Catalogo,
) TransaccionService {
	return &transaccionService{repo: repo, banco: banco, cliente: cliente, cat: cat}
}

func (s *transaccionService) RegistrarTx(tx *gorm.DB, reg RegistroTransaccion) (*model.Transaccion, error) {
	t := &model.Transaccion{
		BancoID:     reg.BancoID,
		Monto:       reg.Monto,
		TipoID:      reg.TipoID,
		Descripcion: reg.Descripcion,
		EsAuto:      reg.EsAuto,
		OrigenTipo:  reg.OrigenTipo,
		OrigenID:    reg.OrigenID,
	}
	if err := s.repo.CreateTx(tx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *transaccionService) EliminarPorOrigenTx(tx *gorm.DB, origenTipo string, origenID uuid.UUID) error {
	return s.repo.DeleteByOrigenTx(tx, origenTipo, origenID)
}

// CrearManual registers a hand-entered bank movement and applies its balance
// effect atomically. An abono_saldo additionally settles part of a customer's
// receivable, recording the cliente id as the row's origin for later reversal.
func (s *transaccionService) CrearManual(ctx context.Context, req dto.CrearTransaccionManualRequest) (*dto.TransaccionResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto debe ser mayor a cero")
	}
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}

	var creada *model.Transaccion
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		reg := RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Monto,
			Descripcion: req.Descripcion,
			EsAuto:      false,
			OrigenTipo:  model.OrigenManual,
		}

		switch req.Tipo {
		case "ingreso":
			reg.TipoID = s.cat.Ingreso
			if err := s.banco.IncrementarSaldoTx(tx, bancoID, req.Monto); err != nil {
				return err
			}
		case "retiro":
			reg.TipoID = s.cat.Retiro
			if err := s.banco.DescontarSaldoTx(tx, bancoID, req.Monto); err != nil {
				return err
			}
		case "abono_saldo":
			if req.ClienteID == nil {
				return apierror.Validation("cliente_id es requerido para abono_saldo")
			}
			clienteID, err := uuid.Parse(*req.ClienteID)
			if err != nil {
				return apierror.Validation("cliente_id invalido")
			}
			reg.TipoID = s.cat.Ingreso
			reg.OrigenTipo = model.OrigenAbonoSaldo
			reg.OrigenID = &clienteID
			if err := s.banco.IncrementarSaldoTx(tx, bancoID, req.Monto); err != nil {
				return err
			}
			if err := s.cliente.DescontarSaldoTx(tx, clienteID, req.Monto); err != nil {
				return err
			}
		default:
			return apierror.Validation("tipo de transaccion manual desconocido")
		}

		t, err := s.RegistrarTx(tx, reg)
		if err != nil {
			return err
		}
		creada = t
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.toResponse(creada), nil
}

// Eliminar reverses and removes a manual transaction. Automatic rows belong
// to a workflow and can only disappear through that workflow's delete.
func (s *transaccionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("transaccion no encontrada")
	}
	if t.EsAuto {
		return apierror.InvalidState("una transaccion automatica solo se revierte eliminando su operacion de origen")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		switch t.OrigenTipo {
		case model.OrigenAbonoSaldo:
			if t.OrigenID == nil {
				return apierror.InvalidState("abono de saldo sin cliente de origen")
			}
			if err := s.banco.DescontarSaldoTx(tx, t.BancoID, t.Monto); err != nil {
				return err
			}
			if err := s.cliente.IncrementarSaldoTx(tx, *t.OrigenID, t.Monto); err != nil {
				return err
			}
		case model.OrigenManual:
			switch t.TipoID {
			case s.cat.Ingreso:
				if err := s.banco.DescontarSaldoTx(tx, t.BancoID, t.Monto); err != nil {
					return err
				}
			case s.cat.Retiro:
				if err := s.banco.IncrementarSaldoTx(tx, t.BancoID, t.Monto); err != nil {
					return err
				}
			default:
				return apierror.InvalidState("tipo de transaccion manual no reversible")
			}
		default:
			return apierror.InvalidState("la transaccion pertenece a una operacion de origen")
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func (s *transaccionService) Listar(ctx context.Context, filter dto.TransaccionFilter) (*dto.TransaccionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	transacciones, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransaccionResponse, len(transacciones))
	for i := range transacciones {
		data[i] = *s.toResponse(&transacciones[i])
	}
	return &dto.TransaccionListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *transaccionService) toResponse(t *model.Transaccion) *dto.TransaccionResponse {
	bancoNombre := ""
	if t.Banco != nil {
		bancoNombre = t.Banco.Nombre
	}
	var origenID *string
	if t.OrigenID != nil {
		v := t.OrigenID.String()
		origenID = &v
	}
	return &dto.TransaccionResponse{
		ID:          t.ID.String(),
		Banco:       bancoNombre,
		BancoID:     t.BancoID.String(),
		Tipo:        s.cat.NombreDe(t.TipoID),
		Monto:       t.Monto,
		Descripcion: t.Descripcion,
		EsAuto:      t.EsAuto,
		OrigenTipo:  t.OrigenTipo,
		OrigenID:    origenID,
		CreatedAt:   formatFecha(t.CreatedAt),
	}
}
