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

// GastoService registers expenses. Creating one debits the bank and appends a
// "Gasto" audit row; deleting it puts the money back and removes the row.
type GastoService interface {
	Crear(ctx context.Context, req dto.CrearGastoRequest) (*dto.GastoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.GastoResponse, error)
	Listar(ctx context.Context, filter dto.GastoFilter) (*dto.GastoListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	CrearCategoria(ctx context.Context, req dto.CrearCategoriaGastoRequest) (*dto.CategoriaGastoResponse, error)
	ListarCategorias(ctx context.Context) ([]dto.CategoriaGastoResponse, error)
	EliminarCategoria(ctx context.Context, id uuid.UUID) error
}

type gastoService struct {
	repo          repository.GastoRepository
	bancos        BancoService
	transacciones TransaccionService
	cat           *catalog.Catalogo
}

func NewGastoService(
	repo repository.GastoRepository,
	bancos BancoService,
	transacciones TransaccionService,
	cat *catalog.Catalogo,
) GastoService {
	return &gastoService{repo: repo, bancos: bancos, transacciones: transacciones, cat: cat}
}

func (s *gastoService) Crear(ctx context.Context, req dto.CrearGastoRequest) (*dto.GastoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del gasto debe ser mayor a cero")
	}
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.Validation("categoria_id invalido")
	}
	if _, err := s.repo.FindCategoriaByID(ctx, categoriaID); err != nil {
		return nil, apierror.NotFound("categoria de gasto no encontrada")
	}

	var gasto *model.Gasto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.bancos.DescontarSaldoTx(tx, bancoID, req.Monto); err != nil {
			return err
		}
		gasto = &model.Gasto{
			Descripcion: req.Descripcion,
			Monto:       req.Monto,
			BancoID:     bancoID,
			CategoriaID: categoriaID,
		}
		if err := s.repo.CreateTx(tx, gasto); err != nil {
			return err
		}
		_, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Monto,
			TipoID:      s.cat.Gasto,
			Descripcion: fmt.Sprintf("Gasto: %s", req.Descripcion),
			EsAuto:      true,
			OrigenTipo:  model.OrigenGasto,
			OrigenID:    &gasto.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, gasto.ID)
}

func (s *gastoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.GastoResponse, error) {
	gasto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("gasto no encontrado")
	}
	return gastoToResponse(gasto), nil
}

func (s *gastoService) Listar(ctx context.Context, filter dto.GastoFilter) (*dto.GastoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	gastos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.GastoResponse, len(gastos))
	for i := range gastos {
		data[i] = *gastoToResponse(&gastos[i])
	}
	return &dto.GastoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *gastoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	gasto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("gasto no encontrado")
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.bancos.IncrementarSaldoTx(tx, gasto.BancoID, gasto.Monto); err != nil {
			return err
		}
		if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenGasto, gasto.ID); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, gasto.ID)
	})
}

func (s *gastoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaGastoRequest) (*dto.CategoriaGastoResponse, error) {
	categoria := &model.CategoriaGasto{Nombre: req.Nombre}
	if err := s.repo.CreateCategoria(ctx, categoria); err != nil {
		return nil, err
	}
	return &dto.CategoriaGastoResponse{ID: categoria.ID.String(), Nombre: categoria.Nombre}, nil
}

func (s *gastoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaGastoResponse, error) {
	categorias, err := s.repo.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoriaGastoResponse, len(categorias))
	for i, c := range categorias {
		data[i] = dto.CategoriaGastoResponse{ID: c.ID.String(), Nombre: c.Nombre}
	}
	return data, nil
}

func (s *gastoService) EliminarCategoria(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindCategoriaByID(ctx, id); err != nil {
		return apierror.NotFound("categoria de gasto no encontrada")
	}
	return s.repo.DeleteCategoria(ctx, id)
}

func gastoToResponse(g *model.Gasto) *dto.GastoResponse {
	bancoNombre := ""
	if g.Banco != nil {
		bancoNombre = g.Banco.Nombre
	}
	categoriaNombre := ""
	if g.Categoria != nil {
		categoriaNombre = g.Categoria.Nombre
	}
	return &dto.GastoResponse{
		ID:          g.ID.String(),
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Banco:       bancoNombre,
		Categoria:   categoriaNombre,
		CreatedAt:   formatFecha(g.CreatedAt),
	}
}
