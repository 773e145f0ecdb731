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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraService mirrors the sale workflow with inverted signs: registering a
// purchase raises stock and takes money out of the bank (or books a payable on
// the compra itself), deleting it puts both back. No ganancia is recorded.
type CompraService interface {
	Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	CrearAbono(ctx context.Context, compraID uuid.UUID, req dto.CrearAbonoCompraRequest) (*dto.AbonoCompraResponse, error)
	ListarAbonos(ctx context.Context, compraID uuid.UUID) ([]dto.AbonoCompraResponse, error)
	EliminarAbono(ctx context.Context, compraID, abonoID uuid.UUID) error
}

type compraService struct {
	repo          repository.CompraRepository
	proveedores   repository.ProveedorRepository
	productos     ProductoService
	bancos        BancoService
	transacciones TransaccionService
	cat           *catalog.Catalogo
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedores repository.ProveedorRepository,
	productos ProductoService,
	bancos BancoService,
	transacciones TransaccionService,
	cat *catalog.Catalogo,
) CompraService {
	return &compraService{
		repo:          repo,
		proveedores:   proveedores,
		productos:     productos,
		bancos:        bancos,
		transacciones: transacciones,
		cat:           cat,
	}
}

func (s *compraService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apierror.Validation("proveedor_id invalido")
	}
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	if len(req.Items) == 0 {
		return nil, apierror.Validation("la compra debe tener al menos un item")
	}
	if _, err := s.proveedores.FindByID(ctx, proveedorID); err != nil {
		return nil, apierror.NotFound("proveedor no encontrado")
	}
	if _, err := s.bancos.Obtener(ctx, bancoID); err != nil {
		return nil, err
	}

	var compra *model.Compra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]model.CompraItem, 0, len(req.Items))

		for _, it := range req.Items {
			productoID, err := uuid.Parse(it.ProductoID)
			if err != nil {
				return apierror.Validation("producto_id invalido")
			}
			if it.Cantidad < 1 {
				return apierror.Validation("la cantidad de cada item debe ser mayor a cero")
			}
			if !it.PrecioUnitario.IsPositive() {
				return apierror.Validation("el precio unitario debe ser mayor a cero")
			}

			producto, err := s.productos.FindByIDForUpdateTx(tx, productoID)
			if err != nil {
				return err
			}
			if err := s.productos.IncrementarStockTx(tx, producto, it.Cantidad); err != nil {
				return err
			}

			lineTotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
			total = total.Add(lineTotal)
			items = append(items, model.CompraItem{
				ProductoID:     productoID,
				Cantidad:       it.Cantidad,
				PrecioUnitario: it.PrecioUnitario,
				Total:          lineTotal,
			})
		}

		compra = &model.Compra{
			ProveedorID: proveedorID,
			BancoID:     bancoID,
			Total:       total,
			Items:       items,
		}
		if req.Credito {
			compra.EstadoID = s.cat.CompraCredito
			compra.Saldo = total
		} else {
			compra.EstadoID = s.cat.CompraContado
			compra.Saldo = decimal.Zero
		}
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}

		if req.Credito {
			return nil
		}
		if err := s.bancos.DescontarSaldoTx(tx, bancoID, total); err != nil {
			return err
		}
		_, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       total,
			TipoID:      s.cat.PagoCompra,
			Descripcion: fmt.Sprintf("Compra de contado %s", compra.ID),
			EsAuto:      true,
			OrigenTipo:  model.OrigenCompra,
			OrigenID:    &compra.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, compra.ID)
}

func (s *compraService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("compra no encontrada")
	}
	return s.toResponse(compra), nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompraResponse, len(compras))
	for i := range compras {
		data[i] = *s.toResponse(&compras[i])
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Eliminar reverses the purchase: stock back down (it can fail with
// InsufficientStock if the bought units were already sold), abono money back
// into its bank, a cash purchase's total back into the bank, and the
// correlated audit rows removed.
func (s *compraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("compra no encontrada")
			}
			return err
		}

		for _, item := range compra.Items {
			producto, err := s.productos.FindByIDForUpdateTx(tx, item.ProductoID)
			if err != nil {
				return err
			}
			if err := s.productos.DescontarStockTx(tx, producto, item.Cantidad); err != nil {
				return err
			}
		}

		if s.cat.EsCompraCreditoLike(compra.EstadoID) {
			for _, abono := range compra.Abonos {
				if err := s.bancos.IncrementarSaldoTx(tx, abono.BancoID, abono.Monto); err != nil {
					return err
				}
				if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenAbonoCompra, abono.ID); err != nil {
					return err
				}
			}
		} else {
			if err := s.bancos.IncrementarSaldoTx(tx, compra.BancoID, compra.Total); err != nil {
				return err
			}
		}

		if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenCompra, compra.ID); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, compra.ID)
	})
}

func (s *compraService) CrearAbono(ctx context.Context, compraID uuid.UUID, req dto.CrearAbonoCompraRequest) (*dto.AbonoCompraResponse, error) {
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del abono debe ser mayor a cero")
	}

	var abono *model.AbonoCompra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra, err := s.repo.FindByIDForUpdateTx(tx, compraID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("compra no encontrada")
			}
			return err
		}
		if compra.EstadoID != s.cat.CompraCredito {
			return apierror.InvalidState("solo una compra a credito admite abonos")
		}
		if req.Monto.GreaterThan(compra.Saldo) {
			return apierror.Validation("el abono excede el saldo de la compra")
		}

		if err := s.bancos.DescontarSaldoTx(tx, bancoID, req.Monto); err != nil {
			return err
		}

		abono = &model.AbonoCompra{CompraID: compra.ID, BancoID: bancoID, Monto: req.Monto}
		if err := s.repo.CreateAbonoTx(tx, abono); err != nil {
			return err
		}

		compra.Saldo = compra.Saldo.Sub(req.Monto)
		if compra.Saldo.IsZero() {
			compra.EstadoID = s.cat.CompraCancelada
		}
		if err := s.repo.SaveTx(tx, compra); err != nil {
			return err
		}

		_, err = s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Monto,
			TipoID:      s.cat.PagoCompra,
			Descripcion: fmt.Sprintf("Abono a compra %s", compra.ID),
			EsAuto:      true,
			OrigenTipo:  model.OrigenAbonoCompra,
			OrigenID:    &abono.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return abonoCompraToResponse(abono), nil
}

func (s *compraService) ListarAbonos(ctx context.Context, compraID uuid.UUID) ([]dto.AbonoCompraResponse, error) {
	if _, err := s.repo.FindByID(ctx, compraID); err != nil {
		return nil, apierror.NotFound("compra no encontrada")
	}
	abonos, err := s.repo.ListAbonos(ctx, compraID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AbonoCompraResponse, len(abonos))
	for i := range abonos {
		data[i] = *abonoCompraToResponse(&abonos[i])
	}
	return data, nil
}

func (s *compraService) EliminarAbono(ctx context.Context, compraID, abonoID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra, err := s.repo.FindByIDForUpdateTx(tx, compraID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("compra no encontrada")
			}
			return err
		}
		if !s.cat.EsCompraCreditoLike(compra.EstadoID) {
			return apierror.InvalidState("la compra no tiene abonos que revertir")
		}

		var abono *model.AbonoCompra
		for i := range compra.Abonos {
			if compra.Abonos[i].ID == abonoID {
				abono = &compra.Abonos[i]
				break
			}
		}
		if abono == nil {
			return apierror.NotFound("abono no encontrado")
		}

		compra.Saldo = compra.Saldo.Add(abono.Monto)
		compra.EstadoID = s.cat.CompraCredito
		if err := s.repo.SaveTx(tx, compra); err != nil {
			return err
		}

		if err := s.bancos.IncrementarSaldoTx(tx, abono.BancoID, abono.Monto); err != nil {
			return err
		}
		if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenAbonoCompra, abono.ID); err != nil {
			return err
		}
		return s.repo.DeleteAbonoTx(tx, abono.ID)
	})
}

func (s *compraService) toResponse(c *model.Compra) *dto.CompraResponse {
	proveedorNombre := ""
	if c.Proveedor != nil {
		proveedorNombre = c.Proveedor.Nombre
	}
	bancoNombre := ""
	if c.Banco != nil {
		bancoNombre = c.Banco.Nombre
	}
	items := make([]dto.ItemCompraResponse, len(c.Items))
	for i, it := range c.Items {
		nombre := ""
		if it.Producto != nil {
			nombre = it.Producto.Nombre
		}
		items[i] = dto.ItemCompraResponse{
			Producto:       nombre,
			ProductoID:     it.ProductoID.String(),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Total:          it.Total,
		}
	}
	return &dto.CompraResponse{
		ID:        c.ID.String(),
		Proveedor: proveedorNombre,
		Banco:     bancoNombre,
		Estado:    s.cat.NombreDe(c.EstadoID),
		Total:     c.Total,
		Saldo:     c.Saldo,
		Items:     items,
		CreatedAt: formatFecha(c.CreatedAt),
	}
}

func abonoCompraToResponse(a *model.AbonoCompra) *dto.AbonoCompraResponse {
	return &dto.AbonoCompraResponse{
		ID:        a.ID.String(),
		CompraID:  a.CompraID.String(),
		BancoID:   a.BancoID.String(),
		Monto:     a.Monto,
		CreatedAt: formatFecha(a.CreatedAt),
	}
}
