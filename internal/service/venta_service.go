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

// VentaService drives the sale workflow: register, delete (full reversal),
// and the abonos of a credit sale. Every entry point runs a single
// transaction — the stock check comes first, so a failed sale never touches
// a balance; the audit row is written last, inside the same transaction.
type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	CrearAbono(ctx context.Context, ventaID uuid.UUID, req dto.CrearAbonoVentaRequest) (*dto.AbonoVentaResponse, error)
	ListarAbonos(ctx context.Context, ventaID uuid.UUID) ([]dto.AbonoVentaResponse, error)
	EliminarAbono(ctx context.Context, ventaID, abonoID uuid.UUID) error

	ObtenerGanancia(ctx context.Context, ventaID uuid.UUID) (*dto.GananciaResponse, error)
}

type ventaService struct {
	repo          repository.VentaRepository
	productos     ProductoService
	bancos        BancoService
	clientes      ClienteService
	transacciones TransaccionService
	cat           *catalog.Catalogo
}

func NewVentaService(
	repo repository.VentaRepository,
	productos ProductoService,
	bancos BancoService,
	clientes ClienteService,
	transacciones TransaccionService,
	cat *catalog.Catalogo,
) VentaService {
	return &ventaService{
		repo:          repo,
		productos:     productos,
		bancos:        bancos,
		clientes:      clientes,
		transacciones: transacciones,
		cat:           cat,
	}
}

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validation("cliente_id invalido")
	}
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	if len(req.Items) == 0 {
		return nil, apierror.Validation("la venta debe tener al menos un item")
	}
	if _, err := s.clientes.Obtener(ctx, clienteID); err != nil {
		return nil, err
	}
	if _, err := s.bancos.Obtener(ctx, bancoID); err != nil {
		return nil, err
	}

	var venta *model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]model.VentaItem, 0, len(req.Items))
		gananciaItems := make([]model.GananciaItem, 0, len(req.Items))
		gananciaTotal := decimal.Zero

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
			if !producto.Activo {
				return apierror.Validation(fmt.Sprintf("el producto %s esta inactivo", producto.Nombre))
			}
			if err := s.productos.DescontarStockTx(tx, producto, it.Cantidad); err != nil {
				return err
			}

			lineTotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
			total = total.Add(lineTotal)
			items = append(items, model.VentaItem{
				ProductoID:     productoID,
				Cantidad:       it.Cantidad,
				PrecioUnitario: it.PrecioUnitario,
				Total:          lineTotal,
			})

			unitaria := it.PrecioUnitario.Sub(producto.PrecioCompra)
			lineGanancia := unitaria.Mul(decimal.NewFromInt(int64(it.Cantidad)))
			gananciaTotal = gananciaTotal.Add(lineGanancia)
			gananciaItems = append(gananciaItems, model.GananciaItem{
				ProductoID:       productoID,
				Cantidad:         it.Cantidad,
				GananciaUnitaria: unitaria,
				Total:            lineGanancia,
			})
		}

		venta = &model.Venta{
			ClienteID: clienteID,
			BancoID:   bancoID,
			Total:     total,
			Items:     items,
		}
		if req.Credito {
			venta.EstadoID = s.cat.VentaCredito
			venta.SaldoPendiente = total
		} else {
			venta.EstadoID = s.cat.VentaContado
			venta.SaldoPendiente = decimal.Zero
		}
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}

		ganancia := &model.Ganancia{VentaID: venta.ID, Monto: gananciaTotal, Items: gananciaItems}
		if err := s.repo.CreateGananciaTx(tx, ganancia); err != nil {
			return err
		}

		if req.Credito {
			return s.clientes.IncrementarSaldoTx(tx, clienteID, total)
		}
		if err := s.bancos.IncrementarSaldoTx(tx, bancoID, total); err != nil {
			return err
		}
		_, err := s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       total,
			TipoID:      s.cat.PagoVenta,
			Descripcion: fmt.Sprintf("Venta de contado %s", venta.ID),
			EsAuto:      true,
			OrigenTipo:  model.OrigenVenta,
			OrigenID:    &venta.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, venta.ID)
}

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("venta no encontrada")
	}
	return s.toResponse(venta), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		data[i] = *s.toResponse(&ventas[i])
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Eliminar undoes every effect the sale and its abonos had: stock back up,
// each abono out of its bank, the outstanding receivable off the customer,
// a cash sale's total out of the bank, and the correlated audit rows removed.
func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("venta no encontrada")
			}
			return err
		}

		for _, item := range venta.Items {
			producto, err := s.productos.FindByIDForUpdateTx(tx, item.ProductoID)
			if err != nil {
				return err
			}
			if err := s.productos.IncrementarStockTx(tx, producto, item.Cantidad); err != nil {
				return err
			}
		}

		if s.cat.EsVentaCreditoLike(venta.EstadoID) {
			for _, abono := range venta.Abonos {
				if err := s.bancos.DescontarSaldoTx(tx, abono.BancoID, abono.Monto); err != nil {
					return err
				}
				if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenAbonoVenta, abono.ID); err != nil {
					return err
				}
			}
			// Only the still-unpaid portion lives on the customer; the paid
			// portion was already settled abono by abono above.
			if venta.SaldoPendiente.IsPositive() {
				if err := s.clientes.DescontarSaldoTx(tx, venta.ClienteID, venta.SaldoPendiente); err != nil {
					return err
				}
			}
		} else {
			if err := s.bancos.DescontarSaldoTx(tx, venta.BancoID, venta.Total); err != nil {
				return err
			}
		}

		if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenVenta, venta.ID); err != nil {
			return err
		}
		if err := s.repo.DeleteGananciaByVentaTx(tx, venta.ID); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, venta.ID)
	})
}

func (s *ventaService) CrearAbono(ctx context.Context, ventaID uuid.UUID, req dto.CrearAbonoVentaRequest) (*dto.AbonoVentaResponse, error) {
	bancoID, err := uuid.Parse(req.BancoID)
	if err != nil {
		return nil, apierror.Validation("banco_id invalido")
	}
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del abono debe ser mayor a cero")
	}

	var abono *model.AbonoVenta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.repo.FindByIDForUpdateTx(tx, ventaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("venta no encontrada")
			}
			return err
		}
		if venta.EstadoID != s.cat.VentaCredito {
			return apierror.InvalidState("solo una venta a credito admite abonos")
		}
		if req.Monto.GreaterThan(venta.SaldoPendiente) {
			return apierror.Validation("el abono excede el saldo pendiente de la venta")
		}

		abono = &model.AbonoVenta{VentaID: venta.ID, BancoID: bancoID, Monto: req.Monto}
		if err := s.repo.CreateAbonoTx(tx, abono); err != nil {
			return err
		}

		venta.SaldoPendiente = venta.SaldoPendiente.Sub(req.Monto)
		if venta.SaldoPendiente.IsZero() {
			venta.EstadoID = s.cat.VentaCancelada
		}
		if err := s.repo.SaveTx(tx, venta); err != nil {
			return err
		}

		if err := s.clientes.DescontarSaldoTx(tx, venta.ClienteID, req.Monto); err != nil {
			return err
		}
		if err := s.bancos.IncrementarSaldoTx(tx, bancoID, req.Monto); err != nil {
			return err
		}
		_, err = s.transacciones.RegistrarTx(tx, RegistroTransaccion{
			BancoID:     bancoID,
			Monto:       req.Monto,
			TipoID:      s.cat.PagoVenta,
			Descripcion: fmt.Sprintf("Abono a venta %s", venta.ID),
			EsAuto:      true,
			OrigenTipo:  model.OrigenAbonoVenta,
			OrigenID:    &abono.ID,
		})
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return abonoVentaToResponse(abono), nil
}

func (s *ventaService) ListarAbonos(ctx context.Context, ventaID uuid.UUID) ([]dto.AbonoVentaResponse, error) {
	if _, err := s.repo.FindByID(ctx, ventaID); err != nil {
		return nil, apierror.NotFound("venta no encontrada")
	}
	abonos, err := s.repo.ListAbonos(ctx, ventaID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AbonoVentaResponse, len(abonos))
	for i := range abonos {
		data[i] = *abonoVentaToResponse(&abonos[i])
	}
	return data, nil
}

// EliminarAbono reverses one abono. A fully-paid sale steps back to credito,
// since the deletion reopens part of its receivable.
func (s *ventaService) EliminarAbono(ctx context.Context, ventaID, abonoID uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		venta, err := s.repo.FindByIDForUpdateTx(tx, ventaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("venta no encontrada")
			}
			return err
		}
		if !s.cat.EsVentaCreditoLike(venta.EstadoID) {
			return apierror.InvalidState("la venta no tiene abonos que revertir")
		}

		var abono *model.AbonoVenta
		for i := range venta.Abonos {
			if venta.Abonos[i].ID == abonoID {
				abono = &venta.Abonos[i]
				break
			}
		}
		if abono == nil {
			return apierror.NotFound("abono no encontrado")
		}

		venta.SaldoPendiente = venta.SaldoPendiente.Add(abono.Monto)
		venta.EstadoID = s.cat.VentaCredito
		if err := s.repo.SaveTx(tx, venta); err != nil {
			return err
		}

		if err := s.bancos.DescontarSaldoTx(tx, abono.BancoID, abono.Monto); err != nil {
			return err
		}
		if err := s.clientes.IncrementarSaldoTx(tx, venta.ClienteID, abono.Monto); err != nil {
			return err
		}
		if err := s.transacciones.EliminarPorOrigenTx(tx, model.OrigenAbonoVenta, abono.ID); err != nil {
			return err
		}
		return s.repo.DeleteAbonoTx(tx, abono.ID)
	})
}

func (s *ventaService) ObtenerGanancia(ctx context.Context, ventaID uuid.UUID) (*dto.GananciaResponse, error) {
	ganancia, err := s.repo.FindGananciaByVentaID(ctx, ventaID)
	if err != nil {
		return nil, apierror.NotFound("ganancia no encontrada")
	}
	items := make([]dto.GananciaItemResponse, len(ganancia.Items))
	for i, it := range ganancia.Items {
		items[i] = dto.GananciaItemResponse{
			ProductoID:       it.ProductoID.String(),
			Cantidad:         it.Cantidad,
			GananciaUnitaria: it.GananciaUnitaria,
			Total:            it.Total,
		}
	}
	return &dto.GananciaResponse{
		VentaID: ganancia.VentaID.String(),
		Monto:   ganancia.Monto,
		Items:   items,
	}, nil
}

func (s *ventaService) toResponse(v *model.Venta) *dto.VentaResponse {
	clienteNombre := ""
	if v.Cliente != nil {
		clienteNombre = v.Cliente.Nombre
	}
	bancoNombre := ""
	if v.Banco != nil {
		bancoNombre = v.Banco.Nombre
	}
	items := make([]dto.ItemVentaResponse, len(v.Items))
	for i, it := range v.Items {
		nombre := ""
		if it.Producto != nil {
			nombre = it.Producto.Nombre
		}
		items[i] = dto.ItemVentaResponse{
			Producto:       nombre,
			ProductoID:     it.ProductoID.String(),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Total:          it.Total,
		}
	}
	return &dto.VentaResponse{
		ID:             v.ID.String(),
		Cliente:        clienteNombre,
		ClienteID:      v.ClienteID.String(),
		Banco:          bancoNombre,
		Estado:         s.cat.NombreDe(v.EstadoID),
		Total:          v.Total,
		SaldoPendiente: v.SaldoPendiente,
		Items:          items,
		CreatedAt:      formatFecha(v.CreatedAt),
	}
}

func abonoVentaToResponse(a *model.AbonoVenta) *dto.AbonoVentaResponse {
	return &dto.AbonoVentaResponse{
		ID:        a.ID.String(),
		VentaID:   a.VentaID.String(),
		BancoID:   a.BancoID.String(),
		Monto:     a.Monto,
		CreatedAt: formatFecha(a.CreatedAt),
	}
}
