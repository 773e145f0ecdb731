package service_test

import (
	"testing"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaccionManualIngreso(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	resp, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "ingreso",
		Monto:       dec("40.00"),
		Descripcion: "Deposito inicial",
	})
	require.NoError(t, err)

	assert.True(t, banco.Saldo.Equal(dec("140.00")))
	assert.Equal(t, model.TipoIngreso, resp.Tipo)
	assert.False(t, resp.EsAuto)
	assert.Equal(t, model.OrigenManual, resp.OrigenTipo)
}

func TestTransaccionManualRetiroSinFondos(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("10.00")

	_, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "retiro",
		Monto:       dec("10.01"),
		Descripcion: "Retiro de prueba",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientFunds, apierror.KindOf(err))
	assert.True(t, banco.Saldo.Equal(dec("10.00")))
	assert.Empty(t, f.transaccionRepo.rows)
}

func TestTransaccionAbonoSaldo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")
	cliente := f.seedCliente("80.00")
	clienteID := cliente.ID.String()

	resp, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "abono_saldo",
		Monto:       dec("50.00"),
		Descripcion: "Abono directo a deuda",
		ClienteID:   &clienteID,
	})
	require.NoError(t, err)

	assert.True(t, banco.Saldo.Equal(dec("150.00")))
	assert.True(t, cliente.Saldo.Equal(dec("30.00")))
	assert.Equal(t, model.OrigenAbonoSaldo, resp.OrigenTipo)
	require.NotNil(t, resp.OrigenID)
	assert.Equal(t, clienteID, *resp.OrigenID)
}

func TestTransaccionAbonoSaldoSinCliente(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	_, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "abono_saldo",
		Monto:       dec("50.00"),
		Descripcion: "Sin cliente",
	})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestEliminarTransaccionManualIngreso(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	resp, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "ingreso",
		Monto:       dec("40.00"),
		Descripcion: "Deposito",
	})
	require.NoError(t, err)

	require.NoError(t, f.transacciones.Eliminar(ctx, uuid.MustParse(resp.ID)))
	assert.True(t, banco.Saldo.Equal(dec("100.00")))
	assert.Empty(t, f.transaccionRepo.rows)
}

func TestEliminarTransaccionManualRetiro(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	resp, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "retiro",
		Monto:       dec("25.00"),
		Descripcion: "Retiro",
	})
	require.NoError(t, err)
	require.True(t, banco.Saldo.Equal(dec("75.00")))

	require.NoError(t, f.transacciones.Eliminar(ctx, uuid.MustParse(resp.ID)))
	assert.True(t, banco.Saldo.Equal(dec("100.00")))
}

func TestEliminarTransaccionAbonoSaldo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")
	cliente := f.seedCliente("80.00")
	clienteID := cliente.ID.String()

	resp, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "abono_saldo",
		Monto:       dec("50.00"),
		Descripcion: "Abono directo",
		ClienteID:   &clienteID,
	})
	require.NoError(t, err)

	// The reversal returns the money to the customer's receivable.
	require.NoError(t, f.transacciones.Eliminar(ctx, uuid.MustParse(resp.ID)))
	assert.True(t, banco.Saldo.Equal(dec("100.00")))
	assert.True(t, cliente.Saldo.Equal(dec("80.00")))
	assert.Empty(t, f.transaccionRepo.rows)
}

func TestEliminarTransaccionAutomatica(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")
	cliente := f.seedCliente("0")
	producto := f.seedProducto(10, "30.00", "50.00")

	resp, err := f.ventas.Registrar(ctx, dto.RegistrarVentaRequest{
		ClienteID: cliente.ID.String(),
		BancoID:   banco.ID.String(),
		Items: []dto.ItemVentaRequest{
			{ProductoID: producto.ID.String(), Cantidad: 1, PrecioUnitario: dec("50.00")},
		},
	})
	require.NoError(t, err)

	rows := f.transaccionRepo.porOrigen(model.OrigenVenta, uuid.MustParse(resp.ID))
	require.Len(t, rows, 1)

	err = f.transacciones.Eliminar(ctx, rows[0].ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
	assert.Len(t, f.transaccionRepo.rows, 1, "la fila automatica sigue en el libro")
}

func TestTransaccionManualTipoDesconocido(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	_, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "transferencia",
		Monto:       dec("10.00"),
		Descripcion: "Tipo raro",
	})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestTransaccionManualMontoNoPositivo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	_, err := f.transacciones.CrearManual(ctx, dto.CrearTransaccionManualRequest{
		BancoID:     banco.ID.String(),
		Tipo:        "ingreso",
		Monto:       dec("0"),
		Descripcion: "Nada",
	})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}
