package service_test

import (
	"testing"

	"garcolderp/internal/apierror"
	"garcolderp/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBancoSaldoNuncaNegativo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	err := f.bancos.DescontarSaldoTx(nil, banco.ID, dec("100.01"))
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientFunds, apierror.KindOf(err))
	assert.True(t, banco.Saldo.Equal(dec("100.00")), "un descuento fallido no debe tocar el saldo")

	require.NoError(t, f.bancos.DescontarSaldoTx(nil, banco.ID, dec("100.00")))
	assert.True(t, banco.Saldo.IsZero())
}

func TestBancoMontoCeroEsNoOp(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("50.00")

	require.NoError(t, f.bancos.IncrementarSaldoTx(nil, banco.ID, dec("0")))
	require.NoError(t, f.bancos.DescontarSaldoTx(nil, banco.ID, dec("0")))
	assert.True(t, banco.Saldo.Equal(dec("50.00")))
}

func TestBancoMontoNegativoRechazado(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("50.00")

	err := f.bancos.IncrementarSaldoTx(nil, banco.ID, dec("-1"))
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	err = f.bancos.DescontarSaldoTx(nil, banco.ID, dec("-1"))
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.True(t, banco.Saldo.Equal(dec("50.00")))
}

func TestBancoNoEncontrado(t *testing.T) {
	f := newFixture(t)

	err := f.bancos.IncrementarSaldoTx(nil, uuid.New(), dec("10"))
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	_, err = f.bancos.Obtener(ctx, uuid.New())
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestBancoCrearSaldoInicialNegativo(t *testing.T) {
	f := newFixture(t)

	_, err := f.bancos.Crear(ctx, dto.CrearBancoRequest{Nombre: "Caja", Saldo: dec("-5")})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestBancoEliminarConSaldo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("10.00")

	err := f.bancos.Eliminar(ctx, banco.ID)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))

	require.NoError(t, f.bancos.DescontarSaldoTx(nil, banco.ID, dec("10.00")))
	require.NoError(t, f.bancos.Eliminar(ctx, banco.ID))
}

func TestClienteDescuentoMayorAlSaldo(t *testing.T) {
	f := newFixture(t)
	cliente := f.seedCliente("30.00")

	err := f.clientes.DescontarSaldoTx(nil, cliente.ID, dec("30.01"))
	assert.Equal(t, apierror.KindInsufficientFunds, apierror.KindOf(err))
	assert.True(t, cliente.Saldo.Equal(dec("30.00")))
}
