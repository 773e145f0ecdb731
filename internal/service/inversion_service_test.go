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

func TestCrearInversionConSaldoInicial(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	resp, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("400.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	assert.True(t, resp.Saldo.Equal(dec("400.00")))
	assert.True(t, banco.Saldo.Equal(dec("600.00")))

	rows := f.transaccionRepo.porOrigen(model.OrigenInversion, uuid.MustParse(resp.ID))
	require.Len(t, rows, 1)
	assert.Equal(t, f.cat.AporteInversion, rows[0].TipoID)
}

func TestCrearInversionSinSaldoInicial(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	resp, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Fondo nuevo",
		Saldo:   dec("0"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	assert.True(t, banco.Saldo.Equal(dec("1000.00")))
	assert.Empty(t, f.transaccionRepo.porOrigen(model.OrigenInversion, uuid.MustParse(resp.ID)))
}

func TestCrearInversionVencimientoInvalido(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")
	malFormato := "12/31/2026"

	_, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:      "Fondo",
		Saldo:       dec("0"),
		BancoID:     banco.ID.String(),
		Vencimiento: &malFormato,
	})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestAgregarInteresNoTocaBanco(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("400.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)
	invID := uuid.MustParse(inv.ID)

	resp, err := f.inversiones.AgregarSaldo(ctx, invID, dto.AgregarSaldoRequest{
		Tipo:  "interes",
		Monto: dec("20.00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Saldo.Equal(dec("420.00")))
	assert.True(t, banco.Saldo.Equal(dec("600.00")), "el interes no tiene pata bancaria")

	rows := f.transaccionRepo.porOrigen(model.OrigenInversion, invID)
	require.Len(t, rows, 2)
	tipos := map[uuid.UUID]int{}
	for _, r := range rows {
		tipos[r.TipoID]++
	}
	assert.Equal(t, 1, tipos[f.cat.InteresInversion])
	assert.Equal(t, 1, tipos[f.cat.AporteInversion])
}

func TestAgregarAporteDebitaBanco(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("0"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	resp, err := f.inversiones.AgregarSaldo(ctx, uuid.MustParse(inv.ID), dto.AgregarSaldoRequest{
		Tipo:  "aporte",
		Monto: dec("250.00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Saldo.Equal(dec("250.00")))
	assert.True(t, banco.Saldo.Equal(dec("750.00")))
}

func TestAgregarAporteSinFondos(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("100.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Fondo",
		Saldo:   dec("0"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.inversiones.AgregarSaldo(ctx, uuid.MustParse(inv.ID), dto.AgregarSaldoRequest{
		Tipo:  "aporte",
		Monto: dec("200.00"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientFunds, apierror.KindOf(err))
	assert.True(t, banco.Saldo.Equal(dec("100.00")))
}

func TestRetiroParcialInversion(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("400.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	resp, err := f.inversiones.Retirar(ctx, uuid.MustParse(inv.ID), dto.RetirarInversionRequest{
		Monto: dec("150.00"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Eliminada)
	require.NotNil(t, resp.Inversion)
	assert.True(t, resp.Inversion.Saldo.Equal(dec("250.00")))
	assert.True(t, banco.Saldo.Equal(dec("750.00")))
}

func TestRetiroTotalEliminaInversion(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("400.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)
	invID := uuid.MustParse(inv.ID)

	resp, err := f.inversiones.Retirar(ctx, invID, dto.RetirarInversionRequest{
		Monto: dec("400.00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Eliminada)
	assert.Nil(t, resp.Inversion)
	assert.Empty(t, f.inversionRepo.inversiones)
	assert.True(t, banco.Saldo.Equal(dec("1000.00")))

	// Apertura y retiro quedan en el libro.
	assert.Len(t, f.transaccionRepo.porOrigen(model.OrigenInversion, invID), 2)
}

func TestRetiroExcedeSaldoInversion(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("100.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.inversiones.Retirar(ctx, uuid.MustParse(inv.ID), dto.RetirarInversionRequest{
		Monto: dec("100.01"),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.True(t, banco.Saldo.Equal(dec("900.00")))
}

func TestEliminarInversionConSaldo(t *testing.T) {
	f := newFixture(t)
	banco := f.seedBanco("1000.00")

	inv, err := f.inversiones.Crear(ctx, dto.CrearInversionRequest{
		Nombre:  "Plazo fijo",
		Saldo:   dec("100.00"),
		BancoID: banco.ID.String(),
	})
	require.NoError(t, err)
	invID := uuid.MustParse(inv.ID)

	err = f.inversiones.Eliminar(ctx, invID)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))

	_, err = f.inversiones.Retirar(ctx, invID, dto.RetirarInversionRequest{Monto: dec("100.00")})
	require.NoError(t, err)
	// El retiro total ya la elimino.
	err = f.inversiones.Eliminar(ctx, invID)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}
