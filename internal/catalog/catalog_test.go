package catalog_test

import (
	"strings"
	"testing"

	"garcolderp/internal/apierror"
	"garcolderp/internal/catalog"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEstados() []model.Estado {
	nombres := []string{
		model.EstadoVentaContado,
		model.EstadoVentaCredito,
		model.EstadoVentaCancelada,
		model.EstadoCompraContado,
		model.EstadoCompraCredito,
		model.EstadoCompraCancelada,
	}
	estados := make([]model.Estado, len(nombres))
	for i, n := range nombres {
		estados[i] = model.Estado{ID: uuid.New(), Nombre: n}
	}
	return estados
}

func seedTipos() []model.TipoTransaccion {
	nombres := []string{
		model.TipoIngreso,
		model.TipoRetiro,
		model.TipoPagoVenta,
		model.TipoPagoCompra,
		model.TipoGasto,
		model.TipoAporteInversion,
		model.TipoInteresInversion,
	}
	tipos := make([]model.TipoTransaccion, len(nombres))
	for i, n := range nombres {
		tipos[i] = model.TipoTransaccion{ID: uuid.New(), Nombre: n}
	}
	return tipos
}

func TestNewResuelveTodosLosNombres(t *testing.T) {
	estados, tipos := seedEstados(), seedTipos()

	cat, err := catalog.New(estados, tipos)
	require.NoError(t, err)

	assert.Equal(t, estados[0].ID, cat.VentaContado)
	assert.Equal(t, estados[1].ID, cat.VentaCredito)
	assert.Equal(t, estados[5].ID, cat.CompraCancelada)
	assert.Equal(t, tipos[2].ID, cat.PagoVenta)
	assert.Equal(t, tipos[6].ID, cat.InteresInversion)

	assert.Equal(t, model.TipoPagoVenta, cat.NombreDe(cat.PagoVenta))
	assert.Equal(t, "", cat.NombreDe(uuid.New()))
}

func TestNewEsInsensibleAMayusculas(t *testing.T) {
	estados := seedEstados()
	for i := range estados {
		estados[i].Nombre = strings.ToUpper(estados[i].Nombre)
	}

	cat, err := catalog.New(estados, seedTipos())
	require.NoError(t, err)
	assert.Equal(t, estados[0].ID, cat.VentaContado)
}

func TestNewFallaConEstadoFaltante(t *testing.T) {
	estados := seedEstados()[1:] // sin "venta contado"

	_, err := catalog.New(estados, seedTipos())
	require.Error(t, err)
	assert.Equal(t, apierror.KindConfiguration, apierror.KindOf(err))
	assert.Contains(t, err.Error(), model.EstadoVentaContado)
}

func TestNewFallaConTipoFaltante(t *testing.T) {
	tipos := seedTipos()[:6] // sin "Interes Inversion"

	_, err := catalog.New(seedEstados(), tipos)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConfiguration, apierror.KindOf(err))
}

func TestFamiliasCredito(t *testing.T) {
	cat, err := catalog.New(seedEstados(), seedTipos())
	require.NoError(t, err)

	assert.True(t, cat.EsVentaCreditoLike(cat.VentaCredito))
	assert.True(t, cat.EsVentaCreditoLike(cat.VentaCancelada))
	assert.False(t, cat.EsVentaCreditoLike(cat.VentaContado))

	assert.True(t, cat.EsCompraCreditoLike(cat.CompraCredito))
	assert.True(t, cat.EsCompraCreditoLike(cat.CompraCancelada))
	assert.False(t, cat.EsCompraCreditoLike(cat.CompraContado))
}
