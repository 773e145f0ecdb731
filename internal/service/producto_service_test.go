package service_test

import (
	"testing"

	"garcolderp/internal/apierror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescontarStockValidaAntesDeMutar(t *testing.T) {
	f := newFixture(t)
	p := f.seedProducto(5, "10", "15")

	producto, err := f.productos.FindByIDForUpdateTx(nil, p.ID)
	require.NoError(t, err)

	require.NoError(t, f.productos.DescontarStockTx(nil, producto, 3))
	assert.Equal(t, 2, f.productoRepo.productos[p.ID].Cantidad)

	err = f.productos.DescontarStockTx(nil, producto, 3)
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientStock, apierror.KindOf(err))
	assert.Equal(t, 2, f.productoRepo.productos[p.ID].Cantidad)
}

func TestIncrementarStock(t *testing.T) {
	f := newFixture(t)
	p := f.seedProducto(4, "10", "15")

	producto, err := f.productos.FindByIDForUpdateTx(nil, p.ID)
	require.NoError(t, err)

	require.NoError(t, f.productos.IncrementarStockTx(nil, producto, 6))
	assert.Equal(t, 10, f.productoRepo.productos[p.ID].Cantidad)

	// Zero is a no-op, negative amounts are rejected outright.
	require.NoError(t, f.productos.IncrementarStockTx(nil, producto, 0))
	assert.Equal(t, 10, f.productoRepo.productos[p.ID].Cantidad)

	err = f.productos.IncrementarStockTx(nil, producto, -1)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	err = f.productos.DescontarStockTx(nil, producto, -1)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Equal(t, 10, f.productoRepo.productos[p.ID].Cantidad)
}

func TestFindForUpdateProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.productos.FindByIDForUpdateTx(nil, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}
