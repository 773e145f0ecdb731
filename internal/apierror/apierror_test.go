package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"garcolderp/internal/apierror"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(apierror.NotFound("x")))
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(apierror.Validation("x")))
	assert.Equal(t, apierror.KindInsufficientFunds, apierror.KindOf(apierror.InsufficientFunds("x")))
	assert.Equal(t, apierror.KindInternal, apierror.KindOf(errors.New("plain")))

	// El kind sobrevive al envoltorio con %w.
	wrapped := fmt.Errorf("procesando venta: %w", apierror.InsufficientStock("sin stock"))
	assert.Equal(t, apierror.KindInsufficientStock, apierror.KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apierror.HTTPStatus(apierror.NotFound("x")))
	assert.Equal(t, http.StatusBadRequest, apierror.HTTPStatus(apierror.Validation("x")))
	assert.Equal(t, http.StatusBadRequest, apierror.HTTPStatus(apierror.InvalidState("x")))
	assert.Equal(t, http.StatusBadRequest, apierror.HTTPStatus(apierror.InsufficientFunds("x")))
	assert.Equal(t, http.StatusBadRequest, apierror.HTTPStatus(apierror.InsufficientStock("x")))
	assert.Equal(t, http.StatusInternalServerError, apierror.HTTPStatus(apierror.Configuration("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, apierror.HTTPStatus(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("conexion rechazada")
	err := apierror.Internal("no se pudo guardar", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "no se pudo guardar", err.Error())
}
