// Package catalog resolves the estado / tipo-transaccion lookup tables into a
// closed set of stable identifiers, exactly once at startup. A missing
// required row is a configuration error and aborts boot — request-time code
// compares ids against this struct and never resolves names again.
package catalog

import (
	"fmt"
	"strings"

	"garcolderp/internal/apierror"
	"garcolderp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Catalogo struct {
	VentaContado   uuid.UUID
	VentaCredito   uuid.UUID
	VentaCancelada uuid.UUID

	CompraContado   uuid.UUID
	CompraCredito   uuid.UUID
	CompraCancelada uuid.UUID

	Ingreso          uuid.UUID
	Retiro           uuid.UUID
	PagoVenta        uuid.UUID
	PagoCompra       uuid.UUID
	Gasto            uuid.UUID
	AporteInversion  uuid.UUID
	InteresInversion uuid.UUID

	nombres map[uuid.UUID]string
}

// New builds the catalog from already-loaded rows. Name matching is
// case-insensitive. Every required name must be present.
func New(estados []model.Estado, tipos []model.TipoTransaccion) (*Catalogo, error) {
	c := &Catalogo{nombres: make(map[uuid.UUID]string, len(estados)+len(tipos))}

	porEstado := make(map[string]uuid.UUID, len(estados))
	for _, e := range estados {
		porEstado[strings.ToLower(e.Nombre)] = e.ID
		c.nombres[e.ID] = e.Nombre
	}
	porTipo := make(map[string]uuid.UUID, len(tipos))
	for _, t := range tipos {
		porTipo[strings.ToLower(t.Nombre)] = t.ID
		c.nombres[t.ID] = t.Nombre
	}

	estadoDe := func(nombre string, dst *uuid.UUID) error {
		id, ok := porEstado[strings.ToLower(nombre)]
		if !ok {
			return apierror.Configuration(fmt.Sprintf("estado requerido %q no existe", nombre), nil)
		}
		*dst = id
		return nil
	}
	tipoDe := func(nombre string, dst *uuid.UUID) error {
		id, ok := porTipo[strings.ToLower(nombre)]
		if !ok {
			return apierror.Configuration(fmt.Sprintf("tipo de transaccion requerido %q no existe", nombre), nil)
		}
		*dst = id
		return nil
	}

	for _, bind := range []struct {
		nombre string
		dst    *uuid.UUID
	}{
		{model.EstadoVentaContado, &c.VentaContado},
		{model.EstadoVentaCredito, &c.VentaCredito},
		{model.EstadoVentaCancelada, &c.VentaCancelada},
		{model.EstadoCompraContado, &c.CompraContado},
		{model.EstadoCompraCredito, &c.CompraCredito},
		{model.EstadoCompraCancelada, &c.CompraCancelada},
	} {
		if err := estadoDe(bind.nombre, bind.dst); err != nil {
			return nil, err
		}
	}

	for _, bind := range []struct {
		nombre string
		dst    *uuid.UUID
	}{
		{model.TipoIngreso, &c.Ingreso},
		{model.TipoRetiro, &c.Retiro},
		{model.TipoPagoVenta, &c.PagoVenta},
		{model.TipoPagoCompra, &c.PagoCompra},
		{model.TipoGasto, &c.Gasto},
		{model.TipoAporteInversion, &c.AporteInversion},
		{model.TipoInteresInversion, &c.InteresInversion},
	} {
		if err := tipoDe(bind.nombre, bind.dst); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Load reads both lookup tables and resolves the catalog.
func Load(db *gorm.DB) (*Catalogo, error) {
	var estados []model.Estado
	if err := db.Find(&estados).Error; err != nil {
		return nil, apierror.Configuration("no se pudieron cargar los estados", err)
	}
	var tipos []model.TipoTransaccion
	if err := db.Find(&tipos).Error; err != nil {
		return nil, apierror.Configuration("no se pudieron cargar los tipos de transaccion", err)
	}
	return New(estados, tipos)
}

// NombreDe returns the display name of a catalog id, or "" when unknown.
func (c *Catalogo) NombreDe(id uuid.UUID) string { return c.nombres[id] }

// EsVentaCreditoLike reports whether the estado belongs to the credit family
// (open credit or fully paid) — the paths whose abonos must be reversed on delete.
func (c *Catalogo) EsVentaCreditoLike(estadoID uuid.UUID) bool {
	return estadoID == c.VentaCredito || estadoID == c.VentaCancelada
}

func (c *Catalogo) EsCompraCreditoLike(estadoID uuid.UUID) bool {
	return estadoID == c.CompraCredito || estadoID == c.CompraCancelada
}
