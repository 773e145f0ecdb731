package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoTransaccion is a lookup row for transaction types, seeded at boot and
// resolved into the catalog once.
type TipoTransaccion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (TipoTransaccion) TableName() string { return "tipos_transaccion" }

// Required tipo names. Matching is case-insensitive at load time.
const (
	TipoIngreso          = "Ingreso"
	TipoRetiro           = "Retiro"
	TipoPagoVenta        = "Pago venta"
	TipoPagoCompra       = "Pago compra"
	TipoGasto            = "Gasto"
	TipoAporteInversion  = "Aporte Inversion"
	TipoInteresInversion = "Interes Inversion"
)

// OrigenTipo values. Reversal lookup is done by (origen_tipo, origen_id) —
// Descripcion is display text only and is never parsed.
const (
	OrigenVenta       = "venta"
	OrigenCompra      = "compra"
	OrigenAbonoVenta  = "abono_venta"
	OrigenAbonoCompra = "abono_compra"
	OrigenGasto       = "gasto"
	OrigenPrestamo    = "prestamo"
	OrigenInversion   = "inversion"
	OrigenAbonoSaldo  = "abono_saldo"
	OrigenManual      = "manual"
)

// Transaccion is an append-only audit row for every bank-affecting event.
// Rows are never updated; workflow deletes remove the rows correlated to the
// originating entity via OrigenTipo/OrigenID inside the same transaction that
// reverses the balances.
type Transaccion struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BancoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TipoID      uuid.UUID       `gorm:"type:uuid;not null"`
	Descripcion string          `gorm:"not null"`
	EsAuto      bool            `gorm:"not null;default:false"`
	OrigenTipo  string          `gorm:"type:varchar(20);not null;index:idx_transacciones_origen"`
	OrigenID    *uuid.UUID      `gorm:"type:uuid;index:idx_transacciones_origen"`
	CreatedAt   time.Time

	Banco *Banco           `gorm:"foreignKey:BancoID"`
	Tipo  *TipoTransaccion `gorm:"foreignKey:TipoID"`
}

func (Transaccion) TableName() string { return "transacciones" }
