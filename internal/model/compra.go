package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra mirrors Venta with inverted signs: a cash purchase debits the bank,
// a credit purchase carries its payable in Saldo (the proveedor has no balance
// field of its own).
type Compra struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	BancoID     uuid.UUID       `gorm:"type:uuid;not null"`
	EstadoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Saldo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Proveedor *Proveedor    `gorm:"foreignKey:ProveedorID"`
	Banco     *Banco        `gorm:"foreignKey:BancoID"`
	Estado    *Estado       `gorm:"foreignKey:EstadoID"`
	Items     []CompraItem  `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
	Abonos    []AbonoCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

func (Compra) TableName() string { return "compras" }

type CompraItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (CompraItem) TableName() string { return "compra_items" }

// AbonoCompra is a partial repayment of a credit purchase. Money leaves the bank.
type AbonoCompra struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	BancoID   uuid.UUID       `gorm:"type:uuid;not null"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Banco *Banco `gorm:"foreignKey:BancoID"`
}

func (AbonoCompra) TableName() string { return "abonos_compra" }
