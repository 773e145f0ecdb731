package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale. SaldoPendiente tracks the unpaid portion of a credit sale;
// it is 0 for cash sales and counts down to 0 as abonos arrive, at which point
// the estado transitions to "venta cancelada".
type Venta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	BancoID        uuid.UUID       `gorm:"type:uuid;not null"`
	EstadoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SaldoPendiente decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Cliente *Cliente     `gorm:"foreignKey:ClienteID"`
	Banco   *Banco       `gorm:"foreignKey:BancoID"`
	Estado  *Estado      `gorm:"foreignKey:EstadoID"`
	Items   []VentaItem  `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Abonos  []AbonoVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

func (Venta) TableName() string { return "ventas" }

type VentaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaItem) TableName() string { return "venta_items" }

// AbonoVenta is a partial repayment of a credit sale. Money enters the bank.
type AbonoVenta struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BancoID   uuid.UUID       `gorm:"type:uuid;not null"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Banco *Banco `gorm:"foreignKey:BancoID"`
}

func (AbonoVenta) TableName() string { return "abonos_venta" }
