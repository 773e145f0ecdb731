package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ganancia is the per-sale profit aggregate, created alongside the sale and
// deleted with it.
type Ganancia struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Items []GananciaItem `gorm:"foreignKey:GananciaID;constraint:OnDelete:CASCADE"`
}

func (Ganancia) TableName() string { return "ganancias" }

// GananciaItem is the per-line profit detail:
// (precio_venta - precio_compra) * cantidad at the moment of the sale.
type GananciaItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GananciaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID       uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad         int             `gorm:"not null"`
	GananciaUnitaria decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (GananciaItem) TableName() string { return "ganancia_items" }
