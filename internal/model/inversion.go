package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inversion supports add-balance (interes credits the balance with no bank
// leg; aporte moves money from a bank) and withdraw. A withdrawal that brings
// Saldo exactly to zero deletes the row.
type Inversion struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string          `gorm:"not null"`
	Saldo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	BancoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Vencimiento *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Banco *Banco `gorm:"foreignKey:BancoID"`
}

func (Inversion) TableName() string { return "inversiones" }
