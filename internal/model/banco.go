package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Banco is a cash account. Saldo is mutated by every cash-affecting workflow
// and must never go negative — decreases that would cross zero fail instead
// of clamping.
type Banco struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"uniqueIndex;not null"`
	NumeroCuenta *string
	Saldo        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Banco) TableName() string { return "bancos" }
