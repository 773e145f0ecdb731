package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoriaGasto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (CategoriaGasto) TableName() string { return "categorias_gasto" }

// Gasto debits a bank on creation and is fully reversed on delete.
type Gasto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	BancoID     uuid.UUID       `gorm:"type:uuid;not null"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time

	Banco     *Banco          `gorm:"foreignKey:BancoID"`
	Categoria *CategoriaGasto `gorm:"foreignKey:CategoriaID"`
}

func (Gasto) TableName() string { return "gastos" }
